package items

// Item is a minimal named record used for quick lists.
type Item struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:128;not null" json:"name"`
}
