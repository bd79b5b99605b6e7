package budgets

import "time"

// Budget is an informational spending plan; no spend-vs-budget linkage
// to transactions is computed.
type Budget struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FamilyID  uint      `gorm:"index;not null" json:"family_id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Amount    int64     `gorm:"not null" json:"amount"` // cents
	Category  string    `gorm:"size:64;not null" json:"category"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateInput carries budget fields to change; nil means leave as-is.
type UpdateInput struct {
	Name      *string
	Amount    *int64
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
}
