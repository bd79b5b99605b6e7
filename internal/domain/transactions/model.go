package transactions

import "time"

const (
	KindIncome  = "income"
	KindExpense = "expense"
)

type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Kind        string    `gorm:"size:16;index;not null" json:"kind"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Amount      int64     `gorm:"not null" json:"amount"` // cents
	CategoryID  *uint     `gorm:"index" json:"category_id,omitempty"`
	Date        time.Time `gorm:"type:date;index;not null" json:"date"`
	Notes       *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Kind      string    `gorm:"size:16;index;not null" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// Entry is a transaction annotated with its category name for display.
// CategoryName is empty when the category has been deleted.
type Entry struct {
	Transaction
	CategoryName string `json:"category_name,omitempty"`
}

// Summary holds the dashboard totals, recomputed from the full record set.
type Summary struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

// FilterOptions narrows a listing in memory; zero values mean "no filter".
type FilterOptions struct {
	Kind       string
	CategoryID uint
	From       *time.Time
	To         *time.Time
	MinAmount  int64
	MaxAmount  int64
	Search     string
}
