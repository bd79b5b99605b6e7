package goals

import "time"

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Goal struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	FamilyID      uint       `gorm:"index;not null" json:"family_id"`
	CreatedBy     uint       `gorm:"index;not null" json:"created_by"`
	Name          string     `gorm:"size:128;not null" json:"name"`
	TargetAmount  int64      `gorm:"not null" json:"target_amount"`  // cents
	CurrentAmount int64      `gorm:"not null" json:"current_amount"` // cents
	TargetDate    *time.Time `gorm:"type:date" json:"target_date,omitempty"`
	Status        string     `gorm:"size:16;index;not null" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Progress reports how much of the target has been saved, capped at 1.
// Derived on demand, never persisted.
func (g Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	progress := float64(g.CurrentAmount) / float64(g.TargetAmount)
	if progress > 1 {
		return 1
	}
	return progress
}

// UpdateInput carries goal fields to change; nil means leave as-is.
type UpdateInput struct {
	Name         *string
	TargetAmount *int64
	TargetDate   *time.Time
}
