package user

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Email        string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Phone        *string   `gorm:"size:32;uniqueIndex" json:"phone,omitempty"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FamilyID     *uint     `gorm:"index" json:"family_id,omitempty"`
	PhotoURL     *string   `gorm:"type:text" json:"photo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateInput carries profile fields to change; nil means leave as-is.
type UpdateInput struct {
	Name     *string
	Email    *string
	Phone    *string
	PhotoURL *string
}
