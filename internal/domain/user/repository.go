package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	ListByFamily(ctx context.Context, familyID uint) ([]User, error)
	Update(ctx context.Context, id uint, input UpdateInput) (int64, error)
	SetFamily(ctx context.Context, id uint, familyID *uint) (int64, error)
	SetPhoto(ctx context.Context, id uint, url string) (int64, error)
}
