package goals

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, goal *Goal) error
	GetByID(ctx context.Context, id uint) (*Goal, error)
	ListByFamily(ctx context.Context, familyID uint) ([]Goal, error)
	AddToCurrent(ctx context.Context, id uint, amount int64) error
	SetStatus(ctx context.Context, id uint, status string) error
	Update(ctx context.Context, id uint, input UpdateInput) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
