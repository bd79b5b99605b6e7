package transactions

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, transaction *Transaction) error
	ListByUser(ctx context.Context, userID uint) ([]Entry, error)
	Update(ctx context.Context, id uint, input UpdateInput) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	CreateCategory(ctx context.Context, category *Category) error
	ListCategories(ctx context.Context, userID uint) ([]Category, error)
	CountCategories(ctx context.Context, userID uint) (int64, error)
	DeleteCategory(ctx context.Context, userID, categoryID uint) (int64, error)
}

// UpdateInput carries transaction fields to change; nil means leave as-is.
type UpdateInput struct {
	Description *string
	Amount      *int64
	CategoryID  *uint
	Notes       *string
}
