package budgets

import "context"

type Repository interface {
	Create(ctx context.Context, budget *Budget) error
	GetByID(ctx context.Context, id uint) (*Budget, error)
	ListByFamily(ctx context.Context, familyID uint) ([]Budget, error)
	Update(ctx context.Context, id uint, input UpdateInput) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
