package items

import "context"

type Repository interface {
	Create(ctx context.Context, item *Item) error
	List(ctx context.Context) ([]Item, error)
	Update(ctx context.Context, id uint, name string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
