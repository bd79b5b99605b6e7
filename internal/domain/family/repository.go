package family

import (
	"context"

	"famcash/internal/domain/user"
)

type Repository interface {
	Create(ctx context.Context, family *Family) error
	GetByID(ctx context.Context, id uint) (*Family, error)
	GetByName(ctx context.Context, name string) (*Family, error)
	Rename(ctx context.Context, id uint, name string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	ListMembers(ctx context.Context, familyID uint) ([]user.User, error)
}
