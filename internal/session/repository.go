package session

import (
	"context"

	"famcash/internal/domain/family"
	"famcash/internal/domain/user"
)

// Repository covers the lookups and writes the auth flows need. Signup
// runs family creation/join and user insertion inside one Transaction.
type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*user.User, error)
	GetFamilyByName(ctx context.Context, name string) (*family.Family, error)
	GetFamilyByID(ctx context.Context, id uint) (*family.Family, error)
	CreateFamily(ctx context.Context, fam *family.Family) error
	CreateUser(ctx context.Context, u *user.User) error
}

// Store is the device-local key-value storage the session persists to.
type Store interface {
	Load(key string, value any) (bool, error)
	Save(key string, value any) error
	Delete(key string) error
}
