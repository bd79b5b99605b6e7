package session

import (
	"context"
	"errors"

	familydomain "famcash/internal/domain/family"
	userdomain "famcash/internal/domain/user"
	sessiondomain "famcash/internal/session"

	"famcash/internal/repository/sqlite/sqliteerr"

	"gorm.io/gorm"
)

// SQLiteRepository backs the auth flows. It spans the users and families
// tables so signup can run both writes in one transaction.
type SQLiteRepository struct {
	db *gorm.DB
}

func NewSQLite(db *gorm.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Transaction(ctx context.Context, fn func(sessiondomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SQLiteRepository{db: tx})
	})
}

func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	var found userdomain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *SQLiteRepository) GetUserByPhone(ctx context.Context, phone string) (*userdomain.User, error) {
	var found userdomain.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *SQLiteRepository) GetFamilyByName(ctx context.Context, name string) (*familydomain.Family, error) {
	var found familydomain.Family
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrFamilyNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *SQLiteRepository) GetFamilyByID(ctx context.Context, id uint) (*familydomain.Family, error) {
	var found familydomain.Family
	if err := r.db.WithContext(ctx).First(&found, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrFamilyNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *SQLiteRepository) CreateFamily(ctx context.Context, fam *familydomain.Family) error {
	if err := r.db.WithContext(ctx).Create(fam).Error; err != nil {
		if column, ok := sqliteerr.UniqueColumn(err); ok && column == "name" {
			return familydomain.ErrNameTaken
		}
		return err
	}
	return nil
}

func (r *SQLiteRepository) CreateUser(ctx context.Context, u *userdomain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		switch column, _ := sqliteerr.UniqueColumn(err); column {
		case "email":
			return userdomain.ErrEmailTaken
		case "phone":
			return userdomain.ErrPhoneTaken
		default:
			return err
		}
	}
	return nil
}
