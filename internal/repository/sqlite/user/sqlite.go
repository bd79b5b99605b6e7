package user

import (
	"context"
	"errors"

	userdomain "famcash/internal/domain/user"
	"famcash/internal/repository/sqlite/sqliteerr"

	"gorm.io/gorm"
)

type SQLiteRepository struct {
	db *gorm.DB
}

func NewSQLite(db *gorm.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, u *userdomain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return translateUnique(err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id uint) (*userdomain.User, error) {
	var found userdomain.User
	if err := r.db.WithContext(ctx).First(&found, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	var found userdomain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *SQLiteRepository) GetByPhone(ctx context.Context, phone string) (*userdomain.User, error) {
	var found userdomain.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *SQLiteRepository) ListByFamily(ctx context.Context, familyID uint) ([]userdomain.User, error) {
	var members []userdomain.User
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("id asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id uint, input userdomain.UpdateInput) (int64, error) {
	values := map[string]any{}
	if input.Name != nil {
		values["name"] = *input.Name
	}
	if input.Email != nil {
		values["email"] = *input.Email
	}
	if input.Phone != nil {
		values["phone"] = *input.Phone
	}
	if input.PhotoURL != nil {
		values["photo_url"] = *input.PhotoURL
	}
	if len(values) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&userdomain.User{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return 0, translateUnique(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SQLiteRepository) SetFamily(ctx context.Context, id uint, familyID *uint) (int64, error) {
	result := r.db.WithContext(ctx).Model(&userdomain.User{}).Where("id = ?", id).Update("family_id", familyID)
	return result.RowsAffected, result.Error
}

func (r *SQLiteRepository) SetPhoto(ctx context.Context, id uint, url string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&userdomain.User{}).Where("id = ?", id).Update("photo_url", url)
	return result.RowsAffected, result.Error
}

func translateUnique(err error) error {
	switch column, _ := sqliteerr.UniqueColumn(err); column {
	case "email":
		return userdomain.ErrEmailTaken
	case "phone":
		return userdomain.ErrPhoneTaken
	default:
		return err
	}
}
