package family

import (
	"context"
	"errors"

	familydomain "famcash/internal/domain/family"
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

func (r *SQLiteRepository) Create(ctx context.Context, fam *familydomain.Family) error {
	if err := r.db.WithContext(ctx).Create(fam).Error; err != nil {
		if column, ok := sqliteerr.UniqueColumn(err); ok && column == "name" {
			return familydomain.ErrNameTaken
		}
		return err
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id uint) (*familydomain.Family, error) {
	var found familydomain.Family
	if err := r.db.WithContext(ctx).First(&found, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrFamilyNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *SQLiteRepository) GetByName(ctx context.Context, name string) (*familydomain.Family, error) {
	var found familydomain.Family
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrFamilyNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *SQLiteRepository) Rename(ctx context.Context, id uint, name string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&familydomain.Family{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		if column, ok := sqliteerr.UniqueColumn(result.Error); ok && column == "name" {
			return 0, familydomain.ErrNameTaken
		}
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&familydomain.Family{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *SQLiteRepository) ListMembers(ctx context.Context, familyID uint) ([]userdomain.User, error) {
	var members []userdomain.User
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("id asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
