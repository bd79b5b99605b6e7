package items

import (
	"context"

	itemsdomain "famcash/internal/domain/items"

	"gorm.io/gorm"
)

type SQLiteRepository struct {
	db *gorm.DB
}

func NewSQLite(db *gorm.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, item *itemsdomain.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *SQLiteRepository) List(ctx context.Context) ([]itemsdomain.Item, error) {
	var listed []itemsdomain.Item
	if err := r.db.WithContext(ctx).Order("id asc").Find(&listed).Error; err != nil {
		return nil, err
	}
	return listed, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id uint, name string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&itemsdomain.Item{}).Where("id = ?", id).Update("name", name)
	return result.RowsAffected, result.Error
}

func (r *SQLiteRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&itemsdomain.Item{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
