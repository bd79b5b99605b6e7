package transactions

import (
	"context"
	"time"

	txdomain "famcash/internal/domain/transactions"

	"gorm.io/gorm"
)

type SQLiteRepository struct {
	db *gorm.DB
}

func NewSQLite(db *gorm.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Transaction(ctx context.Context, fn func(txdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SQLiteRepository{db: tx})
	})
}

func (r *SQLiteRepository) Create(ctx context.Context, transaction *txdomain.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID uint) ([]txdomain.Entry, error) {
	type entryRow struct {
		ID           uint      `gorm:"column:id"`
		UserID       uint      `gorm:"column:user_id"`
		Kind         string    `gorm:"column:kind"`
		Description  string    `gorm:"column:description"`
		Amount       int64     `gorm:"column:amount"`
		CategoryID   *uint     `gorm:"column:category_id"`
		Date         time.Time `gorm:"column:date"`
		Notes        *string   `gorm:"column:notes"`
		CreatedAt    time.Time `gorm:"column:created_at"`
		UpdatedAt    time.Time `gorm:"column:updated_at"`
		CategoryName *string   `gorm:"column:category_name"`
	}

	var rows []entryRow
	if err := r.db.WithContext(ctx).
		Table("transactions").
		Select("transactions.*, categories.name as category_name").
		Joins("left join categories on categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Order("transactions.date desc, transactions.id desc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]txdomain.Entry, 0, len(rows))
	for _, row := range rows {
		entry := txdomain.Entry{
			Transaction: txdomain.Transaction{
				ID:          row.ID,
				UserID:      row.UserID,
				Kind:        row.Kind,
				Description: row.Description,
				Amount:      row.Amount,
				CategoryID:  row.CategoryID,
				Date:        row.Date,
				Notes:       row.Notes,
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
			},
		}
		if row.CategoryName != nil {
			entry.CategoryName = *row.CategoryName
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id uint, input txdomain.UpdateInput) (int64, error) {
	values := map[string]any{}
	if input.Description != nil {
		values["description"] = *input.Description
	}
	if input.Amount != nil {
		values["amount"] = *input.Amount
	}
	if input.CategoryID != nil {
		values["category_id"] = *input.CategoryID
	}
	if input.Notes != nil {
		values["notes"] = *input.Notes
	}
	if len(values) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&txdomain.Transaction{}).Where("id = ?", id).Updates(values)
	return result.RowsAffected, result.Error
}

func (r *SQLiteRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&txdomain.Transaction{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *SQLiteRepository) CreateCategory(ctx context.Context, category *txdomain.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *SQLiteRepository) ListCategories(ctx context.Context, userID uint) ([]txdomain.Category, error) {
	var listed []txdomain.Category
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&listed).Error; err != nil {
		return nil, err
	}
	return listed, nil
}

func (r *SQLiteRepository) CountCategories(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&txdomain.Category{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SQLiteRepository) DeleteCategory(ctx context.Context, userID, categoryID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&txdomain.Category{}, "id = ? AND user_id = ?", categoryID, userID)
	return result.RowsAffected, result.Error
}
