package goals

import (
	"context"
	"errors"

	goalsdomain "famcash/internal/domain/goals"

	"gorm.io/gorm"
)

type SQLiteRepository struct {
	db *gorm.DB
}

func NewSQLite(db *gorm.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Transaction(ctx context.Context, fn func(goalsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SQLiteRepository{db: tx})
	})
}

func (r *SQLiteRepository) Create(ctx context.Context, goal *goalsdomain.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id uint) (*goalsdomain.Goal, error) {
	var found goalsdomain.Goal
	if err := r.db.WithContext(ctx).First(&found, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goalsdomain.ErrGoalNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *SQLiteRepository) ListByFamily(ctx context.Context, familyID uint) ([]goalsdomain.Goal, error) {
	var listed []goalsdomain.Goal
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("id asc").
		Find(&listed).Error; err != nil {
		return nil, err
	}
	return listed, nil
}

func (r *SQLiteRepository) AddToCurrent(ctx context.Context, id uint, amount int64) error {
	return r.db.WithContext(ctx).Model(&goalsdomain.Goal{}).
		Where("id = ?", id).
		Update("current_amount", gorm.Expr("current_amount + ?", amount)).Error
}

func (r *SQLiteRepository) SetStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&goalsdomain.Goal{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *SQLiteRepository) Update(ctx context.Context, id uint, input goalsdomain.UpdateInput) (int64, error) {
	values := map[string]any{}
	if input.Name != nil {
		values["name"] = *input.Name
	}
	if input.TargetAmount != nil {
		values["target_amount"] = *input.TargetAmount
	}
	if input.TargetDate != nil {
		values["target_date"] = *input.TargetDate
	}
	if len(values) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&goalsdomain.Goal{}).Where("id = ?", id).Updates(values)
	return result.RowsAffected, result.Error
}

func (r *SQLiteRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&goalsdomain.Goal{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
