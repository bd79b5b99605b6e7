package budgets

import (
	"context"
	"errors"

	budgetsdomain "famcash/internal/domain/budgets"

	"gorm.io/gorm"
)

type SQLiteRepository struct {
	db *gorm.DB
}

func NewSQLite(db *gorm.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, budget *budgetsdomain.Budget) error {
	return r.db.WithContext(ctx).Create(budget).Error
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id uint) (*budgetsdomain.Budget, error) {
	var found budgetsdomain.Budget
	if err := r.db.WithContext(ctx).First(&found, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, budgetsdomain.ErrBudgetNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *SQLiteRepository) ListByFamily(ctx context.Context, familyID uint) ([]budgetsdomain.Budget, error) {
	var listed []budgetsdomain.Budget
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("id desc").
		Find(&listed).Error; err != nil {
		return nil, err
	}
	return listed, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id uint, input budgetsdomain.UpdateInput) (int64, error) {
	values := map[string]any{}
	if input.Name != nil {
		values["name"] = *input.Name
	}
	if input.Amount != nil {
		values["amount"] = *input.Amount
	}
	if input.Category != nil {
		values["category"] = *input.Category
	}
	if input.StartDate != nil {
		values["start_date"] = *input.StartDate
	}
	if input.EndDate != nil {
		values["end_date"] = *input.EndDate
	}
	if len(values) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&budgetsdomain.Budget{}).Where("id = ?", id).Updates(values)
	return result.RowsAffected, result.Error
}

func (r *SQLiteRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&budgetsdomain.Budget{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
