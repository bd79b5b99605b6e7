package db

import (
	"fmt"

	"famcash/internal/domain/budgets"
	"famcash/internal/domain/family"
	"famcash/internal/domain/goals"
	"famcash/internal/domain/items"
	"famcash/internal/domain/transactions"
	"famcash/internal/domain/user"

	"gorm.io/gorm"
)

// Migrate bootstraps the schema. Additive only, safe on every start.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&user.User{},
		&family.Family{},
		&items.Item{},
		&goals.Goal{},
		&budgets.Budget{},
		&transactions.Category{},
		&transactions.Transaction{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
