package database

import (
	"fmt"

	"github.com/OblivionLi/salaries-management-system/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Salary{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
