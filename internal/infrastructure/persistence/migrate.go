package persistence

import (
	"fmt"

	"github.com/annuyadav31/CRUDExample/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the countries and persons tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.CountryModel{}, &models.PersonModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
