package persistence

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/annuyadav31/CRUDExample/internal/infrastructure/persistence/models"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed seed/*.json
var seedFS embed.FS

type countrySeed struct {
	CountryID   string `json:"CountryID"`
	CountryName string `json:"CountryName"`
}

type personSeed struct {
	PersonID           string `json:"PersonID"`
	PersonName         string `json:"PersonName"`
	Email              string `json:"Email"`
	DateOfBirth        string `json:"DateOfBirth"`
	Gender             string `json:"Gender"`
	CountryID          string `json:"CountryID"`
	Address            string `json:"Address"`
	ReceiveNewsLetters bool   `json:"ReceiveNewsLetters"`
}

// SeedResult reports how many rows Seed inserted per table
type SeedResult struct {
	Countries int
	Persons   int
}

// Seed inserts the embedded sample countries and persons.
// A table that already holds rows is left untouched.
func Seed(ctx context.Context, db *gorm.DB, log logger.Logger) (*SeedResult, error) {
	result := &SeedResult{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if result.Countries, err = seedCountries(tx); err != nil {
			return err
		}
		result.Persons, err = seedPersons(tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info(fmt.Sprintf("Seeded %d countries and %d persons", result.Countries, result.Persons))
	return result, nil
}

func seedCountries(tx *gorm.DB) (int, error) {
	var count int64
	if err := tx.Model(&models.CountryModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count countries: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	var seeds []countrySeed
	if err := readSeed("seed/countries.json", &seeds); err != nil {
		return 0, err
	}

	rows := make([]*models.CountryModel, len(seeds))
	for i, s := range seeds {
		rows[i] = &models.CountryModel{ID: s.CountryID, Name: s.CountryName}
	}
	if err := tx.Create(rows).Error; err != nil {
		return 0, fmt.Errorf("failed to seed countries: %w", err)
	}
	return len(rows), nil
}

func seedPersons(tx *gorm.DB) (int, error) {
	var count int64
	if err := tx.Model(&models.PersonModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count persons: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	var seeds []personSeed
	if err := readSeed("seed/persons.json", &seeds); err != nil {
		return 0, err
	}

	rows := make([]*models.PersonModel, len(seeds))
	for i, s := range seeds {
		dob, err := time.Parse("2006-01-02", s.DateOfBirth)
		if err != nil {
			return 0, fmt.Errorf("invalid date of birth for seeded person %s: %w", s.PersonID, err)
		}
		countryID := s.CountryID
		rows[i] = &models.PersonModel{
			ID:                 s.PersonID,
			Name:               s.PersonName,
			Email:              s.Email,
			DateOfBirth:        &dob,
			Gender:             s.Gender,
			CountryID:          &countryID,
			Address:            s.Address,
			ReceiveNewsLetters: s.ReceiveNewsLetters,
		}
	}
	if err := tx.Omit(clause.Associations).Create(rows).Error; err != nil {
		return 0, fmt.Errorf("failed to seed persons: %w", err)
	}
	return len(rows), nil
}

func readSeed(name string, v interface{}) error {
	data, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
