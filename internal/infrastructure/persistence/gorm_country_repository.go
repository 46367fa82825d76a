package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
	"github.com/annuyadav31/CRUDExample/internal/infrastructure/persistence/models"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCountryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCountryRepository creates a new GORM-based CountryRepository implementation
func NewGormCountryRepository(db *gorm.DB, logger logger.Logger) (countries.CountryRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection must not be nil")
	}
	return &gormCountryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCountryRepository) Create(ctx context.Context, country *countries.Country) error {
	if err := country.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CountryModel{}
	model.FromDomain(country)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create country: %w", err)
	}

	r.logger.Info("Created country with id ", country.ID)
	return nil
}

func (r *gormCountryRepository) List(ctx context.Context) ([]*countries.Country, error) {
	var modelList []*models.CountryModel
	if err := r.db.WithContext(ctx).Order("name asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch countries: %w", err)
	}

	domainList := make([]*countries.Country, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCountryRepository) GetByID(ctx context.Context, countryID string) (*countries.Country, error) {
	var model models.CountryModel
	if err := r.db.WithContext(ctx).Where("id = ?", countryID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("country with ID %s: %w", countryID, shared.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch country: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCountryRepository) GetByName(ctx context.Context, name string) (*countries.Country, error) {
	var model models.CountryModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("country with name %s: %w", name, shared.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch country: %w", err)
	}
	return model.ToDomain(), nil
}
