package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
	"github.com/annuyadav31/CRUDExample/internal/infrastructure/persistence/models"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormPersonRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPersonRepository creates a new GORM-based PersonRepository implementation
func NewGormPersonRepository(db *gorm.DB, logger logger.Logger) (persons.PersonRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection must not be nil")
	}
	return &gormPersonRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPersonRepository) Create(ctx context.Context, person *persons.Person) error {
	if err := person.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PersonModel{}
	model.FromDomain(person)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}

	r.logger.Info("Created person with id ", person.ID)
	return nil
}

func (r *gormPersonRepository) List(ctx context.Context) ([]*persons.Person, error) {
	return r.find(r.db.WithContext(ctx).Model(&models.PersonModel{}))
}

// Filter matches the chosen field case-insensitively. Matching runs over the
// loaded rows so the search text is compared literally and folded the same
// way on every store; DateOfBirth is compared against its "02 January 2006"
// rendering.
func (r *gormPersonRepository) Filter(ctx context.Context, query *persons.PersonQuery) ([]*persons.Person, error) {
	all, err := r.find(r.db.WithContext(ctx).Model(&models.PersonModel{}))
	if err != nil {
		return nil, err
	}
	if query.IsEmpty() {
		return all, nil
	}

	match := matcherFor(query.SearchBy, strings.TrimSpace(query.SearchString))
	if match == nil {
		r.logger.Warn("Ignoring unknown search field ", query.SearchBy)
		return all, nil
	}

	matched := make([]*persons.Person, 0, len(all))
	for _, p := range all {
		if match(p) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// matcherFor returns the predicate for searchBy, or nil for an unknown field.
func matcherFor(searchBy, term string) func(*persons.Person) bool {
	folded := strings.ToLower(term)
	contains := func(field func(*persons.Person) string) func(*persons.Person) bool {
		return func(p *persons.Person) bool {
			return strings.Contains(strings.ToLower(field(p)), folded)
		}
	}

	switch searchBy {
	case persons.SearchByPersonName:
		return contains(func(p *persons.Person) string { return p.Name })
	case persons.SearchByEmail:
		return contains(func(p *persons.Person) string { return p.Email })
	case persons.SearchByAddress:
		return contains(func(p *persons.Person) string { return p.Address })
	case persons.SearchByGender:
		return func(p *persons.Person) bool { return strings.EqualFold(p.Gender, term) }
	case persons.SearchByCountryID:
		return contains(func(p *persons.Person) string {
			if p.Country == nil {
				return ""
			}
			return p.Country.Name
		})
	case persons.SearchByDateOfBirth:
		return func(p *persons.Person) bool {
			if p.DateOfBirth == nil {
				return false
			}
			return strings.Contains(strings.ToLower(p.DateOfBirth.Format(persons.DateOfBirthSearchLayout)), folded)
		}
	default:
		return nil
	}
}

func (r *gormPersonRepository) find(dbQuery *gorm.DB) ([]*persons.Person, error) {
	var modelList []*models.PersonModel
	if err := dbQuery.Preload("Country").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch persons: %w", err)
	}

	domainList := make([]*persons.Person, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPersonRepository) GetByID(ctx context.Context, personID string) (*persons.Person, error) {
	var model models.PersonModel
	if err := r.db.WithContext(ctx).Preload("Country").Where("id = ?", personID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("person with ID %s: %w", personID, shared.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch person: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPersonRepository) UpdateByID(ctx context.Context, person *persons.Person) error {
	if err := person.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PersonModel{}
	model.FromDomain(person)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	r.logger.Info("Updated person with id ", person.ID)
	return nil
}

func (r *gormPersonRepository) DeleteByID(ctx context.Context, personID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", personID).Delete(&models.PersonModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete person: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("person with ID %s: %w", personID, shared.ErrNotFound)
	}

	r.logger.Info("Deleted person with id ", personID)
	return nil
}
