package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"github.com/google/uuid"
)

// personService implements the PersonService interface
type personService struct {
	personRepo  persons.PersonRepository
	countryRepo countries.CountryRepository
	logger      logger.Logger
}

// NewPersonService creates a new personService instance
func NewPersonService(
	personRepo persons.PersonRepository,
	countryRepo countries.CountryRepository,
	logger logger.Logger,
) (persons.PersonService, error) {
	if personRepo == nil || countryRepo == nil {
		return nil, fmt.Errorf("person and country repositories must not be nil")
	}
	return &personService{
		personRepo:  personRepo,
		countryRepo: countryRepo,
		logger:      logger,
	}, nil
}

// AddPerson validates the request and stores a new person.
func (s *personService) AddPerson(ctx context.Context, req *persons.PersonAddRequest) (*persons.PersonResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("person add request: %w", shared.ErrNilRequest)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	person := req.ToPerson()
	country, err := s.lookupCountry(ctx, person.CountryID)
	if err != nil {
		return nil, err
	}

	person.ID = uuid.NewString()
	if err := s.personRepo.Create(ctx, person); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	person.Country = country
	return persons.ToPersonResponse(person), nil
}

func (s *personService) lookupCountry(ctx context.Context, countryID *string) (*countries.Country, error) {
	if countryID == nil {
		return nil, nil
	}
	country, err := s.countryRepo.GetByID(ctx, *countryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("country with ID %s doesn't exist: %w", *countryID, shared.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("%w", err)
	}
	return country, nil
}

// GetAllPersons returns every stored person with its country.
func (s *personService) GetAllPersons(ctx context.Context) ([]*persons.PersonResponse, error) {
	list, err := s.personRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return toResponses(list), nil
}

// GetPersonByID returns the matching person or nil when none exists.
func (s *personService) GetPersonByID(ctx context.Context, personID string) (*persons.PersonResponse, error) {
	if strings.TrimSpace(personID) == "" {
		return nil, fmt.Errorf("person id is required: %w", shared.ErrInvalidArgument)
	}
	if !isUUID(personID) {
		return nil, nil
	}

	person, err := s.personRepo.GetByID(ctx, personID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w", err)
	}
	return persons.ToPersonResponse(person), nil
}

// GetFilteredPersons returns the persons whose searchBy field contains searchString.
func (s *personService) GetFilteredPersons(ctx context.Context, searchBy, searchString string) ([]*persons.PersonResponse, error) {
	list, err := s.personRepo.Filter(ctx, &persons.PersonQuery{
		SearchBy:     searchBy,
		SearchString: searchString,
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return toResponses(list), nil
}

// GetSortedPersons orders allPersons by sortBy in the given direction.
// The input slice is left untouched; an empty or unknown sortBy returns it as is.
func (s *personService) GetSortedPersons(_ context.Context, allPersons []*persons.PersonResponse, sortBy string, sortOrder persons.SortOrderOptions) ([]*persons.PersonResponse, error) {
	if sortBy == "" {
		return allPersons, nil
	}

	compare := comparatorFor(sortBy)
	if compare == nil {
		s.logger.Warn("Ignoring unknown sort field ", sortBy)
		return allPersons, nil
	}

	sorted := slices.Clone(allPersons)
	if sortOrder == persons.SortOrderDESC {
		slices.SortStableFunc(sorted, func(a, b *persons.PersonResponse) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(sorted, compare)
	}
	return sorted, nil
}

type personComparator func(a, b *persons.PersonResponse) int

func comparatorFor(sortBy string) personComparator {
	switch sortBy {
	case persons.SortByPersonName:
		return byFold(func(p *persons.PersonResponse) string { return p.PersonName })
	case persons.SortByEmail:
		return byFold(func(p *persons.PersonResponse) string { return p.Email })
	case persons.SortByGender:
		return byFold(func(p *persons.PersonResponse) string { return p.Gender })
	case persons.SortByCountry:
		return byFold(func(p *persons.PersonResponse) string { return p.CountryName() })
	case persons.SortByAddress:
		return byFold(func(p *persons.PersonResponse) string { return p.Address })
	case persons.SortByDateOfBirth:
		return func(a, b *persons.PersonResponse) int { return compareTimes(a.DateOfBirth, b.DateOfBirth) }
	case persons.SortByAge:
		return func(a, b *persons.PersonResponse) int { return compareFloats(a.Age, b.Age) }
	case persons.SortByReceiveNewsLetters:
		return func(a, b *persons.PersonResponse) int {
			return compareBools(a.ReceiveNewsLetters, b.ReceiveNewsLetters)
		}
	default:
		return nil
	}
}

func byFold(key func(*persons.PersonResponse) string) personComparator {
	return func(a, b *persons.PersonResponse) int {
		return strings.Compare(strings.ToLower(key(a)), strings.ToLower(key(b)))
	}
}

// nil sorts before any value
func compareTimes(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}

func compareFloats(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return cmp.Compare(*a, *b)
	}
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// UpdatePerson replaces the details of an existing person.
func (s *personService) UpdatePerson(ctx context.Context, req *persons.PersonUpdateRequest) (*persons.PersonResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("person update request: %w", shared.ErrNilRequest)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.personRepo.GetByID(ctx, req.PersonID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("given person id doesn't exist: %w", shared.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("%w", err)
	}

	person := req.ToPerson()
	country, err := s.lookupCountry(ctx, person.CountryID)
	if err != nil {
		return nil, err
	}

	if err := s.personRepo.UpdateByID(ctx, person); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	person.Country = country
	return persons.ToPersonResponse(person), nil
}

// DeletePerson removes a person. It reports false when the id is unknown.
func (s *personService) DeletePerson(ctx context.Context, personID string) (bool, error) {
	if strings.TrimSpace(personID) == "" {
		return false, fmt.Errorf("person id: %w", shared.ErrNilRequest)
	}
	if !isUUID(personID) {
		return false, nil
	}

	if err := s.personRepo.DeleteByID(ctx, personID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w", err)
	}
	return true, nil
}

func toResponses(list []*persons.Person) []*persons.PersonResponse {
	responses := make([]*persons.PersonResponse, len(list))
	for i, p := range list {
		responses[i] = persons.ToPersonResponse(p)
	}
	return responses
}
