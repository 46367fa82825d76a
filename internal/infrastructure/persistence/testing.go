//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/pkg/config"
	"github.com/annuyadav31/CRUDExample/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	CountryRepo countries.CountryRepository
	PersonRepo  persons.PersonRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	countryRepo, err := NewGormCountryRepository(db, logger)
	require.NoError(t, err, "Failed to create country repository")

	personRepo, err := NewGormPersonRepository(db, logger)
	require.NoError(t, err, "Failed to create person repository")

	return &TestContext{
		DB:          db,
		CountryRepo: countryRepo,
		PersonRepo:  personRepo,
	}
}

// CreateTestCountry stores a country with the given name
func CreateTestCountry(t *testing.T, ctx *TestContext, name string) *countries.Country {
	t.Helper()

	country := &countries.Country{ID: uuid.NewString(), Name: name}
	require.NoError(t, ctx.CountryRepo.Create(context.Background(), country))
	return country
}

// CreateTestPerson builds, but does not store, a person living in country
func CreateTestPerson(t *testing.T, country *countries.Country, name, gender string) *persons.Person {
	t.Helper()

	dob := time.Date(1993, time.January, 2, 0, 0, 0, 0, time.UTC)
	p := &persons.Person{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       strings.ToLower(name) + "@example.com",
		DateOfBirth: &dob,
		Gender:      gender,
		Address:     "1 Test Street",
	}
	if country != nil {
		p.CountryID = &country.ID
	}
	return p
}
