package models

import (
	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
)

// CountryModel is the GORM database model for countries (infrastructure concern)
type CountryModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Name string `gorm:"not null;uniqueIndex;type:varchar(40)"`
}

// TableName specifies the table name for GORM
func (CountryModel) TableName() string {
	return "countries"
}

// ToDomain converts GORM model to domain entity
func (m *CountryModel) ToDomain() *countries.Country {
	return &countries.Country{
		ID:   m.ID,
		Name: m.Name,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CountryModel) FromDomain(c *countries.Country) {
	m.ID = c.ID
	m.Name = c.Name
}
