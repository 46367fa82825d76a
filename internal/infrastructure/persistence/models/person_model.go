package models

import (
	"time"

	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
)

// PersonModel is the GORM database model for persons (infrastructure concern)
type PersonModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	Name               string `gorm:"type:varchar(40)"`
	Email              string `gorm:"type:varchar(40)"`
	DateOfBirth        *time.Time
	Gender             string        `gorm:"type:varchar(10)"`
	CountryID          *string       `gorm:"index;type:uuid"`
	Country            *CountryModel `gorm:"foreignKey:CountryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Address            string        `gorm:"type:varchar(200)"`
	ReceiveNewsLetters bool          `gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (PersonModel) TableName() string {
	return "persons"
}

// ToDomain converts GORM model to domain entity.
// Country is populated only when the association was preloaded.
func (m *PersonModel) ToDomain() *persons.Person {
	p := &persons.Person{
		ID:                 m.ID,
		Name:               m.Name,
		Email:              m.Email,
		DateOfBirth:        m.DateOfBirth,
		Gender:             m.Gender,
		CountryID:          m.CountryID,
		Address:            m.Address,
		ReceiveNewsLetters: m.ReceiveNewsLetters,
	}
	if m.Country != nil {
		p.Country = m.Country.ToDomain()
	}
	return p
}

// FromDomain converts domain entity to GORM model.
// The Country association is left unset so writes never touch the countries table.
func (m *PersonModel) FromDomain(p *persons.Person) {
	m.ID = p.ID
	m.Name = p.Name
	m.Email = p.Email
	m.DateOfBirth = p.DateOfBirth
	m.Gender = p.Gender
	m.CountryID = p.CountryID
	m.Address = p.Address
	m.ReceiveNewsLetters = p.ReceiveNewsLetters
}
