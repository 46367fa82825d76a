package persons

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
)

// Person entity
type Person struct {
	ID                 string `validate:"required,uuid4"`
	Name               string `validate:"max=40"`
	Email              string `validate:"omitempty,email,max=40"`
	DateOfBirth        *time.Time
	Gender             string             `validate:"max=10"`
	CountryID          *string            `validate:"omitempty,uuid4"`
	Country            *countries.Country `validate:"-"`
	Address            string             `validate:"max=200"`
	ReceiveNewsLetters bool
}

// Validate for validating Person struct
func (p *Person) Validate() error {
	return shared.Validate(p)
}

// PersonAddRequest carries the values needed to add a new person.
type PersonAddRequest struct {
	PersonName         string        `json:"personName" validate:"required,notblank,max=40"`
	Email              string        `json:"email" validate:"required,email,max=40"`
	DateOfBirth        *time.Time    `json:"dateOfBirth" validate:"required"`
	Gender             GenderOptions `json:"gender" validate:"required,gender"`
	CountryID          string        `json:"countryId" validate:"required,uuid4"`
	Address            string        `json:"address" validate:"required,notblank,max=200"`
	ReceiveNewsLetters bool          `json:"receiveNewsLetters"`
}

// Validate for validating PersonAddRequest struct
func (r *PersonAddRequest) Validate() error {
	return shared.Validate(r)
}

// ToPerson converts the request into a Person without an ID.
func (r *PersonAddRequest) ToPerson() *Person {
	return &Person{
		Name:               strings.TrimSpace(r.PersonName),
		Email:              strings.TrimSpace(r.Email),
		DateOfBirth:        r.DateOfBirth,
		Gender:             string(r.Gender),
		CountryID:          optionalString(r.CountryID),
		Address:            strings.TrimSpace(r.Address),
		ReceiveNewsLetters: r.ReceiveNewsLetters,
	}
}

// PersonUpdateRequest carries the full replacement of an existing person.
type PersonUpdateRequest struct {
	PersonID           string        `json:"personId" validate:"required,uuid4"`
	PersonName         string        `json:"personName" validate:"required,notblank,max=40"`
	Email              string        `json:"email" validate:"required,email,max=40"`
	DateOfBirth        *time.Time    `json:"dateOfBirth" validate:"required"`
	Gender             GenderOptions `json:"gender" validate:"required,gender"`
	CountryID          string        `json:"countryId" validate:"required,uuid4"`
	Address            string        `json:"address" validate:"required,notblank,max=200"`
	ReceiveNewsLetters bool          `json:"receiveNewsLetters"`
}

// Validate for validating PersonUpdateRequest struct
func (r *PersonUpdateRequest) Validate() error {
	return shared.Validate(r)
}

// ToPerson converts the request into a Person keeping its ID.
func (r *PersonUpdateRequest) ToPerson() *Person {
	return &Person{
		ID:                 r.PersonID,
		Name:               strings.TrimSpace(r.PersonName),
		Email:              strings.TrimSpace(r.Email),
		DateOfBirth:        r.DateOfBirth,
		Gender:             string(r.Gender),
		CountryID:          optionalString(r.CountryID),
		Address:            strings.TrimSpace(r.Address),
		ReceiveNewsLetters: r.ReceiveNewsLetters,
	}
}

// PersonResponse is the shape returned by the PersonService.
type PersonResponse struct {
	PersonID           string     `json:"personId"`
	PersonName         string     `json:"personName"`
	Email              string     `json:"email"`
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty"`
	Gender             string     `json:"gender"`
	CountryID          *string    `json:"countryId,omitempty"`
	Country            *string    `json:"country,omitempty"`
	Address            string     `json:"address"`
	ReceiveNewsLetters bool       `json:"receiveNewsLetters"`
	Age                *float64   `json:"age,omitempty"`
}

// ToPersonResponse maps a Person to a PersonResponse using the current time for Age.
func ToPersonResponse(p *Person) *PersonResponse {
	return toPersonResponseAt(p, time.Now())
}

func toPersonResponseAt(p *Person, now time.Time) *PersonResponse {
	if p == nil {
		return nil
	}

	resp := &PersonResponse{
		PersonID:           p.ID,
		PersonName:         p.Name,
		Email:              p.Email,
		DateOfBirth:        p.DateOfBirth,
		Gender:             p.Gender,
		CountryID:          p.CountryID,
		Address:            p.Address,
		ReceiveNewsLetters: p.ReceiveNewsLetters,
	}
	if p.DateOfBirth != nil {
		resp.Age = AgeAt(*p.DateOfBirth, now)
	}
	if p.Country != nil {
		name := p.Country.Name
		resp.Country = &name
	}
	return resp
}

// AgeAt returns the age in whole years, rounding days/365.25 to the nearest integer.
func AgeAt(dob, now time.Time) *float64 {
	age := math.Round(now.Sub(dob).Hours() / 24 / 365.25)
	return &age
}

// ToPersonUpdateRequest converts the response back into an update request.
func (r *PersonResponse) ToPersonUpdateRequest() *PersonUpdateRequest {
	gender, _ := ParseGender(r.Gender)
	return &PersonUpdateRequest{
		PersonID:           r.PersonID,
		PersonName:         r.PersonName,
		Email:              r.Email,
		DateOfBirth:        r.DateOfBirth,
		Gender:             gender,
		CountryID:          derefString(r.CountryID),
		Address:            r.Address,
		ReceiveNewsLetters: r.ReceiveNewsLetters,
	}
}

// DateOfBirthString formats DateOfBirth with layout, or returns "" when unset.
func (r *PersonResponse) DateOfBirthString(layout string) string {
	if r.DateOfBirth == nil {
		return ""
	}
	return r.DateOfBirth.Format(layout)
}

// AgeString returns Age without decimals, or "" when unknown.
func (r *PersonResponse) AgeString() string {
	if r.Age == nil {
		return ""
	}
	return fmt.Sprintf("%.0f", *r.Age)
}

// CountryName returns the related country name, or "" when not loaded.
func (r *PersonResponse) CountryName() string {
	return derefString(r.Country)
}

func (r *PersonResponse) String() string {
	return fmt.Sprintf("Person ID: %s, Person Name: %s, Email: %s, Date of Birth: %s, Gender: %s, Country ID: %s, Country: %s, Address: %s, Receive News Letters: %t",
		r.PersonID, r.PersonName, r.Email, r.DateOfBirthString(DateLayout), r.Gender,
		derefString(r.CountryID), r.CountryName(), r.Address, r.ReceiveNewsLetters)
}

// PersonQuery narrows Filter to persons whose SearchBy field matches SearchString.
// An empty SearchBy or SearchString matches every person.
type PersonQuery struct {
	SearchBy     string
	SearchString string
}

// IsEmpty reports whether the query matches everything.
func (q *PersonQuery) IsEmpty() bool {
	return q == nil || strings.TrimSpace(q.SearchBy) == "" || strings.TrimSpace(q.SearchString) == ""
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
