package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"
	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
)

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// InfoResponse carries a plain confirmation message
type InfoResponse struct {
	Message string `json:"message"`
}

// PersonRequest is the JSON body of person create and update requests
type PersonRequest struct {
	PersonName         string `json:"personName"`
	Email              string `json:"email"`
	DateOfBirth        string `json:"dateOfBirth" example:"1990-03-03"`
	Gender             string `json:"gender" example:"Female"`
	CountryID          string `json:"countryId"`
	Address            string `json:"address"`
	ReceiveNewsLetters bool   `json:"receiveNewsLetters"`
}

func (r *PersonRequest) dateOfBirth() (*time.Time, error) {
	if strings.TrimSpace(r.DateOfBirth) == "" {
		return nil, nil
	}
	dob, err := time.Parse(persons.DateLayout, strings.TrimSpace(r.DateOfBirth))
	if err != nil {
		return nil, fmt.Errorf("dateOfBirth must use the YYYY-MM-DD format: %w", shared.ErrInvalidArgument)
	}
	return &dob, nil
}

// ToAddRequest converts the body into a PersonAddRequest
func (r *PersonRequest) ToAddRequest() (*persons.PersonAddRequest, error) {
	dob, err := r.dateOfBirth()
	if err != nil {
		return nil, err
	}
	gender, _ := persons.ParseGender(r.Gender)
	return &persons.PersonAddRequest{
		PersonName:         r.PersonName,
		Email:              r.Email,
		DateOfBirth:        dob,
		Gender:             gender,
		CountryID:          r.CountryID,
		Address:            r.Address,
		ReceiveNewsLetters: r.ReceiveNewsLetters,
	}, nil
}

// ToUpdateRequest converts the body into a PersonUpdateRequest for personID
func (r *PersonRequest) ToUpdateRequest(personID string) (*persons.PersonUpdateRequest, error) {
	add, err := r.ToAddRequest()
	if err != nil {
		return nil, err
	}
	return &persons.PersonUpdateRequest{
		PersonID:           personID,
		PersonName:         add.PersonName,
		Email:              add.Email,
		DateOfBirth:        add.DateOfBirth,
		Gender:             add.Gender,
		CountryID:          add.CountryID,
		Address:            add.Address,
		ReceiveNewsLetters: add.ReceiveNewsLetters,
	}, nil
}

// PersonResponse is the JSON representation of a person
type PersonResponse struct {
	PersonID           string   `json:"personId"`
	PersonName         string   `json:"personName"`
	Email              string   `json:"email"`
	DateOfBirth        string   `json:"dateOfBirth,omitempty"`
	Gender             string   `json:"gender"`
	CountryID          string   `json:"countryId,omitempty"`
	Country            string   `json:"country,omitempty"`
	Address            string   `json:"address"`
	ReceiveNewsLetters bool     `json:"receiveNewsLetters"`
	Age                *float64 `json:"age,omitempty"`
}

// NewPersonResponse maps the service response to its JSON representation
func NewPersonResponse(p *persons.PersonResponse) PersonResponse {
	resp := PersonResponse{
		PersonID:           p.PersonID,
		PersonName:         p.PersonName,
		Email:              p.Email,
		DateOfBirth:        p.DateOfBirthString(persons.DateLayout),
		Gender:             p.Gender,
		Country:            p.CountryName(),
		Address:            p.Address,
		ReceiveNewsLetters: p.ReceiveNewsLetters,
		Age:                p.Age,
	}
	if p.CountryID != nil {
		resp.CountryID = *p.CountryID
	}
	return resp
}

// CountryRequest is the JSON body of country create requests
type CountryRequest struct {
	CountryName *string `json:"countryName"`
}

// CountryResponse is the JSON representation of a country
type CountryResponse struct {
	CountryID   string `json:"countryId"`
	CountryName string `json:"countryName"`
}

// NewCountryResponse maps the service response to its JSON representation
func NewCountryResponse(c *countries.CountryResponse) CountryResponse {
	return CountryResponse{
		CountryID:   c.CountryID,
		CountryName: c.CountryName,
	}
}

// UploadCountriesResponse reports the outcome of a workbook upload
type UploadCountriesResponse struct {
	Inserted int `json:"inserted"`
}
