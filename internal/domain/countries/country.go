package countries

import (
	"strings"

	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
)

// Country entity
type Country struct {
	ID   string `validate:"required,uuid4"`
	Name string `validate:"required,notblank,max=40"`
}

// Validate for validating Country struct
func (c *Country) Validate() error {
	return shared.Validate(c)
}

// CountryAddRequest carries the values needed to add a new country.
// A nil CountryName means the caller never supplied one.
type CountryAddRequest struct {
	CountryName *string `json:"countryName"`
}

// ToCountry converts the request into a Country without an ID.
func (r *CountryAddRequest) ToCountry() *Country {
	c := &Country{}
	if r.CountryName != nil {
		c.Name = strings.TrimSpace(*r.CountryName)
	}
	return c
}

// CountryResponse is the shape returned by the CountryService.
type CountryResponse struct {
	CountryID   string `json:"countryId"`
	CountryName string `json:"countryName"`
}

// ToCountryResponse maps a Country to a CountryResponse.
func ToCountryResponse(c *Country) *CountryResponse {
	if c == nil {
		return nil
	}
	return &CountryResponse{
		CountryID:   c.ID,
		CountryName: c.Name,
	}
}
