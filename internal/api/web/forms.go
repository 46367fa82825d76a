package web

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/annuyadav31/CRUDExample/internal/domain/persons"
	"github.com/annuyadav31/CRUDExample/internal/domain/shared"
)

// PersonForm is the HTML form representation of a person
type PersonForm struct {
	PersonID           string `form:"PersonID"`
	PersonName         string `form:"PersonName"`
	Email              string `form:"Email"`
	DateOfBirth        string `form:"DateOfBirth"`
	Gender             string `form:"Gender"`
	CountryID          string `form:"CountryID"`
	Address            string `form:"Address"`
	ReceiveNewsLetters bool   `form:"ReceiveNewsLetters"`
}

// formErrors collects what went wrong with a submitted form
type formErrors struct {
	Fields   map[string]string
	Messages []string
}

func (e *formErrors) add(err error) {
	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		if e.Fields == nil {
			e.Fields = make(map[string]string, len(verr.Fields))
		}
		for field, msg := range verr.Fields {
			e.Fields[field] = msg
			e.Messages = append(e.Messages, msg)
		}
		return
	}
	e.Messages = append(e.Messages, err.Error())
}

func (e *formErrors) empty() bool {
	return len(e.Fields) == 0 && len(e.Messages) == 0
}

func (f *PersonForm) dateOfBirth() (*time.Time, error) {
	value := strings.TrimSpace(f.DateOfBirth)
	if value == "" {
		return nil, nil
	}
	dob, err := time.Parse(persons.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("date of birth %q is not a valid date: %w", value, shared.ErrInvalidArgument)
	}
	return &dob, nil
}

// ToAddRequest converts the form into a PersonAddRequest. Date parse failures
// are reported as a DateOfBirth field error.
func (f *PersonForm) ToAddRequest() (*persons.PersonAddRequest, *formErrors) {
	var errs formErrors

	dob, err := f.dateOfBirth()
	if err != nil {
		errs.Fields = map[string]string{"DateOfBirth": "Please enter a valid date of birth"}
		errs.Messages = append(errs.Messages, errs.Fields["DateOfBirth"])
	}

	gender, _ := persons.ParseGender(f.Gender)
	req := &persons.PersonAddRequest{
		PersonName:         strings.TrimSpace(f.PersonName),
		Email:              strings.TrimSpace(f.Email),
		DateOfBirth:        dob,
		Gender:             gender,
		CountryID:          strings.TrimSpace(f.CountryID),
		Address:            strings.TrimSpace(f.Address),
		ReceiveNewsLetters: f.ReceiveNewsLetters,
	}
	if err := req.Validate(); err != nil {
		errs.add(err)
	}
	if !errs.empty() {
		return nil, &errs
	}
	return req, nil
}

// ToUpdateRequest converts the form into a PersonUpdateRequest for personID.
func (f *PersonForm) ToUpdateRequest(personID string) (*persons.PersonUpdateRequest, *formErrors) {
	add, errs := f.ToAddRequest()
	if errs != nil {
		return nil, errs
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

// NewPersonForm fills a form from an existing person
func NewPersonForm(p *persons.PersonResponse) PersonForm {
	form := PersonForm{
		PersonID:           p.PersonID,
		PersonName:         p.PersonName,
		Email:              p.Email,
		DateOfBirth:        p.DateOfBirthString(persons.DateLayout),
		Gender:             p.Gender,
		Address:            p.Address,
		ReceiveNewsLetters: p.ReceiveNewsLetters,
	}
	if p.CountryID != nil {
		form.CountryID = *p.CountryID
	}
	return form
}
