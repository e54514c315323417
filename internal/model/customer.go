package model

import (
	"strings"
	"time"
)

// Customer is a registered buyer.
type Customer struct {
	ID               int64       `json:"id"`
	FirstName        string      `json:"first_name"`
	LastName         string      `json:"last_name"`
	BirthDate        string      `json:"birth_date,omitempty"`
	BloodStatus      BloodStatus `json:"blood_status,omitempty"`
	House            House       `json:"house,omitempty"`
	Species          string      `json:"species,omitempty"`
	WandLicense      string      `json:"wand_license,omitempty"`
	Notes            string      `json:"notes,omitempty"`
	RegistrationDate time.Time   `json:"registration_date"`
}

// FullName joins first and last name.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// HasLicense reports whether a non-blank wand license is set.
func (c *Customer) HasLicense() bool {
	return strings.TrimSpace(c.WandLicense) != ""
}
