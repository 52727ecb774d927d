package models

import "github.com/google/uuid"

// Address is the stored representation of a mailing address. Unlike the other
// resources, its ID is supplied by the client at creation time.
type Address struct {
	ID         uuid.UUID `json:"id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
}

// EmbeddedAddress is an address record carried inside a person. It has no
// identity of its own and never enters the address collection.
type EmbeddedAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// AddressFilter narrows an address listing. Nil fields are ignored; supplied
// fields combine with AND and match exactly.
type AddressFilter struct {
	Street     *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}

// Matches reports whether the address satisfies every supplied filter field.
func (f AddressFilter) Matches(a *Address) bool {
	if f.Street != nil && a.Street != *f.Street {
		return false
	}
	if f.City != nil && a.City != *f.City {
		return false
	}
	if f.State != nil && a.State != *f.State {
		return false
	}
	if f.PostalCode != nil && a.PostalCode != *f.PostalCode {
		return false
	}
	if f.Country != nil && a.Country != *f.Country {
		return false
	}
	return true
}
