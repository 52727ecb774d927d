package models

import "github.com/google/uuid"

// Person is the stored representation of a registered person. The ID is
// assigned by the server on creation; clients cannot choose it.
type Person struct {
	ID        uuid.UUID         `json:"id"`
	Uni       string            `json:"uni"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	BirthDate string            `json:"birth_date"`
	Addresses []EmbeddedAddress `json:"addresses"`
}

// PersonFilter narrows a person listing. Scalar fields match exactly against
// the person; City and Country match if at least one embedded address has
// that exact value. Nil fields are ignored and the rest combine with AND.
type PersonFilter struct {
	Uni       *string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	BirthDate *string
	City      *string
	Country   *string
}

// Matches reports whether the person satisfies every supplied filter field.
func (f PersonFilter) Matches(p *Person) bool {
	if f.Uni != nil && p.Uni != *f.Uni {
		return false
	}
	if f.FirstName != nil && p.FirstName != *f.FirstName {
		return false
	}
	if f.LastName != nil && p.LastName != *f.LastName {
		return false
	}
	if f.Email != nil && p.Email != *f.Email {
		return false
	}
	if f.Phone != nil && p.Phone != *f.Phone {
		return false
	}
	if f.BirthDate != nil && p.BirthDate != *f.BirthDate {
		return false
	}
	if f.City != nil && !anyAddress(p.Addresses, func(a EmbeddedAddress) bool { return a.City == *f.City }) {
		return false
	}
	if f.Country != nil && !anyAddress(p.Addresses, func(a EmbeddedAddress) bool { return a.Country == *f.Country }) {
		return false
	}
	return true
}

func anyAddress(addrs []EmbeddedAddress, pred func(EmbeddedAddress) bool) bool {
	for _, a := range addrs {
		if pred(a) {
			return true
		}
	}
	return false
}
