package dto

import "github.com/google/uuid"

// CreateAddressRequest represents address creation data. The client supplies
// the ID; creation is rejected when an address with that ID already exists.
type CreateAddressRequest struct {
	ID         uuid.UUID `json:"id" binding:"required"`
	Street     string    `json:"street" binding:"required"`
	City       string    `json:"city" binding:"required"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code" binding:"required"`
	Country    string    `json:"country" binding:"required"`
}

// UpdateAddressRequest represents a partial address update. Absent fields are
// left untouched; a field supplied with its empty value is applied.
type UpdateAddressRequest struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

// AddressPayload is the address shape embedded in person payloads.
type AddressPayload struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}
