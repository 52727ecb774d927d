package dto

// CreatePersonRequest represents person creation data. The server assigns the
// ID; any client-supplied id is ignored.
type CreatePersonRequest struct {
	Uni       string           `json:"uni" binding:"required"`
	FirstName string           `json:"first_name" binding:"required"`
	LastName  string           `json:"last_name" binding:"required"`
	Email     string           `json:"email" binding:"required,email"`
	Phone     string           `json:"phone"`
	BirthDate string           `json:"birth_date" binding:"required,datetime=2006-01-02"`
	Addresses []AddressPayload `json:"addresses" binding:"omitempty,dive"`
}

// UpdatePersonRequest represents a partial person update. Absent fields are
// left untouched. A supplied Addresses list replaces the stored list whole.
type UpdatePersonRequest struct {
	Uni       *string           `json:"uni"`
	FirstName *string           `json:"first_name"`
	LastName  *string           `json:"last_name"`
	Email     *string           `json:"email" binding:"omitempty,email"`
	Phone     *string           `json:"phone"`
	BirthDate *string           `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Addresses *[]AddressPayload `json:"addresses" binding:"omitempty,dive"`
}
