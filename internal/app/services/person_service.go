package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akothari/campus-registry/internal/app/models"
	"github.com/akothari/campus-registry/internal/app/models/dto"
	"github.com/akothari/campus-registry/internal/app/repositories"
	"github.com/akothari/campus-registry/internal/pkg/apperrors"
)

// PersonService handles person-related operations
type PersonService struct {
	personRepo *repositories.PersonRepository
}

// NewPersonService creates a new person service instance
func NewPersonService(personRepo *repositories.PersonRepository) *PersonService {
	return &PersonService{personRepo: personRepo}
}

// CreatePerson stores a new person under a freshly generated ID.
func (s *PersonService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) *models.Person {
	person := &models.Person{
		ID:        uuid.New(),
		Uni:       req.Uni,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Addresses: embeddedAddresses(req.Addresses),
	}
	s.personRepo.Insert(person)
	return person
}

// GetPersonByID retrieves a person by ID
func (s *PersonService) GetPersonByID(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	person, err := s.personRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("Person %s not found", id))
	}
	return person, nil
}

// ListPersons returns every person matching the filter
func (s *PersonService) ListPersons(ctx context.Context, filter models.PersonFilter) []*models.Person {
	return s.personRepo.List(filter)
}

// UpdatePerson merges the supplied fields onto the stored person. Absent
// fields are left untouched; a supplied address list replaces the stored one.
func (s *PersonService) UpdatePerson(ctx context.Context, id uuid.UUID, req dto.UpdatePersonRequest) (*models.Person, error) {
	person, err := s.personRepo.Update(id, func(person *models.Person) {
		if req.Uni != nil {
			person.Uni = *req.Uni
		}
		if req.FirstName != nil {
			person.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			person.LastName = *req.LastName
		}
		if req.Email != nil {
			person.Email = *req.Email
		}
		if req.Phone != nil {
			person.Phone = *req.Phone
		}
		if req.BirthDate != nil {
			person.BirthDate = *req.BirthDate
		}
		if req.Addresses != nil {
			person.Addresses = embeddedAddresses(*req.Addresses)
		}
	})
	if err != nil {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("Person %s not found", id))
	}
	return person, nil
}

// embeddedAddresses maps address payloads onto the stored shape, normalizing
// an absent list to an empty one.
func embeddedAddresses(payloads []dto.AddressPayload) []models.EmbeddedAddress {
	addresses := make([]models.EmbeddedAddress, 0, len(payloads))
	for _, p := range payloads {
		addresses = append(addresses, models.EmbeddedAddress{
			Street:     p.Street,
			City:       p.City,
			State:      p.State,
			PostalCode: p.PostalCode,
			Country:    p.Country,
		})
	}
	return addresses
}
