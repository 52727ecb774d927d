// Package services orchestrates validation results into store operations and
// owns server-side record shaping (identity and timestamp generation, partial
// patch application).
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

// AddressService handles address-related operations
type AddressService struct {
	addressRepo *repositories.AddressRepository
}

// NewAddressService creates a new address service instance
func NewAddressService(addressRepo *repositories.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// CreateAddress stores a new address under its client-supplied ID. It fails
// with a conflict error when the ID is taken.
func (s *AddressService) CreateAddress(ctx context.Context, req dto.CreateAddressRequest) (*models.Address, error) {
	address := &models.Address{
		ID:         req.ID,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}
	if err := s.addressRepo.Insert(address); err != nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("Address with ID %s already exists", req.ID))
	}
	return address, nil
}

// GetAddressByID retrieves an address by ID
func (s *AddressService) GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	address, err := s.addressRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("Address %s not found", id))
	}
	return address, nil
}

// ListAddresses returns every address matching the filter
func (s *AddressService) ListAddresses(ctx context.Context, filter models.AddressFilter) []*models.Address {
	return s.addressRepo.List(filter)
}

// UpdateAddress merges the supplied fields onto the stored address. Absent
// fields are left untouched.
func (s *AddressService) UpdateAddress(ctx context.Context, id uuid.UUID, req dto.UpdateAddressRequest) (*models.Address, error) {
	address, err := s.addressRepo.Update(id, func(address *models.Address) {
		if req.Street != nil {
			address.Street = *req.Street
		}
		if req.City != nil {
			address.City = *req.City
		}
		if req.State != nil {
			address.State = *req.State
		}
		if req.PostalCode != nil {
			address.PostalCode = *req.PostalCode
		}
		if req.Country != nil {
			address.Country = *req.Country
		}
	})
	if err != nil {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("Address %s not found", id))
	}
	return address, nil
}
