// Package repositories provides the process-local in-memory stores backing
// the API. Each repository guards its map with a mutex so individual store
// operations are atomic; state is lost on restart by design.
package repositories

import (
	"sync"

	"github.com/google/uuid"

	"github.com/akothari/campus-registry/internal/app/models"
	"github.com/akothari/campus-registry/internal/pkg/apperrors"
)

// AddressRepository holds every live address keyed by its client-supplied ID.
type AddressRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*models.Address
	order []uuid.UUID
}

// NewAddressRepository creates an empty address repository.
func NewAddressRepository() *AddressRepository {
	return &AddressRepository{
		items: make(map[uuid.UUID]*models.Address),
	}
}

// Insert stores a new address. It fails with ErrAddressAlreadyExists when the
// ID is already taken, leaving the stored record unchanged.
func (r *AddressRepository) Insert(address *models.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[address.ID]; exists {
		return apperrors.ErrAddressAlreadyExists
	}
	r.items[address.ID] = address
	r.order = append(r.order, address.ID)
	return nil
}

// GetByID retrieves an address by ID.
func (r *AddressRepository) GetByID(id uuid.UUID) (*models.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	address, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrAddressNotFound
	}
	return cloneAddress(address), nil
}

// List returns every address satisfying the filter, in insertion order.
func (r *AddressRepository) List(filter models.AddressFilter) []*models.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*models.Address, 0, len(r.order))
	for _, id := range r.order {
		if address := r.items[id]; filter.Matches(address) {
			results = append(results, cloneAddress(address))
		}
	}
	return results
}

// Update applies mutate to the stored address under the write lock and
// returns the updated record.
func (r *AddressRepository) Update(id uuid.UUID, mutate func(*models.Address)) (*models.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	address, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrAddressNotFound
	}
	mutate(address)
	return cloneAddress(address), nil
}

// Count returns the number of stored addresses.
func (r *AddressRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func cloneAddress(a *models.Address) *models.Address {
	clone := *a
	return &clone
}
