package repositories

import (
	"sync"

	"github.com/google/uuid"

	"github.com/akothari/campus-registry/internal/app/models"
	"github.com/akothari/campus-registry/internal/pkg/apperrors"
)

// PersonRepository holds every live person keyed by its server-assigned ID.
type PersonRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*models.Person
	order []uuid.UUID
}

// NewPersonRepository creates an empty person repository.
func NewPersonRepository() *PersonRepository {
	return &PersonRepository{
		items: make(map[uuid.UUID]*models.Person),
	}
}

// Insert stores a new person. IDs are generated from the UUID space, so a
// collision is not an expected condition.
func (r *PersonRepository) Insert(person *models.Person) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[person.ID] = person
	r.order = append(r.order, person.ID)
}

// GetByID retrieves a person by ID.
func (r *PersonRepository) GetByID(id uuid.UUID) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	person, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrPersonNotFound
	}
	return clonePerson(person), nil
}

// List returns every person satisfying the filter, in insertion order.
func (r *PersonRepository) List(filter models.PersonFilter) []*models.Person {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*models.Person, 0, len(r.order))
	for _, id := range r.order {
		if person := r.items[id]; filter.Matches(person) {
			results = append(results, clonePerson(person))
		}
	}
	return results
}

// Update applies mutate to the stored person under the write lock and returns
// the updated record.
func (r *PersonRepository) Update(id uuid.UUID, mutate func(*models.Person)) (*models.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	person, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrPersonNotFound
	}
	mutate(person)
	return clonePerson(person), nil
}

// Count returns the number of stored persons.
func (r *PersonRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func clonePerson(p *models.Person) *models.Person {
	clone := *p
	if p.Addresses != nil {
		clone.Addresses = make([]models.EmbeddedAddress, len(p.Addresses))
		copy(clone.Addresses, p.Addresses)
	}
	return &clone
}
