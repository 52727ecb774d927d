package repositories

import (
	"sync"

	"github.com/google/uuid"

	"github.com/akothari/campus-registry/internal/app/models"
	"github.com/akothari/campus-registry/internal/pkg/apperrors"
)

// CourseRepository holds every live course keyed by its server-assigned ID.
type CourseRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*models.Course
	order []uuid.UUID
}

// NewCourseRepository creates an empty course repository.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		items: make(map[uuid.UUID]*models.Course),
	}
}

// Insert stores a new course. IDs are generated from the UUID space, so a
// collision is not an expected condition.
func (r *CourseRepository) Insert(course *models.Course) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[course.ID] = course
	r.order = append(r.order, course.ID)
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(id uuid.UUID) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return cloneCourse(course), nil
}

// List returns every course satisfying the filter, in insertion order.
func (r *CourseRepository) List(filter models.CourseFilter) []*models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*models.Course, 0, len(r.order))
	for _, id := range r.order {
		if course := r.items[id]; filter.Matches(course) {
			results = append(results, cloneCourse(course))
		}
	}
	return results
}

// Update applies mutate to the stored course under the write lock and returns
// the updated record.
func (r *CourseRepository) Update(id uuid.UUID, mutate func(*models.Course)) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	course, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	mutate(course)
	return cloneCourse(course), nil
}

// Delete removes a course by ID.
func (r *CourseRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.items, id)
	for i, orderedID := range r.order {
		if orderedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Count returns the number of stored courses.
func (r *CourseRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func cloneCourse(c *models.Course) *models.Course {
	clone := *c
	if c.Prerequisites != nil {
		clone.Prerequisites = make([]string, len(c.Prerequisites))
		copy(clone.Prerequisites, c.Prerequisites)
	}
	return &clone
}
