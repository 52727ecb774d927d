package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akothari/campus-registry/internal/app/models"
	"github.com/akothari/campus-registry/internal/app/models/dto"
	"github.com/akothari/campus-registry/internal/app/repositories"
	"github.com/akothari/campus-registry/internal/pkg/apperrors"
)

// CourseService handles course-related operations
type CourseService struct {
	courseRepo *repositories.CourseRepository
	// now is swappable so tests can pin timestamps
	now func() time.Time
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreateCourse stores a new course under a freshly generated ID, stamping
// both timestamps with the same creation instant.
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) *models.Course {
	now := s.now()
	prerequisites := req.Prerequisites
	if prerequisites == nil {
		prerequisites = []string{}
	}
	course := &models.Course{
		ID:            uuid.New(),
		Code:          req.Code,
		Title:         req.Title,
		Description:   req.Description,
		Credits:       *req.Credits,
		Instructor:    req.Instructor,
		Department:    req.Department,
		Level:         models.CourseLevel(req.Level),
		Term:          models.CourseTerm(req.Term),
		Year:          req.Year,
		MaxEnrollment: req.MaxEnrollment,
		Prerequisites: prerequisites,
		MeetingTimes:  req.MeetingTimes,
		Location:      req.Location,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.courseRepo.Insert(course)
	return course
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("Course %s not found", id))
	}
	return course, nil
}

// ListCourses returns every course matching the filter
func (s *CourseService) ListCourses(ctx context.Context, filter models.CourseFilter) []*models.Course {
	return s.courseRepo.List(filter)
}

// UpdateCourse merges the supplied fields onto the stored course. A non-empty
// patch refreshes updated_at; an empty patch returns the stored record
// unchanged without touching it.
func (s *CourseService) UpdateCourse(ctx context.Context, id uuid.UUID, req dto.UpdateCourseRequest) (*models.Course, error) {
	if req.IsEmpty() {
		return s.GetCourseByID(ctx, id)
	}
	course, err := s.courseRepo.Update(id, func(course *models.Course) {
		if req.Code != nil {
			course.Code = *req.Code
		}
		if req.Title != nil {
			course.Title = *req.Title
		}
		if req.Description != nil {
			course.Description = *req.Description
		}
		if req.Credits != nil {
			course.Credits = *req.Credits
		}
		if req.Instructor != nil {
			course.Instructor = *req.Instructor
		}
		if req.Department != nil {
			course.Department = *req.Department
		}
		if req.Level != nil {
			course.Level = models.CourseLevel(*req.Level)
		}
		if req.Term != nil {
			course.Term = models.CourseTerm(*req.Term)
		}
		if req.Year != nil {
			course.Year = *req.Year
		}
		if req.MaxEnrollment != nil {
			course.MaxEnrollment = req.MaxEnrollment
		}
		if req.Prerequisites != nil {
			course.Prerequisites = append([]string{}, (*req.Prerequisites)...)
		}
		if req.MeetingTimes != nil {
			course.MeetingTimes = req.MeetingTimes
		}
		if req.Location != nil {
			course.Location = req.Location
		}
		course.UpdatedAt = s.now()
	})
	if err != nil {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("Course %s not found", id))
	}
	return course, nil
}

// DeleteCourse removes a course by ID.
func (s *CourseService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if err := s.courseRepo.Delete(id); err != nil {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("Course %s not found", id))
	}
	return nil
}
