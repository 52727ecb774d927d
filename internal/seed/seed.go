// Package seed loads a small demo dataset into the in-memory stores. It is
// only invoked when seeding is enabled in the configuration and exists so a
// fresh process has something to list against.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/akothari/campus-registry/internal/app/models/dto"
	"github.com/akothari/campus-registry/internal/app/services"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

// CreateDemoData populates the stores with a few sample records.
func CreateDemoData(
	ctx context.Context,
	addressService *services.AddressService,
	personService *services.PersonService,
	courseService *services.CourseService,
	lgr zerolog.Logger,
) error {
	address := dto.CreateAddressRequest{
		ID:         uuid.MustParse("11111111-1111-4111-8111-111111111111"),
		Street:     "116th St & Broadway",
		City:       "New York",
		State:      "NY",
		PostalCode: "10027",
		Country:    "USA",
	}
	if _, err := addressService.CreateAddress(ctx, address); err != nil {
		return fmt.Errorf("failed to seed address: %w", err)
	}

	person := dto.CreatePersonRequest{
		Uni:       "ab1234",
		FirstName: "Ada",
		LastName:  "Byron",
		Email:     "ab1234@columbia.edu",
		Phone:     "+1-212-555-0142",
		BirthDate: "2001-12-10",
		Addresses: []dto.AddressPayload{
			{
				Street:     "500 W 120th St",
				City:       "New York",
				State:      "NY",
				PostalCode: "10027",
				Country:    "USA",
			},
		},
	}
	created := personService.CreatePerson(ctx, person)
	lgr.Debug().Str("personId", created.ID.String()).Msg("Seeded demo person")

	courses := []dto.CreateCourseRequest{
		{
			Code:          "COMS4153",
			Title:         "Cloud Computing",
			Description:   "Introduction to cloud computing concepts, architectures, and services.",
			Credits:       intPtr(3),
			Instructor:    "Dr. Jane Smith",
			Department:    "Computer Science",
			Level:         "graduate",
			Term:          "fall",
			Year:          2025,
			MaxEnrollment: intPtr(50),
			Prerequisites: []string{"COMS3157", "COMS3261"},
			MeetingTimes:  strPtr("MW 10:10-11:25 AM"),
			Location:      strPtr("Mudd 633"),
		},
		{
			Code:        "COMS4111",
			Title:       "Introduction to Databases",
			Description: "Data models, query languages, and database design.",
			Credits:     intPtr(3),
			Instructor:  "Dr. John Doe",
			Department:  "Computer Science",
			Level:       "undergraduate",
			Term:        "spring",
			Year:        2026,
		},
	}
	for _, course := range courses {
		created := courseService.CreateCourse(ctx, course)
		lgr.Debug().Str("courseId", created.ID.String()).Str("code", created.Code).Msg("Seeded demo course")
	}

	lgr.Info().Msg("Demo data seeded")
	return nil
}
