package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CourseLevel is the academic level a course is offered at.
type CourseLevel string

const (
	LevelUndergraduate CourseLevel = "undergraduate"
	LevelGraduate      CourseLevel = "graduate"
	LevelDoctoral      CourseLevel = "doctoral"
)

// IsValid reports whether the level is one of the declared values.
func (l CourseLevel) IsValid() bool {
	switch l {
	case LevelUndergraduate, LevelGraduate, LevelDoctoral:
		return true
	}
	return false
}

// CourseTerm is the term a course is offered in.
type CourseTerm string

const (
	TermSpring CourseTerm = "spring"
	TermSummer CourseTerm = "summer"
	TermFall   CourseTerm = "fall"
)

// IsValid reports whether the term is one of the declared values.
func (t CourseTerm) IsValid() bool {
	switch t {
	case TermSpring, TermSummer, TermFall:
		return true
	}
	return false
}

// Course is the stored representation of a course offering. ID and both
// timestamps are assigned by the server on creation; UpdatedAt moves forward
// whenever an update applies at least one field.
type Course struct {
	ID            uuid.UUID   `json:"id"`
	Code          string      `json:"code"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Credits       int         `json:"credits"`
	Instructor    string      `json:"instructor"`
	Department    string      `json:"department"`
	Level         CourseLevel `json:"level"`
	Term          CourseTerm  `json:"term"`
	Year          int         `json:"year"`
	MaxEnrollment *int        `json:"max_enrollment"`
	Prerequisites []string    `json:"prerequisites"`
	MeetingTimes  *string     `json:"meeting_times"`
	Location      *string     `json:"location"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// CourseFilter narrows a course listing. Code, Level, Term and Year match
// exactly; Title, Instructor and Department match on case-insensitive
// substring. Nil fields are ignored and the rest combine with AND.
type CourseFilter struct {
	Code       *string
	Title      *string
	Instructor *string
	Department *string
	Level      *string
	Term       *string
	Year       *int
}

// Matches reports whether the course satisfies every supplied filter field.
func (f CourseFilter) Matches(c *Course) bool {
	if f.Code != nil && c.Code != *f.Code {
		return false
	}
	if f.Title != nil && !containsFold(c.Title, *f.Title) {
		return false
	}
	if f.Instructor != nil && !containsFold(c.Instructor, *f.Instructor) {
		return false
	}
	if f.Department != nil && !containsFold(c.Department, *f.Department) {
		return false
	}
	if f.Level != nil && string(c.Level) != *f.Level {
		return false
	}
	if f.Term != nil && string(c.Term) != *f.Term {
		return false
	}
	if f.Year != nil && c.Year != *f.Year {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
