package dto

// CreateCourseRequest represents course creation data. The server assigns the
// ID and both timestamps. Credits is a pointer so that an explicit 0 is
// distinguishable from a missing field.
type CreateCourseRequest struct {
	Code          string   `json:"code" binding:"required,coursecode" example:"COMS4153"`
	Title         string   `json:"title" binding:"required" example:"Cloud Computing"`
	Description   string   `json:"description" binding:"required"`
	Credits       *int     `json:"credits" binding:"required,min=0,max=6" example:"3"`
	Instructor    string   `json:"instructor" binding:"required" example:"Dr. Jane Smith"`
	Department    string   `json:"department" binding:"required" example:"Computer Science"`
	Level         string   `json:"level" binding:"required,oneof=undergraduate graduate doctoral" example:"graduate"`
	Term          string   `json:"term" binding:"required,oneof=spring summer fall" example:"fall"`
	Year          int      `json:"year" binding:"required,min=2020,max=2030" example:"2025"`
	MaxEnrollment *int     `json:"max_enrollment" binding:"omitempty,min=1" example:"50"`
	Prerequisites []string `json:"prerequisites"`
	MeetingTimes  *string  `json:"meeting_times"`
	Location      *string  `json:"location"`
}

// UpdateCourseRequest represents a partial course update; supply only the
// fields to change. Absent fields are left untouched. A supplied
// Prerequisites list replaces the stored list whole.
type UpdateCourseRequest struct {
	Code          *string   `json:"code" binding:"omitempty,coursecode"`
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Credits       *int      `json:"credits" binding:"omitempty,min=0,max=6"`
	Instructor    *string   `json:"instructor"`
	Department    *string   `json:"department"`
	Level         *string   `json:"level" binding:"omitempty,oneof=undergraduate graduate doctoral"`
	Term          *string   `json:"term" binding:"omitempty,oneof=spring summer fall"`
	Year          *int      `json:"year" binding:"omitempty,min=2020,max=2030"`
	MaxEnrollment *int      `json:"max_enrollment" binding:"omitempty,min=1"`
	Prerequisites *[]string `json:"prerequisites"`
	MeetingTimes  *string   `json:"meeting_times"`
	Location      *string   `json:"location"`
}

// IsEmpty reports whether the patch supplies no fields at all. An empty patch
// leaves the stored course, including its updated_at, untouched.
func (r UpdateCourseRequest) IsEmpty() bool {
	return r.Code == nil && r.Title == nil && r.Description == nil &&
		r.Credits == nil && r.Instructor == nil && r.Department == nil &&
		r.Level == nil && r.Term == nil && r.Year == nil &&
		r.MaxEnrollment == nil && r.Prerequisites == nil &&
		r.MeetingTimes == nil && r.Location == nil
}
