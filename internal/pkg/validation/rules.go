package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Course code pattern - 2 to 4 uppercase department letters followed by exactly 4 digits
	CourseCodePattern = `^[A-Z]{2,4}\d{4}$`

	// Birth date pattern - calendar date as YYYY-MM-DD
	BirthDatePattern = `^\d{4}-\d{2}-\d{2}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	CourseCode *regexp.Regexp
	BirthDate  *regexp.Regexp
}{
	CourseCode: regexp.MustCompile(CourseCodePattern),
	BirthDate:  regexp.MustCompile(BirthDatePattern),
}

// IsValidCourseCode checks a course code against the course code pattern
func IsValidCourseCode(code string) bool {
	return CompiledPatterns.CourseCode.MatchString(code)
}

// CourseCodeRule is the validator/v10 implementation of the "coursecode" tag.
// It is registered on gin's binding engine at bootstrap.
func CourseCodeRule(fl validator.FieldLevel) bool {
	return IsValidCourseCode(fl.Field().String())
}

// RegisterCustomRules attaches the application's custom validation tags to the
// provided validator engine.
func RegisterCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("coursecode", CourseCodeRule)
}
