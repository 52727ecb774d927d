package apperrors

import (
	"errors"
	"testing"
)

func TestConstructorsWrapSentinels(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NewResourceNotFoundError("Person 7d4a not found"), ErrResourceNotFound},
		{"conflict", NewConflictError("Address with ID 7d4a already exists"), ErrConflict},
		{"bad request", NewBadRequestError("Invalid course ID"), ErrBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tc.err, tc.sentinel)
			}
		})
	}
}

func TestCustomErrorMessage(t *testing.T) {
	err := NewResourceNotFoundError("Course 7d4a not found")
	if err.Error() != "Course 7d4a not found" {
		t.Errorf("Error() = %q, want the constructor message", err.Error())
	}

	// Without a message the underlying error's text is used
	bare := NewCustomError(ErrConflict, "")
	if bare.Error() != ErrConflict.Error() {
		t.Errorf("Error() = %q, want %q", bare.Error(), ErrConflict.Error())
	}
}

func TestCustomErrorChaining(t *testing.T) {
	err := NewCustomError(ErrValidationFailed, "Invalid person data").
		WithCode("VAL_001").
		WithDetails(map[string]interface{}{"reason": "unexpected EOF"})

	if err.Code != "VAL_001" {
		t.Errorf("Code = %q, want VAL_001", err.Code)
	}
	if err.Details["reason"] != "unexpected EOF" {
		t.Errorf("Details[reason] = %v, want the attached reason", err.Details["reason"])
	}
	if !errors.Is(err, ErrValidationFailed) {
		t.Error("chained error lost its underlying sentinel")
	}
}

func TestIsMatchesAnyTarget(t *testing.T) {
	err := NewConflictError("Address with ID 7d4a already exists")

	if !Is(err, ErrResourceAlreadyExists, ErrConflict) {
		t.Error("Is() = false, want a match against the trailing target list")
	}
	if Is(err, ErrResourceNotFound, ErrValidationFailed) {
		t.Error("Is() = true for unrelated targets")
	}
}
