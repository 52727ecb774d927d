package validation

import "testing"

func TestIsValidCourseCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"COMS4153", true},
		{"AB1234", true},
		{"ABCD1234", true},
		{"CS123", false},     // only 3 digits
		{"C1234", false},     // only 1 letter
		{"ABCDE1234", false}, // 5 letters
		{"coms4153", false},  // lowercase
		{"COMS41530", false}, // 5 digits
		{"COMS4153X", false}, // trailing garbage, pattern is anchored
		{"XCOMS4153", false}, // leading garbage
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidCourseCode(tt.code); got != tt.want {
			t.Errorf("IsValidCourseCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
