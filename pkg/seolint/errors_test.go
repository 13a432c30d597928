package seolint

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"invalid config", ErrInvalidConfig, ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("load: %w", ErrInvalidConfig), ExitConfigError},
		{"unknown validator", ErrUnknownValidator, ExitUsageError},
		{"validation failed", ErrValidationFailed, ExitValidationFailed},
		{"unclassified", errors.New("boom"), ExitGeneralError},
		{"not applicable", ErrNotApplicable, ExitGeneralError},
	}
	for _, tc := range cases {
		if got := ExitCodeForError(tc.err); got != tc.want {
			t.Errorf("%s: ExitCodeForError = %d, want %d", tc.name, got, tc.want)
		}
	}
}
