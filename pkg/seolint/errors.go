package seolint

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := runValidate(path)
//	if errors.Is(err, seolint.ErrValidationFailed) {
//	    // Validation errors were reported; feedback already printed.
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrValidationFailed indicates one or more validation errors were found.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotApplicable indicates no rule catalog applies to the file.
	ErrNotApplicable = errors.New("file not applicable to any validator")

	// ErrUnknownValidator indicates a validator name that is not in the catalog registry.
	ErrUnknownValidator = errors.New("unknown validator")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUnknownValidator):
		return ExitUsageError
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	}

	return ExitGeneralError
}
