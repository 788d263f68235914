package readmegen

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	res, err := gen.Run(ctx, opts)
//	if errors.Is(err, readmegen.ErrApprovalDenied) {
//	    // README.md was left untouched
//	}
var (
	// ErrInvalidConfig indicates readmegen.yaml or the .env overlay is malformed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrProjectNameRequired indicates generation was attempted without a project name.
	ErrProjectNameRequired = errors.New("project name is required")

	// ErrGenerationFailed is the single normalized rendering failure.
	// The underlying cause is logged, not wrapped.
	ErrGenerationFailed = errors.New("failed to generate README content")

	// ErrWriteFailed indicates the rendered document could not be persisted.
	ErrWriteFailed = errors.New("failed to write README")

	// ErrApprovalDenied indicates the user declined to overwrite an existing file.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrFieldRequired indicates a required prompt answer was left empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInputExhausted indicates the prompt source has no more answers
	// (end of input or the user aborted the prompt).
	ErrInputExhausted = errors.New("input exhausted")
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
	case errors.Is(err, ErrProjectNameRequired):
		return ExitUsageError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrGenerationFailed):
		return ExitGenerationFailed
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteFailed
	}

	// cobra reports flag and argument problems as plain errors
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "flag needs an argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}

// FieldError is a validation failure for a single prompt answer. Its message
// is shown to the user verbatim; errors.Is matches ErrFieldRequired.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrFieldRequired
}
