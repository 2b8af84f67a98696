package core

import "fmt"

// Validation error codes.
const (
	CodeDimensions   = "invalid_dimensions"
	CodeEmptyPalette = "empty_palette"
	CodeSmoothness   = "invalid_smoothness"
	CodeEdges        = "invalid_edges"
	CodeSize         = "invalid_size"
)

// ValidationError reports a generator parameter that cannot produce output.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Invalid builds a ValidationError with a formatted message.
func Invalid(code, format string, args ...any) ValidationError {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}
