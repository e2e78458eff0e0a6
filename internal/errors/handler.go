package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// ColorProvider supplies the escape sequences used to highlight error output.
// Implementations return empty strings when colors are disabled.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// ExitCodeFor maps an error to the process exit code it should produce.
// A nil error maps to ExitSuccess.
func ExitCodeFor(err error) int {
	var (
		domainErr     DomainError
		configErr     ConfigError
		validationErr ValidationError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &domainErr):
		return ExitErrorDomain
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case IsContextError(err):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}

// HandleError reports err on out and returns the matching exit code.
// Cancellations are reported as a warning rather than an error.
//
// Parameters:
//   - err: The error to report. Nil reports nothing.
//   - out: The writer for the report, usually stderr.
//   - colors: The color provider used to highlight the message.
//
// Returns:
//   - int: The exit code computed by ExitCodeFor.
func HandleError(err error, out io.Writer, colors ColorProvider) int {
	code := ExitCodeFor(err)
	switch code {
	case ExitSuccess:
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sRun canceled: %v%s\n", colors.Yellow(), err, colors.Reset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
	}
	return code
}
