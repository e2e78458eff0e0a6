// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// validation, arithmetic domain) and for mapping them to process exit codes.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Callers inspect errors with errors.Is() and errors.As().
package apperrors
