// Package logging provides the logging interface shared by samplecalc components.
// It abstracts the underlying logging implementation (zerolog by default, the
// standard library logger as a fallback) behind a small structured API.
package logging
