// Package ui provides theme and color support for samplecalc's console output.
// It defines ANSI color schemes, exposes the active theme's escape codes, and
// renders section headers with lipgloss when colors are enabled.
//
// With colors disabled every helper returns plain text, so piped output is
// byte-for-byte stable.
package ui
