// Package cli renders driver results on a terminal.
//
// # Naming Conventions
//
//   - Present* methods implement [driver.Presenter] and write one line per call.
//   - Display* functions write auxiliary reports, usually to stderr.
//   - Format* functions return a string without performing I/O.
package cli
