// Package numeric provides the recursive factorial and Fibonacci functions
// and a registry exposing them by name.
//
// Both functions keep their textbook recursive form: depth grows linearly
// with n for Factorial, and Fibonacci runs in exponential time.
package numeric
