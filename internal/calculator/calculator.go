// Package calculator implements a four-function calculator that remembers
// the result of its last successful operation.
package calculator

import apperrors "github.com/agbru/samplecalc/internal/errors"

// Calculator holds the result of the last successful operation.
// Each operation overwrites the result; nothing accumulates across calls.
// The zero value is ready to use with a result of 0.
//
// A Calculator is not safe for concurrent use.
type Calculator struct {
	result float64
}

// New returns a calculator with a result of 0.
func New() *Calculator {
	return &Calculator{}
}

// Result returns the output of the last successful operation.
func (c *Calculator) Result() float64 {
	return c.result
}

// Add returns x + y and stores it as the result.
func (c *Calculator) Add(x, y float64) float64 {
	c.result = x + y
	return c.result
}

// Subtract returns x - y and stores it as the result.
func (c *Calculator) Subtract(x, y float64) float64 {
	c.result = x - y
	return c.result
}

// Multiply returns x * y and stores it as the result.
func (c *Calculator) Multiply(x, y float64) float64 {
	c.result = x * y
	return c.result
}

// Divide returns x / y and stores it as the result.
// A zero divisor returns apperrors.ErrDivideByZero and leaves the result
// untouched.
func (c *Calculator) Divide(x, y float64) (float64, error) {
	if y == 0 {
		return 0, apperrors.ErrDivideByZero
	}
	c.result = x / y
	return c.result, nil
}

// Apply dispatches op to the matching method.
func (c *Calculator) Apply(op Operation, x, y float64) (float64, error) {
	switch op {
	case OpAdd:
		return c.Add(x, y), nil
	case OpSubtract:
		return c.Subtract(x, y), nil
	case OpMultiply:
		return c.Multiply(x, y), nil
	case OpDivide:
		return c.Divide(x, y)
	default:
		return 0, apperrors.ValidationError{Field: "op", Message: "unknown operation " + op.String()}
	}
}
