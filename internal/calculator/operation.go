package calculator

import "strconv"

// Operation identifies one of the calculator's arithmetic operations.
type Operation int

const (
	OpAdd Operation = iota
	OpSubtract
	OpMultiply
	OpDivide
)

var operationNames = [...]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
}

var operationSymbols = [...]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
}

// String returns the operation's name, e.g. "add".
func (op Operation) String() string {
	if op.Valid() {
		return operationNames[op]
	}
	return "Operation(" + strconv.Itoa(int(op)) + ")"
}

// Symbol returns the infix symbol, e.g. "+". Unknown operations yield "?".
func (op Operation) Symbol() string {
	if op.Valid() {
		return operationSymbols[op]
	}
	return "?"
}

// Valid reports whether op is one of the declared operations.
func (op Operation) Valid() bool {
	return op >= OpAdd && op <= OpDivide
}

// Step is one calculator call: Op applied to X and Y.
type Step struct {
	Op Operation
	X  float64
	Y  float64
}
