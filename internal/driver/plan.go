package driver

import "github.com/agbru/samplecalc/internal/calculator"

// Sweep evaluates one registered function for every n in [0, Count).
type Sweep struct {
	// Title is shown in the section header, e.g. "Fibonacci".
	Title string
	// Function is the registry name, e.g. "fibonacci".
	Function string
	// Count is the number of consecutive inputs, starting at 0.
	Count int64
}

// Plan describes a full run: the sweeps in order, then the calculator steps.
type Plan struct {
	Sweeps []Sweep
	// CalculatorTitle heads the calculator section. Empty means "Calculator".
	CalculatorTitle string
	Steps           []calculator.Step
}

// DefaultPlan returns the fixed demonstration run: factorial 0..5,
// Fibonacci 0..9, then one call of each calculator operation.
func DefaultPlan() Plan {
	return Plan{
		Sweeps: []Sweep{
			{Title: "factorial", Function: "factorial", Count: 6},
			{Title: "Fibonacci", Function: "fibonacci", Count: 10},
		},
		CalculatorTitle: "Calculator",
		Steps: []calculator.Step{
			{Op: calculator.OpAdd, X: 5, Y: 3},
			{Op: calculator.OpSubtract, X: 10, Y: 4},
			{Op: calculator.OpMultiply, X: 6, Y: 7},
			{Op: calculator.OpDivide, X: 20, Y: 4},
		},
	}
}

func (p Plan) calculatorTitle() string {
	if p.CalculatorTitle == "" {
		return "Calculator"
	}
	return p.CalculatorTitle
}
