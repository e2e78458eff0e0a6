package numeric

import "math/big"

// Factorial returns n! computed recursively.
// Every n <= 1, including negative n, yields 1.
func Factorial(n int64) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}
	return new(big.Int).Mul(big.NewInt(n), Factorial(n-1))
}
