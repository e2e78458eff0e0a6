package numeric

// Fibonacci returns F(n) computed by naive double recursion.
// For n <= 1 it returns n unchanged, so negative inputs are returned as-is.
//
// The result overflows int64 past F(92), which the exponential running time
// puts far out of practical reach anyway.
func Fibonacci(n int64) int64 {
	if n <= 1 {
		return n
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}
