//go:build gmp

package numeric

import (
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	extraFunctions = append(extraFunctions, FuncOf("factorial-gmp", FactorialGMP))
}

// FactorialGMP is Factorial computed on GMP integers. It follows the same
// recursion and the same n <= 1 guard.
func FactorialGMP(n int64) *big.Int {
	out, _ := new(big.Int).SetString(factorialGMP(n).String(), 10)
	return out
}

func factorialGMP(n int64) *gmp.Int {
	if n <= 1 {
		return gmp.NewInt(1)
	}
	return new(gmp.Int).Mul(gmp.NewInt(n), factorialGMP(n-1))
}
