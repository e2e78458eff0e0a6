// Package format holds the pure formatting helpers shared by the console
// presenter and the logs.
package format

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v with the fewest digits that round-trip, without
// exponent notation for ordinary magnitudes: 8 -> "8", 0.25 -> "0.25".
func FormatNumber(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return formatSpecial(v)
	}
	if abs := math.Abs(v); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatQuotient renders the result of a true division. Quotients always
// carry a fractional part so they read as real numbers: 5 -> "5.0".
func FormatQuotient(v float64) string {
	s := FormatNumber(v)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

func formatSpecial(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case v > 0:
		return "inf"
	default:
		return "-inf"
	}
}
