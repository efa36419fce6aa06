package refined

import (
	"math"
	"strconv"
	"strings"
)

// Decimal notation is used for magnitudes in [decimalLow, decimalHigh);
// everything else is written in exponent notation.
const (
	decimalLow  = 1e-6
	decimalHigh = 1e21
)

// FormatNumber renders v with the shortest round-tripping digits, using the
// notation of ECMAScript Number#toString: "40000", "1.2", "0.000001",
// "1e-7", "1e+21", "NaN", "Infinity", "-Infinity". Negative zero renders as
// "0". Cast failure messages embed values through this function.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= decimalLow && abs < decimalHigh {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits ("1e-07"); ECMAScript does not.
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")

	return mant + "e" + sign + digits
}
