package eval

import (
	"strconv"
	"strings"
)

// Format renders a result. A negative precision selects the shortest
// representation that round-trips (14, 0.5); otherwise exactly precision
// digits follow the decimal point.
func Format(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	// -0 and values rounded to zero print without a sign
	if strings.HasPrefix(s, "-") && strings.Trim(s, "-0.") == "" {
		return s[1:]
	}
	return s
}
