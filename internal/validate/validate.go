package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var reSKU = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// IntID parses a positive integer path parameter (product/user/order ids).
func IntID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Name validates a displayable product name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 120 {
		return "", false
	}
	return s, true
}

// SKU validates a stock keeping unit code.
func SKU(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reSKU.MatchString(s)
}

// Price accepts strictly positive finite amounts.
func Price(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Qty accepts strictly positive quantities.
func Qty(n int) bool {
	return n >= 1
}
