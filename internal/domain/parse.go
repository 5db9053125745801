package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseValue reads the longest leading decimal literal of raw, after leading
// whitespace, the way editors hand over partially typed numbers: "12.5kg"
// parses as 12.5 and "Infinity" as +Inf. ok is false when nothing parses.
func ParseValue(raw string) (v float64, ok bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	n := 0
	sign := 1.0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		if s[n] == '-' {
			sign = -1
		}
		n++
	}
	if strings.HasPrefix(s[n:], "Infinity") {
		return math.Inf(int(sign)), true
	}

	start := n
	intDigits := countDigits(s[n:])
	n += intDigits

	fracDigits := 0
	if n < len(s) && s[n] == '.' {
		fracDigits = countDigits(s[n+1:])
		if intDigits > 0 || fracDigits > 0 {
			n += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, false
	}

	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		m := n + 1
		if m < len(s) && (s[m] == '+' || s[m] == '-') {
			m++
		}
		if d := countDigits(s[m:]); d > 0 {
			n = m + d
		}
	}

	f, err := strconv.ParseFloat(s[start:n], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return sign * f, true
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
