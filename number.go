package numrange

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the set of numeric types a notation can expand into:
// signed integers, unsigned integers and floats.
type Number interface {
	constraints.Integer | constraints.Float
}

// isUnsigned reports whether T cannot represent negative values.
func isUnsigned[T Number]() bool {
	var zero T
	return zero-1 > zero
}

// isFloat reports whether T carries a fractional part.
func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != T(0)
}

// parseNumber converts a sanitized part into T. A leading minus sign is
// rejected outright for unsigned types, before any digit parsing.
func parseNumber[T Number](s string) (T, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty number", ErrNumberFormat)
	}

	if isUnsigned[T]() && strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSign, s)
	}

	switch {
	case isFloat[T]():
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNumberFormat, s)
		}
		return T(f), nil
	case isUnsigned[T]():
		u, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNumberFormat, s)
		}
		if uint64(T(u)) != u {
			return 0, fmt.Errorf("%w: %q out of range", ErrNumberFormat, s)
		}
		return T(u), nil
	default:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNumberFormat, s)
		}
		if int64(T(i)) != i {
			return 0, fmt.Errorf("%w: %q out of range", ErrNumberFormat, s)
		}
		return T(i), nil
	}
}

// formatNumber renders v as notation text. A non-zero groupSep is inserted
// between digit groups of three, thousands style.
func formatNumber[T Number](v T, groupSep rune) string {
	var s string
	switch {
	case isFloat[T]():
		s = strconv.FormatFloat(float64(v), 'g', -1, 64)
	case isUnsigned[T]():
		s = strconv.FormatUint(uint64(v), 10)
	default:
		s = strconv.FormatInt(int64(v), 10)
	}

	if groupSep != 0 {
		s = groupDigits(s, groupSep)
	}

	return s
}

// groupDigits inserts sep between groups of three digits in the integer
// part of s. Exponent forms are returned unchanged.
func groupDigits(s string, sep rune) string {
	sign := ""
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}

	intPart, frac, hasFrac := strings.Cut(s, ".")
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return sign + s
		}
	}
	if len(intPart) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.WriteString(sign)

	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteRune(sep)
		b.WriteString(intPart[i : i+3])
	}

	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}

	return b.String()
}
