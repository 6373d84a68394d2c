package dataset

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Value is a single extracted scalar: either a number or an opaque string token.
// The zero Value is the empty token.
type Value struct {
	num     float64
	tok     string
	numeric bool
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{num: f, numeric: true}
}

// Token returns a non-numeric Value holding s verbatim.
func Token(s string) Value {
	return Value{tok: s}
}

// Parse converts a whitespace-free token into a Value, preferring a number
// whenever the token reads as one.
func Parse(s string) Value {
	if f, ok := ParseNumber(s); ok {
		return Number(f)
	}
	return Token(s)
}

// ParseNumber reports whether s is a decimal floating-point literal and returns
// its value. It accepts exponents, leading signs, and the special forms "nan",
// "inf" and "infinity" in any case, each with an optional sign ("-nan" is what
// C printf writes for a negative NaN). Literals that overflow float64 yield ±Inf.
// Hexadecimal forms are rejected.
func ParseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, false
	}
	if len(s) == 4 && (s[0] == '+' || s[0] == '-') && strings.EqualFold(s[1:], "nan") {
		return math.NaN(), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// IsNumeric reports whether v holds a number.
func (v Value) IsNumeric() bool {
	return v.numeric
}

// Float returns the numeric value, or 0 for tokens.
func (v Value) Float() float64 {
	return v.num
}

// Equal reports exact equality: numbers compare by value (so NaN never equals
// anything) and tokens compare as strings. A number never equals a token.
func (v Value) Equal(other Value) bool {
	if v.numeric != other.numeric {
		return false
	}
	if v.numeric {
		return v.num == other.num
	}
	return v.tok == other.tok
}

func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.tok
}
