package lvjson

import "strconv"

// Number is a JSON numeric literal kept in its original textual form.
// Interpretation into the float and integer domains is deferred until
// queried, so the source formatting and precision survive String().
type Number struct {
	raw string
}

// NumberFromBytes copies b and wraps it as an undecoded literal.
func NumberFromBytes(b []byte) Number {
	return Number{raw: string(b)}
}

// NumberFromString wraps s as an undecoded literal.
func NumberFromString(s string) Number {
	return Number{raw: s}
}

// String returns the literal exactly as it appeared in the source.
func (n Number) String() string {
	return n.raw
}

// Float interprets the literal as a float64. Non-numeric text yields 0.
func (n Number) Float() float64 {
	f, err := strconv.ParseFloat(n.raw, 64)
	if err != nil {
		return 0
	}
	return f
}

// Int interprets the literal as an int64. Fractional and exponent forms
// fall back to float parsing and truncate toward zero; non-numeric text
// yields 0.
func (n Number) Int() int64 {
	if i, err := strconv.ParseInt(n.raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(n.raw, 64); err == nil {
		return int64(f)
	}
	return 0
}

// Uint interprets the literal as a uint64. Fractional and exponent forms
// fall back to float parsing and truncate; negative and non-numeric text
// yields 0.
func (n Number) Uint() uint64 {
	if u, err := strconv.ParseUint(n.raw, 10, 64); err == nil {
		return u
	}
	if f, err := strconv.ParseFloat(n.raw, 64); err == nil && f >= 0 {
		return uint64(f)
	}
	return 0
}
