package refined

import "math"

// Value is a float64 proven to be a member of domain D.
//
// Values are produced by Ops[D] (Cast, Clamp, arithmetic, random draws) or
// by decoding through UnmarshalJSON/UnmarshalText, which validate. The zero
// Value holds 0 and is a member only when D admits 0.
type Value[D Domain] struct {
	v float64
}

// Float64 returns the underlying number.
func (x Value[D]) Float64() float64 { return x.v }

// Int64 returns the underlying number truncated toward zero, saturating at
// the int64 range. Lossless for SafeInteger domains.
func (x Value[D]) Int64() int64 {
	switch {
	case x.v >= math.MaxInt64:
		return math.MaxInt64
	case x.v <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(x.v)
	}
}

// IsZero reports whether x holds 0.
func (x Value[D]) IsZero() bool { return x.v == 0 }

// Compare returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Value[D]) Compare(y Value[D]) int {
	switch {
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	default:
		return 0
	}
}

// Equal reports whether x and y hold the same number.
func (x Value[D]) Equal(y Value[D]) bool { return x.v == y.v }

// String renders x like FormatNumber.
func (x Value[D]) String() string { return FormatNumber(x.v) }

// MarshalText implements encoding.TextMarshaler.
func (x Value[D]) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// MarshalJSON encodes x as a bare JSON number. Members are finite, so the
// FormatNumber rendering is always valid JSON.
func (x Value[D]) MarshalJSON() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText decodes and casts a number; non-members fail with *DomainError.
func (x *Value[D]) UnmarshalText(text []byte) error {
	var d D
	k, err := New(d.Descriptor())
	if err != nil {
		return err
	}

	v, err := k.Parse(string(text))
	if err != nil {
		return err
	}
	x.v = v

	return nil
}

// UnmarshalJSON decodes and casts a JSON number. A JSON null leaves x
// unchanged, following encoding/json conventions.
func (x *Value[D]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	return x.UnmarshalText(data)
}
