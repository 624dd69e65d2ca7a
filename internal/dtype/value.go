package dtype

import "strconv"

// Value is a single decoded header value tagged with its kind.
// The zero Value has kind Invalid and reads as 0.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

// Int returns a Value of integer kind k holding v wrapped to the kind's width.
// Float kinds store v converted to floating point.
func Int(k Kind, v int64) Value {
	if k.IsFloat() {
		return Float(k, float64(v))
	}
	return Value{kind: k, i: k.wrap(v)}
}

// Float returns a Value of kind k holding v. Integer kinds truncate v.
func Float(k Kind, v float64) Value {
	if !k.IsFloat() {
		return Int(k, int64(v))
	}
	if k == Float32 || k == IBMFloat {
		v = float64(float32(v))
	}
	return Value{kind: k, f: v}
}

// Kind returns the kind the value was decoded as.
func (v Value) Kind() Kind { return v.kind }

// Int64 returns the value as an integer, truncating floats.
func (v Value) Int64() int64 {
	if v.kind.IsFloat() {
		return int64(v.f)
	}
	return v.i
}

// Float64 returns the value as a float64.
func (v Value) Float64() float64 {
	if v.kind.IsFloat() {
		return v.f
	}
	return float64(v.i)
}

// IsZero reports whether the numeric value is zero.
func (v Value) IsZero() bool {
	if v.kind.IsFloat() {
		return v.f == 0
	}
	return v.i == 0
}

// String formats the number without its kind.
func (v Value) String() string {
	if v.kind.IsFloat() {
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return strconv.FormatInt(v.i, 10)
}
