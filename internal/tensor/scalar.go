package tensor

// Scalar is a tagged value used when one operand of a binary operator is
// not a tensor. It carries exactly one of a bool, signed integer or
// floating payload plus its own dtype tag.
type Scalar struct {
	dtype DataType
	b     bool
	i     int64
	f     float64
}

// BoolScalar creates a Scalar holding a boolean payload.
func BoolScalar(v bool) Scalar {
	return Scalar{dtype: Bool, b: v}
}

// IntScalar creates a Scalar holding a signed integer payload.
func IntScalar(v int64) Scalar {
	return Scalar{dtype: Int64, i: v}
}

// FloatScalar creates a Scalar holding a floating payload.
func FloatScalar(v float64) Scalar {
	return Scalar{dtype: Float64, f: v}
}

// DType returns the scalar's own dtype tag: Bool, Int64 or Float64.
func (s Scalar) DType() DataType {
	return s.dtype
}

// Bool returns the payload as a boolean. Numeric payloads map through a
// nonzero test.
func (s Scalar) Bool() bool {
	switch s.dtype {
	case Int64:
		return s.i != 0
	case Float64:
		return s.f != 0
	default:
		return s.b
	}
}

// Int returns the payload as a signed integer. A boolean payload maps to
// 1/0; a floating payload is truncated.
func (s Scalar) Int() int64 {
	switch s.dtype {
	case Bool:
		if s.b {
			return 1
		}
		return 0
	case Float64:
		return int64(s.f)
	default:
		return s.i
	}
}

// Float returns the payload as a float64.
func (s Scalar) Float() float64 {
	switch s.dtype {
	case Bool:
		if s.b {
			return 1
		}
		return 0
	case Int64:
		return float64(s.i)
	default:
		return s.f
	}
}
