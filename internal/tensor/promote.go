package tensor

// Type promotion lattice for the real dtypes, indexed by the DataType
// constants (Bool through Float64). Boolean promotes to any numeric type,
// integers widen to the larger range with signed/unsigned mixes resolved
// by widening to a signed type covering both ranges, and any integer
// combined with a floating type promotes to that floating type.
//
//	        b1   u1   i1   i2   i4   i8   f4   f8
var promoteTable = [8][8]DataType{
	/* b1 */ {Bool, Uint8, Int8, Int16, Int32, Int64, Float32, Float64},
	/* u1 */ {Uint8, Uint8, Int16, Int16, Int32, Int64, Float32, Float64},
	/* i1 */ {Int8, Int16, Int8, Int16, Int32, Int64, Float32, Float64},
	/* i2 */ {Int16, Int16, Int16, Int16, Int32, Int64, Float32, Float64},
	/* i4 */ {Int32, Int32, Int32, Int32, Int32, Int64, Float32, Float64},
	/* i8 */ {Int64, Int64, Int64, Int64, Int64, Int64, Float32, Float64},
	/* f4 */ {Float32, Float32, Float32, Float32, Float32, Float32, Float32, Float64},
	/* f8 */ {Float64, Float64, Float64, Float64, Float64, Float64, Float64, Float64},
}

// PromoteTypes returns the common computation dtype for a tensor-tensor
// operand pair. Both operands are cast to this dtype before the
// per-element function runs. Commutative. Panics if either dtype is one
// of the reserved tags.
func PromoteTypes(a, b DataType) DataType {
	if !a.IsReal() || !b.IsReal() {
		panic("PromoteTypes: " + a.String() + " and " + b.String() + " cannot be promoted")
	}
	return promoteTable[a][b]
}

// PromoteWithScalar returns the common computation dtype for a
// tensor-scalar operand pair.
//
// A scalar never widens an integer tensor just because its nominal width
// differs: a bool or integer scalar leaves an integer (or floating)
// tensor dtype unchanged. A floating scalar promotes integer tensors to
// the default floating type.
func PromoteWithScalar(t DataType, s Scalar) DataType {
	if !t.IsReal() {
		panic("PromoteWithScalar: " + t.String() + " cannot be promoted")
	}
	switch s.DType() {
	case Bool:
		return t
	case Int64:
		if t == Bool {
			return Int64
		}
		return t
	default: // floating scalar
		if t.IsFloating() {
			return t
		}
		return Float32
	}
}

// CanCast reports whether a value of dtype from may be written into a
// tensor of dtype to. Floating values may not be cast into integral
// tensors, and nothing but bool may be cast into a bool tensor. Integer
// narrowing is accepted by convention.
func CanCast(from, to DataType) bool {
	if from.IsFloating() && to.IsIntegral() {
		return false
	}
	if to == Bool && from != Bool {
		return false
	}
	return true
}
