// Package tensor provides the core data model for the elementwise operator
// engine: shapes, dtypes, scalars and the raw buffer representation.
package tensor

// Elem is a constraint over the Go element types the engine can compute
// with. It uses Go generics to ensure compile-time type safety.
type Elem interface {
	~bool | ~uint8 | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors. Float16 and Complex64 are reserved
// tags: they are enumerated for forward compatibility but rejected by
// every operator.
const (
	Bool DataType = iota
	Uint8
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Float16
	Complex64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Uint8, Int8:
		return 1
	case Int16, Float16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64, Complex64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float16:
		return "float16"
	case Complex64:
		return "complex64"
	default:
		return "unknown"
	}
}

// IsFloating reports whether dt is a floating-point type.
func (dt DataType) IsFloating() bool {
	return dt == Float32 || dt == Float64
}

// IsIntegral reports whether dt is an integer type. Bool is not integral.
func (dt DataType) IsIntegral() bool {
	switch dt {
	case Uint8, Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// IsReal reports whether dt is a type operators can compute with today:
// bool, the integer types or the floating types. The reserved tags are
// not real.
func (dt DataType) IsReal() bool {
	return dt == Bool || dt.IsIntegral() || dt.IsFloating()
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Elem](dummy T) DataType {
	switch any(dummy).(type) {
	case bool:
		return Bool
	case uint8:
		return Uint8
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported type")
	}
}
