package tensor

import "fmt"

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Elem](data []T, shape Shape, dynamism ShapeDynamism) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), dynamism)
	if err != nil {
		return nil, err
	}

	copy(SliceOf[T](raw), data)
	return raw, nil
}

// Zeros creates a zero-initialized tensor with the given shape and dtype.
func Zeros(shape Shape, dtype DataType, dynamism ShapeDynamism) (*RawTensor, error) {
	return NewRaw(shape, dtype, dynamism)
}

// SliceOf returns a typed slice view of the tensor's logical elements.
// The slice directly accesses the underlying memory (zero-copy).
// Panics if T does not match the tensor's dtype.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func SliceOf[T Elem](r *RawTensor) []T {
	var dummy T
	switch any(dummy).(type) {
	case bool:
		return any(r.AsBool()).([]T)
	case uint8:
		return any(r.AsUint8()).([]T)
	case int8:
		return any(r.AsInt8()).([]T)
	case int16:
		return any(r.AsInt16()).([]T)
	case int32:
		return any(r.AsInt32()).([]T)
	case int64:
		return any(r.AsInt64()).([]T)
	case float32:
		return any(r.AsFloat32()).([]T)
	case float64:
		return any(r.AsFloat64()).([]T)
	default:
		panic("unsupported type")
	}
}
