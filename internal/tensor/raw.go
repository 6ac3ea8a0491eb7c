package tensor

import (
	"fmt"
	"unsafe"
)

// ShapeDynamism governs whether and how a tensor's logical shape may
// change after creation.
type ShapeDynamism int

const (
	// Static tensors keep the shape they were created with.
	Static ShapeDynamism = iota
	// DynamicBound tensors may take any shape whose element count fits
	// the capacity of the existing buffer.
	DynamicBound
	// DynamicUnbound tensors may take any shape; the backing buffer
	// grows through the allocator when needed.
	DynamicUnbound
)

// String returns a human-readable dynamism name.
func (d ShapeDynamism) String() string {
	switch d {
	case Static:
		return "static"
	case DynamicBound:
		return "dynamic-bound"
	case DynamicUnbound:
		return "dynamic-unbound"
	default:
		return "unknown"
	}
}

// Allocator supplies backing storage for DynamicUnbound growth. The engine
// never allocates element storage itself; growth goes through this
// collaborator.
type Allocator interface {
	// Grow returns a zeroed buffer of at least n bytes, or an error if
	// storage cannot be obtained. Failure is fatal for the invocation
	// that requested it.
	Grow(n int) ([]byte, error)
}

// HeapAllocator is the default Allocator, backed by the Go heap.
type HeapAllocator struct{}

// Grow returns a fresh heap buffer of n bytes.
func (HeapAllocator) Grow(n int) ([]byte, error) {
	return make([]byte, n), nil
}

// RawTensor is the low-level tensor representation: a view over a
// contiguous buffer of homogeneous elements. The buffer capacity may
// exceed the logical element count; resizing under the dynamism contract
// changes only the logical shape.
//
// Invariant: NumElements() * dtype.Size() <= len(data) at all times.
type RawTensor struct {
	data     []byte
	shape    Shape
	stride   []int
	dtype    DataType
	dynamism ShapeDynamism
	alloc    Allocator
}

// NewRaw creates a new RawTensor with the given shape, type and dynamism.
// The buffer is allocated at exactly the shape's element count and is
// zero-initialized.
func NewRaw(shape Shape, dtype DataType, dynamism ShapeDynamism) (*RawTensor, error) {
	return NewRawWithCapacity(shape, dtype, dynamism, shape.NumElements())
}

// NewRawWithCapacity creates a RawTensor whose buffer holds capacity
// elements, of which the leading shape.NumElements() are logical. Extra
// capacity gives DynamicBound tensors room to grow.
func NewRawWithCapacity(shape Shape, dtype DataType, dynamism ShapeDynamism, capacity int) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if !dtype.IsReal() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDtype, dtype)
	}
	if n := shape.NumElements(); capacity < n {
		return nil, fmt.Errorf("capacity %d cannot hold shape %v (%d elements)", capacity, shape, n)
	}

	return &RawTensor{
		data:     make([]byte, capacity*dtype.Size()),
		shape:    shape.Clone(),
		stride:   shape.ComputeStrides(),
		dtype:    dtype,
		dynamism: dynamism,
		alloc:    HeapAllocator{},
	}, nil
}

// SetAllocator replaces the growth collaborator used by DynamicUnbound
// resizes.
func (r *RawTensor) SetAllocator(a Allocator) {
	r.alloc = a
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's row-major memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Dynamism returns the tensor's shape-change policy.
func (r *RawTensor) Dynamism() ShapeDynamism {
	return r.dynamism
}

// NumElements returns the logical number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Capacity returns the number of elements the backing buffer can hold.
func (r *RawTensor) Capacity() int {
	return len(r.data) / r.dtype.Size()
}

// ByteSize returns the logical memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the logical elements as a raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.data[:r.ByteSize()]
}

// String returns a human-readable representation of the tensor.
func (r *RawTensor) String() string {
	return fmt.Sprintf("Tensor[%s]%v (%s)", r.dtype, r.shape, r.dynamism)
}

// AsBool interprets the data as []bool.
// Panics if the tensor's dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("tensor dtype is %s, not bool", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&r.data[0])), n)
}

// AsUint8 interprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 {
	if r.dtype != Uint8 {
		panic(fmt.Sprintf("tensor dtype is %s, not uint8", r.dtype))
	}
	return r.data[:r.NumElements()] // Already []byte = []uint8
}

// AsInt8 interprets the data as []int8.
// Panics if the tensor's dtype is not Int8.
func (r *RawTensor) AsInt8() []int8 {
	if r.dtype != Int8 {
		panic(fmt.Sprintf("tensor dtype is %s, not int8", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int8)(unsafe.Pointer(&r.data[0])), n)
}

// AsInt16 interprets the data as []int16.
// Panics if the tensor's dtype is not Int16.
func (r *RawTensor) AsInt16() []int16 {
	if r.dtype != Int16 {
		panic(fmt.Sprintf("tensor dtype is %s, not int16", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int16)(unsafe.Pointer(&r.data[0])), n)
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&r.data[0])), n)
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&r.data[0])), n)
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), n)
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), n)
}
