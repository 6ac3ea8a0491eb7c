package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
// A shape containing a zero dimension has zero elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions >= 0).
// Zero-sized dimensions are legal and produce zero-element tensors.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastPlan is the transient result of comparing two shapes: the
// broadcast output shape plus, for each input, the per-dimension stride
// used to replay that input across the output. A size-1 (or missing)
// input dimension contributes stride 0, meaning "repeat".
type BroadcastPlan struct {
	Shape    Shape
	AStrides []int
	BStrides []int
}

// Broadcast implements NumPy-style broadcasting rules.
//
// Rules:
//  1. Compare shapes element-wise from right to left
//  2. Dimensions are compatible if:
//     - They are equal, OR
//     - One of them is 1
//  3. Missing dimensions are treated as 1
//
// The output shape takes the larger value at each aligned position and has
// rank max(len(a), len(b)). Incompatible shapes yield ErrShapeMismatch.
// Broadcast is a pure function and commutative in the output shape.
//
// Examples:
//
//	(3, 1) vs (3, 5) → (3, 5)
//	(1, 5) vs (3, 5) → (3, 5)
//	(3, 4) vs (5)    → ErrShapeMismatch
func Broadcast(a, b Shape) (BroadcastPlan, error) {
	maxLen := max(len(a), len(b))
	out := make(Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		aDim := 1
		if idx := len(a) - 1 - i; idx >= 0 {
			aDim = a[idx]
		}
		bDim := 1
		if idx := len(b) - 1 - i; idx >= 0 {
			bDim = b[idx]
		}

		switch {
		case aDim == bDim:
			out[maxLen-1-i] = aDim
		case aDim == 1:
			out[maxLen-1-i] = bDim
		case bDim == 1:
			out[maxLen-1-i] = aDim
		default:
			return BroadcastPlan{}, fmt.Errorf("%w: %v vs %v (dimension %d: %d vs %d)",
				ErrShapeMismatch, a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return BroadcastPlan{
		Shape:    out,
		AStrides: BroadcastStrides(a, out),
		BStrides: BroadcastStrides(b, out),
	}, nil
}

// BroadcastStrides computes the strides for replaying inShape across
// outShape. Dimensions of size 1 (and dimensions missing on the left)
// get stride 0.
func BroadcastStrides(inShape, outShape Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			// Padded dimension, stride is 0
			strides[i] = 0
		case inShape[inIdx] == 1:
			// Broadcast dimension, stride is 0
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}
