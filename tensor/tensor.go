// Copyright 2026 The executorch-EF Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/Alexkv99/executorch-EF/internal/tensor"
)

// Type aliases for public API

// Elem is a constraint for tensor element types.
// Supported types: bool, uint8, int8, int16, int32, int64, float32, float64.
type Elem = tensor.Elem

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Bool      DataType = tensor.Bool
	Uint8     DataType = tensor.Uint8
	Int8      DataType = tensor.Int8
	Int16     DataType = tensor.Int16
	Int32     DataType = tensor.Int32
	Int64     DataType = tensor.Int64
	Float32   DataType = tensor.Float32
	Float64   DataType = tensor.Float64
	Float16   DataType = tensor.Float16
	Complex64 DataType = tensor.Complex64
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// BroadcastPlan carries the broadcast output shape and the per-input
// stride-or-zero vectors.
type BroadcastPlan = tensor.BroadcastPlan

// Scalar is a tagged bool/int/float value used as a non-tensor operand.
type Scalar = tensor.Scalar

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape, dtype and dynamism information via Shape(), DType(), Dynamism()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - A capacity that may exceed the logical element count, giving
//     dynamic tensors room to resize without reallocating
type RawTensor = tensor.RawTensor

// ShapeDynamism governs whether a tensor's shape may change after creation.
type ShapeDynamism = tensor.ShapeDynamism

// Dynamism constants.
const (
	Static         ShapeDynamism = tensor.Static
	DynamicBound   ShapeDynamism = tensor.DynamicBound
	DynamicUnbound ShapeDynamism = tensor.DynamicUnbound
)

// Allocator supplies backing storage for DynamicUnbound growth.
type Allocator = tensor.Allocator

// HeapAllocator is the default Allocator, backed by the Go heap.
type HeapAllocator = tensor.HeapAllocator

// Contract-violation errors reported by the engine.
var (
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrUnsupportedCast  = tensor.ErrUnsupportedCast
	ErrResizeNotAllowed = tensor.ErrResizeNotAllowed
	ErrUnsupportedDtype = tensor.ErrUnsupportedDtype
)

// Broadcast computes the broadcast plan for two shapes, or
// ErrShapeMismatch if they are incompatible.
func Broadcast(a, b Shape) (BroadcastPlan, error) {
	return tensor.Broadcast(a, b)
}

// PromoteTypes returns the common computation dtype for a tensor-tensor
// operand pair.
func PromoteTypes(a, b DataType) DataType {
	return tensor.PromoteTypes(a, b)
}

// PromoteWithScalar returns the common computation dtype for a
// tensor-scalar operand pair.
func PromoteWithScalar(t DataType, s Scalar) DataType {
	return tensor.PromoteWithScalar(t, s)
}

// CanCast reports whether a value of dtype from may be written into a
// tensor of dtype to.
func CanCast(from, to DataType) bool {
	return tensor.CanCast(from, to)
}

// Resize adjusts t's logical shape to target under its dynamism contract.
func Resize(t *RawTensor, target Shape) error {
	return tensor.Resize(t, target)
}

// NewRaw creates a new RawTensor with the given shape, type and dynamism.
func NewRaw(shape Shape, dtype DataType, dynamism ShapeDynamism) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, dynamism)
}

// NewRawWithCapacity creates a RawTensor whose buffer holds capacity
// elements.
func NewRawWithCapacity(shape Shape, dtype DataType, dynamism ShapeDynamism, capacity int) (*RawTensor, error) {
	return tensor.NewRawWithCapacity(shape, dtype, dynamism, capacity)
}

// FromSlice creates a tensor from a Go slice.
func FromSlice[T Elem](data []T, shape Shape, dynamism ShapeDynamism) (*RawTensor, error) {
	return tensor.FromSlice(data, shape, dynamism)
}

// Zeros creates a zero-initialized tensor.
func Zeros(shape Shape, dtype DataType, dynamism ShapeDynamism) (*RawTensor, error) {
	return tensor.Zeros(shape, dtype, dynamism)
}

// SliceOf returns a typed slice view of the tensor's logical elements.
func SliceOf[T Elem](r *RawTensor) []T {
	return tensor.SliceOf[T](r)
}

// BoolScalar creates a Scalar holding a boolean payload.
func BoolScalar(v bool) Scalar { return tensor.BoolScalar(v) }

// IntScalar creates a Scalar holding a signed integer payload.
func IntScalar(v int64) Scalar { return tensor.IntScalar(v) }

// FloatScalar creates a Scalar holding a floating payload.
func FloatScalar(v float64) Scalar { return tensor.FloatScalar(v) }
