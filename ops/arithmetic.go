package ops

import (
	"fmt"

	"github.com/Alexkv99/executorch-EF/internal/backend/cpu"
	"github.com/Alexkv99/executorch-EF/internal/tensor"
)

// Arithmetic operators accept the numeric dtypes and exercise the full
// promotion lattice: mixed-dtype operands are cast to the common
// computation dtype before the per-element function runs.

// Add computes the element-wise sum of a and b into out, with
// broadcasting.
func Add(a, b, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "add"
	if err := checkDtypes(op, numeric, a.DType(), b.DType(), out.DType()); err != nil {
		return nil, err
	}
	common, err := prepareBinary(op, a, b, out)
	if err != nil {
		return nil, err
	}

	switch common {
	case tensor.Uint8:
		cpu.ApplyBinary(func(x, y uint8) uint8 { return x + y }, a, b, out)
	case tensor.Int8:
		cpu.ApplyBinary(func(x, y int8) int8 { return x + y }, a, b, out)
	case tensor.Int16:
		cpu.ApplyBinary(func(x, y int16) int16 { return x + y }, a, b, out)
	case tensor.Int32:
		cpu.ApplyBinary(func(x, y int32) int32 { return x + y }, a, b, out)
	case tensor.Int64:
		cpu.ApplyBinary(func(x, y int64) int64 { return x + y }, a, b, out)
	case tensor.Float32:
		cpu.ApplyBinary(func(x, y float32) float32 { return x + y }, a, b, out)
	case tensor.Float64:
		cpu.ApplyBinary(func(x, y float64) float64 { return x + y }, a, b, out)
	default:
		return nil, fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDtype, common)
	}
	return out, nil
}

// AddScalar computes the element-wise sum of a and the scalar b into out.
// An integer scalar does not widen an integer tensor; a floating scalar
// promotes integer tensors to the default floating type.
func AddScalar(a *tensor.RawTensor, b tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "add"
	if err := checkDtypes(op, numeric, a.DType(), out.DType()); err != nil {
		return nil, err
	}
	common, err := prepareScalar(op, a, b, out)
	if err != nil {
		return nil, err
	}

	switch common {
	case tensor.Uint8:
		bv := uint8(b.Int())
		cpu.ApplyUnary(func(x uint8) uint8 { return x + bv }, a, out)
	case tensor.Int8:
		bv := int8(b.Int())
		cpu.ApplyUnary(func(x int8) int8 { return x + bv }, a, out)
	case tensor.Int16:
		bv := int16(b.Int())
		cpu.ApplyUnary(func(x int16) int16 { return x + bv }, a, out)
	case tensor.Int32:
		bv := int32(b.Int())
		cpu.ApplyUnary(func(x int32) int32 { return x + bv }, a, out)
	case tensor.Int64:
		bv := b.Int()
		cpu.ApplyUnary(func(x int64) int64 { return x + bv }, a, out)
	case tensor.Float32:
		bv := float32(b.Float())
		cpu.ApplyUnary(func(x float32) float32 { return x + bv }, a, out)
	case tensor.Float64:
		bv := b.Float()
		cpu.ApplyUnary(func(x float64) float64 { return x + bv }, a, out)
	default:
		return nil, fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDtype, common)
	}
	return out, nil
}

// Mul computes the element-wise product of a and b into out, with
// broadcasting.
func Mul(a, b, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "mul"
	if err := checkDtypes(op, numeric, a.DType(), b.DType(), out.DType()); err != nil {
		return nil, err
	}
	common, err := prepareBinary(op, a, b, out)
	if err != nil {
		return nil, err
	}

	switch common {
	case tensor.Uint8:
		cpu.ApplyBinary(func(x, y uint8) uint8 { return x * y }, a, b, out)
	case tensor.Int8:
		cpu.ApplyBinary(func(x, y int8) int8 { return x * y }, a, b, out)
	case tensor.Int16:
		cpu.ApplyBinary(func(x, y int16) int16 { return x * y }, a, b, out)
	case tensor.Int32:
		cpu.ApplyBinary(func(x, y int32) int32 { return x * y }, a, b, out)
	case tensor.Int64:
		cpu.ApplyBinary(func(x, y int64) int64 { return x * y }, a, b, out)
	case tensor.Float32:
		cpu.ApplyBinary(func(x, y float32) float32 { return x * y }, a, b, out)
	case tensor.Float64:
		cpu.ApplyBinary(func(x, y float64) float64 { return x * y }, a, b, out)
	default:
		return nil, fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDtype, common)
	}
	return out, nil
}

// MulScalar computes the element-wise product of a and the scalar b
// into out.
func MulScalar(a *tensor.RawTensor, b tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "mul"
	if err := checkDtypes(op, numeric, a.DType(), out.DType()); err != nil {
		return nil, err
	}
	common, err := prepareScalar(op, a, b, out)
	if err != nil {
		return nil, err
	}

	switch common {
	case tensor.Uint8:
		bv := uint8(b.Int())
		cpu.ApplyUnary(func(x uint8) uint8 { return x * bv }, a, out)
	case tensor.Int8:
		bv := int8(b.Int())
		cpu.ApplyUnary(func(x int8) int8 { return x * bv }, a, out)
	case tensor.Int16:
		bv := int16(b.Int())
		cpu.ApplyUnary(func(x int16) int16 { return x * bv }, a, out)
	case tensor.Int32:
		bv := int32(b.Int())
		cpu.ApplyUnary(func(x int32) int32 { return x * bv }, a, out)
	case tensor.Int64:
		bv := b.Int()
		cpu.ApplyUnary(func(x int64) int64 { return x * bv }, a, out)
	case tensor.Float32:
		bv := float32(b.Float())
		cpu.ApplyUnary(func(x float32) float32 { return x * bv }, a, out)
	case tensor.Float64:
		bv := b.Float()
		cpu.ApplyUnary(func(x float64) float64 { return x * bv }, a, out)
	default:
		return nil, fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDtype, common)
	}
	return out, nil
}
