package ops

import (
	"fmt"

	"github.com/Alexkv99/executorch-EF/internal/backend/cpu"
	"github.com/Alexkv99/executorch-EF/internal/tensor"
)

// Bitwise operators accept bool and the integer types. The per-element
// function is dispatched on the computation dtype: a boolean computation
// combines logically, an integer computation bitwise. For OR and AND the
// two coincide on bool storage; for XOR they do not (2^3 = 1 bitwise,
// true XOR true = false logically), so the dispatch is load-bearing.

// BitwiseOr computes the element-wise OR of a and b into out, with
// broadcasting.
func BitwiseOr(a, b, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "bitwise_or"
	if err := checkDtypes(op, intOrBool, a.DType(), b.DType(), out.DType()); err != nil {
		return nil, err
	}
	common, err := prepareBinary(op, a, b, out)
	if err != nil {
		return nil, err
	}

	switch common {
	case tensor.Bool:
		cpu.ApplyBinary(func(x, y bool) bool { return x || y }, a, b, out)
	case tensor.Uint8:
		cpu.ApplyBinary(func(x, y uint8) uint8 { return x | y }, a, b, out)
	case tensor.Int8:
		cpu.ApplyBinary(func(x, y int8) int8 { return x | y }, a, b, out)
	case tensor.Int16:
		cpu.ApplyBinary(func(x, y int16) int16 { return x | y }, a, b, out)
	case tensor.Int32:
		cpu.ApplyBinary(func(x, y int32) int32 { return x | y }, a, b, out)
	case tensor.Int64:
		cpu.ApplyBinary(func(x, y int64) int64 { return x | y }, a, b, out)
	default:
		return nil, fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDtype, common)
	}
	return out, nil
}

// BitwiseOrScalar computes the element-wise OR of a and the scalar b
// into out.
func BitwiseOrScalar(a *tensor.RawTensor, b tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "bitwise_or"
	if err := checkDtypes(op, intOrBool, a.DType(), out.DType()); err != nil {
		return nil, err
	}
	if b.DType().IsFloating() {
		return nil, fmt.Errorf("%s: %w: %s scalar", op, tensor.ErrUnsupportedDtype, b.DType())
	}
	common, err := prepareScalar(op, a, b, out)
	if err != nil {
		return nil, err
	}

	switch common {
	case tensor.Bool:
		bv := b.Bool()
		cpu.ApplyUnary(func(x bool) bool { return x || bv }, a, out)
	case tensor.Uint8:
		bv := uint8(b.Int())
		cpu.ApplyUnary(func(x uint8) uint8 { return x | bv }, a, out)
	case tensor.Int8:
		bv := int8(b.Int())
		cpu.ApplyUnary(func(x int8) int8 { return x | bv }, a, out)
	case tensor.Int16:
		bv := int16(b.Int())
		cpu.ApplyUnary(func(x int16) int16 { return x | bv }, a, out)
	case tensor.Int32:
		bv := int32(b.Int())
		cpu.ApplyUnary(func(x int32) int32 { return x | bv }, a, out)
	case tensor.Int64:
		bv := b.Int()
		cpu.ApplyUnary(func(x int64) int64 { return x | bv }, a, out)
	default:
		return nil, fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDtype, common)
	}
	return out, nil
}

// BitwiseAnd computes the element-wise AND of a and b into out, with
// broadcasting.
func BitwiseAnd(a, b, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "bitwise_and"
	if err := checkDtypes(op, intOrBool, a.DType(), b.DType(), out.DType()); err != nil {
		return nil, err
	}
	common, err := prepareBinary(op, a, b, out)
	if err != nil {
		return nil, err
	}

	switch common {
	case tensor.Bool:
		cpu.ApplyBinary(func(x, y bool) bool { return x && y }, a, b, out)
	case tensor.Uint8:
		cpu.ApplyBinary(func(x, y uint8) uint8 { return x & y }, a, b, out)
	case tensor.Int8:
		cpu.ApplyBinary(func(x, y int8) int8 { return x & y }, a, b, out)
	case tensor.Int16:
		cpu.ApplyBinary(func(x, y int16) int16 { return x & y }, a, b, out)
	case tensor.Int32:
		cpu.ApplyBinary(func(x, y int32) int32 { return x & y }, a, b, out)
	case tensor.Int64:
		cpu.ApplyBinary(func(x, y int64) int64 { return x & y }, a, b, out)
	default:
		return nil, fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDtype, common)
	}
	return out, nil
}

// BitwiseAndScalar computes the element-wise AND of a and the scalar b
// into out.
func BitwiseAndScalar(a *tensor.RawTensor, b tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "bitwise_and"
	if err := checkDtypes(op, intOrBool, a.DType(), out.DType()); err != nil {
		return nil, err
	}
	if b.DType().IsFloating() {
		return nil, fmt.Errorf("%s: %w: %s scalar", op, tensor.ErrUnsupportedDtype, b.DType())
	}
	common, err := prepareScalar(op, a, b, out)
	if err != nil {
		return nil, err
	}

	switch common {
	case tensor.Bool:
		bv := b.Bool()
		cpu.ApplyUnary(func(x bool) bool { return x && bv }, a, out)
	case tensor.Uint8:
		bv := uint8(b.Int())
		cpu.ApplyUnary(func(x uint8) uint8 { return x & bv }, a, out)
	case tensor.Int8:
		bv := int8(b.Int())
		cpu.ApplyUnary(func(x int8) int8 { return x & bv }, a, out)
	case tensor.Int16:
		bv := int16(b.Int())
		cpu.ApplyUnary(func(x int16) int16 { return x & bv }, a, out)
	case tensor.Int32:
		bv := int32(b.Int())
		cpu.ApplyUnary(func(x int32) int32 { return x & bv }, a, out)
	case tensor.Int64:
		bv := b.Int()
		cpu.ApplyUnary(func(x int64) int64 { return x & bv }, a, out)
	default:
		return nil, fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDtype, common)
	}
	return out, nil
}

// BitwiseXor computes the element-wise XOR of a and b into out, with
// broadcasting. The boolean computation uses logical inequality, not a
// bit pattern.
func BitwiseXor(a, b, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "bitwise_xor"
	if err := checkDtypes(op, intOrBool, a.DType(), b.DType(), out.DType()); err != nil {
		return nil, err
	}
	common, err := prepareBinary(op, a, b, out)
	if err != nil {
		return nil, err
	}

	switch common {
	case tensor.Bool:
		cpu.ApplyBinary(func(x, y bool) bool { return x != y }, a, b, out)
	case tensor.Uint8:
		cpu.ApplyBinary(func(x, y uint8) uint8 { return x ^ y }, a, b, out)
	case tensor.Int8:
		cpu.ApplyBinary(func(x, y int8) int8 { return x ^ y }, a, b, out)
	case tensor.Int16:
		cpu.ApplyBinary(func(x, y int16) int16 { return x ^ y }, a, b, out)
	case tensor.Int32:
		cpu.ApplyBinary(func(x, y int32) int32 { return x ^ y }, a, b, out)
	case tensor.Int64:
		cpu.ApplyBinary(func(x, y int64) int64 { return x ^ y }, a, b, out)
	default:
		return nil, fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDtype, common)
	}
	return out, nil
}

// BitwiseXorScalar computes the element-wise XOR of a and the scalar b
// into out.
func BitwiseXorScalar(a *tensor.RawTensor, b tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "bitwise_xor"
	if err := checkDtypes(op, intOrBool, a.DType(), out.DType()); err != nil {
		return nil, err
	}
	if b.DType().IsFloating() {
		return nil, fmt.Errorf("%s: %w: %s scalar", op, tensor.ErrUnsupportedDtype, b.DType())
	}
	common, err := prepareScalar(op, a, b, out)
	if err != nil {
		return nil, err
	}

	switch common {
	case tensor.Bool:
		bv := b.Bool()
		cpu.ApplyUnary(func(x bool) bool { return x != bv }, a, out)
	case tensor.Uint8:
		bv := uint8(b.Int())
		cpu.ApplyUnary(func(x uint8) uint8 { return x ^ bv }, a, out)
	case tensor.Int8:
		bv := int8(b.Int())
		cpu.ApplyUnary(func(x int8) int8 { return x ^ bv }, a, out)
	case tensor.Int16:
		bv := int16(b.Int())
		cpu.ApplyUnary(func(x int16) int16 { return x ^ bv }, a, out)
	case tensor.Int32:
		bv := int32(b.Int())
		cpu.ApplyUnary(func(x int32) int32 { return x ^ bv }, a, out)
	case tensor.Int64:
		bv := b.Int()
		cpu.ApplyUnary(func(x int64) int64 { return x ^ bv }, a, out)
	default:
		return nil, fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDtype, common)
	}
	return out, nil
}
