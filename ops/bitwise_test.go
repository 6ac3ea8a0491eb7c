package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexkv99/executorch-EF/internal/tensor"
)

func TestBitwiseOrBoolBroadcast(t *testing.T) {
	a, err := tensor.FromSlice([]bool{false, true}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]bool{false, true}, tensor.Shape{1, 2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{1, 2}, tensor.Bool, tensor.Static)
	require.NoError(t, err)

	res, err := BitwiseOr(a, b, out)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{1, 2}, res.Shape())
	assert.Equal(t, []bool{false, true}, res.AsBool())
}

func TestBitwiseOrInt(t *testing.T) {
	a, err := tensor.FromSlice([]uint8{0b1010, 0b0001}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]uint8{0b0101, 0b0001}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2}, tensor.Uint8, tensor.Static)
	require.NoError(t, err)

	_, err = BitwiseOr(a, b, out)
	require.NoError(t, err)

	assert.Equal(t, []uint8{0b1111, 0b0001}, out.AsUint8())
}

func TestBitwiseOrMixedDtypes(t *testing.T) {
	// bool | int32 promotes to int32.
	a, err := tensor.FromSlice([]bool{true, false}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]int32{2, 2}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2}, tensor.Int32, tensor.Static)
	require.NoError(t, err)

	_, err = BitwiseOr(a, b, out)
	require.NoError(t, err)

	assert.Equal(t, []int32{3, 2}, out.AsInt32())
}

func TestBitwiseOrScalar(t *testing.T) {
	a, err := tensor.FromSlice([]int32{0b100, 0b010}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2}, tensor.Int32, tensor.Static)
	require.NoError(t, err)

	_, err = BitwiseOrScalar(a, tensor.IntScalar(0b001), out)
	require.NoError(t, err)

	assert.Equal(t, []int32{0b101, 0b011}, out.AsInt32())
}

func TestBitwiseOrScalarKeepsTensorDtype(t *testing.T) {
	// The int64 scalar must not widen the uint8 tensor.
	a, err := tensor.FromSlice([]uint8{1, 2}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2}, tensor.Uint8, tensor.Static)
	require.NoError(t, err)

	_, err = BitwiseOrScalar(a, tensor.IntScalar(4), out)
	require.NoError(t, err)

	assert.Equal(t, []uint8{5, 6}, out.AsUint8())
}

func TestBitwiseOrScalarFloatRejected(t *testing.T) {
	a, err := tensor.FromSlice([]int32{1}, tensor.Shape{1}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{1}, tensor.Int32, tensor.Static)
	require.NoError(t, err)

	_, err = BitwiseOrScalar(a, tensor.FloatScalar(1.5), out)
	assert.ErrorIs(t, err, tensor.ErrUnsupportedDtype)
}

func TestBitwiseAnd(t *testing.T) {
	a, err := tensor.FromSlice([]int16{0b1100, 0b1010}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]int16{0b1010, 0b1010}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2}, tensor.Int16, tensor.Static)
	require.NoError(t, err)

	_, err = BitwiseAnd(a, b, out)
	require.NoError(t, err)

	assert.Equal(t, []int16{0b1000, 0b1010}, out.AsInt16())
}

func TestBitwiseAndBool(t *testing.T) {
	a, err := tensor.FromSlice([]bool{true, true, false}, tensor.Shape{3}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]bool{true, false, false}, tensor.Shape{3}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{3}, tensor.Bool, tensor.Static)
	require.NoError(t, err)

	_, err = BitwiseAnd(a, b, out)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false, false}, out.AsBool())
}

func TestBitwiseXorBoolIsLogical(t *testing.T) {
	// On booleans XOR is logical inequality: true XOR true = false.
	a, err := tensor.FromSlice([]bool{true, true, false}, tensor.Shape{3}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]bool{true, false, false}, tensor.Shape{3}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{3}, tensor.Bool, tensor.Static)
	require.NoError(t, err)

	_, err = BitwiseXor(a, b, out)
	require.NoError(t, err)

	assert.Equal(t, []bool{false, true, false}, out.AsBool())
}

func TestBitwiseXorIntIsBitwise(t *testing.T) {
	// On integers XOR combines bit patterns: 2 ^ 3 = 1.
	a, err := tensor.FromSlice([]int32{2, 7}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]int32{3, 7}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2}, tensor.Int32, tensor.Static)
	require.NoError(t, err)

	_, err = BitwiseXor(a, b, out)
	require.NoError(t, err)

	assert.Equal(t, []int32{1, 0}, out.AsInt32())
}

func TestBitwiseXorScalar(t *testing.T) {
	a, err := tensor.FromSlice([]bool{true, false}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2}, tensor.Bool, tensor.Static)
	require.NoError(t, err)

	_, err = BitwiseXorScalar(a, tensor.BoolScalar(true), out)
	require.NoError(t, err)

	assert.Equal(t, []bool{false, true}, out.AsBool())
}

func TestBitwiseFloatInputRejected(t *testing.T) {
	a, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]int32{1, 2}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2}, tensor.Int32, tensor.Static)
	require.NoError(t, err)

	_, err = BitwiseOr(a, b, out)
	assert.ErrorIs(t, err, tensor.ErrUnsupportedDtype)
}

func TestBitwiseShapeMismatch(t *testing.T) {
	a, err := tensor.Zeros(tensor.Shape{3, 4}, tensor.Int32, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.Zeros(tensor.Shape{5}, tensor.Int32, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{3, 4}, tensor.Int32, tensor.Static)
	require.NoError(t, err)

	_, err = BitwiseOr(a, b, out)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestBitwiseResizeNotAllowed(t *testing.T) {
	a, err := tensor.Zeros(tensor.Shape{3, 4}, tensor.Int32, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.Zeros(tensor.Shape{4}, tensor.Int32, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2, 2}, tensor.Int32, tensor.Static)
	require.NoError(t, err)

	_, err = BitwiseOr(a, b, out)
	assert.ErrorIs(t, err, tensor.ErrResizeNotAllowed)
	assert.Equal(t, tensor.Shape{2, 2}, out.Shape())
}
