package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexkv99/executorch-EF/internal/tensor"
)

func TestAddSameDtype(t *testing.T) {
	a, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float32{10, 20, 30}, tensor.Shape{3}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{3}, tensor.Float32, tensor.Static)
	require.NoError(t, err)

	_, err = Add(a, b, out)
	require.NoError(t, err)

	assert.Equal(t, []float32{11, 22, 33}, out.AsFloat32())
}

func TestAddPromotesIntAndFloat(t *testing.T) {
	// int32 + float32 computes in float32.
	a, err := tensor.FromSlice([]int32{1, 2, 3}, tensor.Shape{3}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float32{0.5, 0.5, 0.5}, tensor.Shape{3}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{3}, tensor.Float32, tensor.Static)
	require.NoError(t, err)

	_, err = Add(a, b, out)
	require.NoError(t, err)

	assert.Equal(t, []float32{1.5, 2.5, 3.5}, out.AsFloat32())
}

func TestAddFloatIntoIntRejected(t *testing.T) {
	a, err := tensor.FromSlice([]float32{1.5}, tensor.Shape{1}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float32{2.5}, tensor.Shape{1}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{1}, tensor.Int32, tensor.Static)
	require.NoError(t, err)

	_, err = Add(a, b, out)
	assert.ErrorIs(t, err, tensor.ErrUnsupportedCast)
	assert.Equal(t, tensor.Shape{1}, out.Shape(), "failed call leaves the output untouched")
}

func TestAddScalarKeepsIntDtype(t *testing.T) {
	// The int scalar's nominal 64-bit width must not widen the tensor.
	a, err := tensor.FromSlice([]int32{1, 2, 3}, tensor.Shape{3}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{3}, tensor.Int32, tensor.Static)
	require.NoError(t, err)

	_, err = AddScalar(a, tensor.IntScalar(5), out)
	require.NoError(t, err)

	assert.Equal(t, []int32{6, 7, 8}, out.AsInt32())
}

func TestAddScalarFloatPromotes(t *testing.T) {
	// A floating scalar promotes the integer tensor to float.
	a, err := tensor.FromSlice([]int32{1, 2}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2}, tensor.Float32, tensor.Static)
	require.NoError(t, err)

	_, err = AddScalar(a, tensor.FloatScalar(0.5), out)
	require.NoError(t, err)

	assert.Equal(t, []float32{1.5, 2.5}, out.AsFloat32())
}

func TestAddScalarFloatIntoIntRejected(t *testing.T) {
	a, err := tensor.FromSlice([]int32{1, 2}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2}, tensor.Int32, tensor.Static)
	require.NoError(t, err)

	_, err = AddScalar(a, tensor.FloatScalar(0.5), out)
	assert.ErrorIs(t, err, tensor.ErrUnsupportedCast)
}

func TestMulBroadcast(t *testing.T) {
	a, err := tensor.FromSlice([]int64{1, 2, 3}, tensor.Shape{3, 1}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]int64{10, 100}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{3, 2}, tensor.Int64, tensor.Static)
	require.NoError(t, err)

	_, err = Mul(a, b, out)
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 100, 20, 200, 30, 300}, out.AsInt64())
}

func TestMulScalar(t *testing.T) {
	a, err := tensor.FromSlice([]float64{1.5, -2}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2}, tensor.Float64, tensor.Static)
	require.NoError(t, err)

	_, err = MulScalar(a, tensor.FloatScalar(2), out)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, -4}, out.AsFloat64())
}

func TestAddDynamicBoundResize(t *testing.T) {
	a, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{4, 1}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float32{10, 20}, tensor.Shape{2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.NewRawWithCapacity(tensor.Shape{1}, tensor.Float32, tensor.DynamicBound, 8)
	require.NoError(t, err)

	_, err = Add(a, b, out)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{4, 2}, out.Shape())
	assert.Equal(t, []float32{11, 21, 12, 22, 13, 23, 14, 24}, out.AsFloat32())
}

func TestAddBoolInputRejected(t *testing.T) {
	a, err := tensor.FromSlice([]bool{true}, tensor.Shape{1}, tensor.Static)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]int32{1}, tensor.Shape{1}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{1}, tensor.Int32, tensor.Static)
	require.NoError(t, err)

	_, err = Add(a, b, out)
	assert.ErrorIs(t, err, tensor.ErrUnsupportedDtype)
}
