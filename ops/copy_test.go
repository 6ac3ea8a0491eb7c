package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexkv99/executorch-EF/internal/tensor"
)

func TestDetachCopy(t *testing.T) {
	a, err := tensor.FromSlice([]float32{1.5, -2, 0, 7}, tensor.Shape{2, 2}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2, 2}, tensor.Float32, tensor.Static)
	require.NoError(t, err)

	res, err := DetachCopy(a, out)
	require.NoError(t, err)

	assert.Equal(t, []float32{1.5, -2, 0, 7}, res.AsFloat32())

	// The copy does not alias the source.
	a.AsFloat32()[0] = 99
	assert.Equal(t, float32(1.5), out.AsFloat32()[0])
}

func TestDetachCopyZeroElements(t *testing.T) {
	a, err := tensor.Zeros(tensor.Shape{0}, tensor.Int64, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{0}, tensor.Int64, tensor.Static)
	require.NoError(t, err)

	res, err := DetachCopy(a, out)
	require.NoError(t, err)
	assert.Equal(t, 0, res.NumElements())
}

func TestDetachCopyDtypeMismatch(t *testing.T) {
	a, err := tensor.Zeros(tensor.Shape{2}, tensor.Float32, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.Zeros(tensor.Shape{2}, tensor.Float64, tensor.Static)
	require.NoError(t, err)

	_, err = DetachCopy(a, out)
	assert.ErrorIs(t, err, tensor.ErrUnsupportedCast)
}

func TestDetachCopyResizesOutput(t *testing.T) {
	a, err := tensor.FromSlice([]int32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.Static)
	require.NoError(t, err)
	out, err := tensor.NewRawWithCapacity(tensor.Shape{1}, tensor.Int32, tensor.DynamicBound, 6)
	require.NoError(t, err)

	_, err = DetachCopy(a, out)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, out.Shape())
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, out.AsInt32())
}
