package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromInt(t *testing.T) {
	assert.Equal(t, float32(3), fromInt[float32](3))
	assert.Equal(t, int8(-2), fromInt[int8](-2))
	assert.True(t, fromInt[bool](5), "nonzero maps to true")
	assert.False(t, fromInt[bool](0))
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, int32(2), fromFloat[int32](2.9), "float to int truncates")
	assert.Equal(t, float64(2.5), fromFloat[float64](2.5))
	assert.True(t, fromFloat[bool](0.1))
}

func TestFromBool(t *testing.T) {
	assert.Equal(t, int64(1), fromBool[int64](true))
	assert.Equal(t, float32(0), fromBool[float32](false))
	assert.True(t, fromBool[bool](true))
}

func TestToIntToFloat(t *testing.T) {
	assert.Equal(t, int64(1), toInt(true))
	assert.Equal(t, int64(200), toInt(uint8(200)))
	assert.Equal(t, float64(-7), toFloat(int16(-7)))
	assert.Equal(t, float64(1), toFloat(true))
}

func TestNonzero(t *testing.T) {
	assert.True(t, nonzero(int32(-1)))
	assert.False(t, nonzero(float64(0)))
	assert.True(t, nonzero(true))
}
