package cpu

import (
	"fmt"

	"github.com/Alexkv99/executorch-EF/internal/tensor"
)

// Boundary casts between stored dtypes and the computation type C.
// Boolean true/false maps to 1/0 and back via a nonzero test; everything
// else uses standard numeric narrowing/widening.

func fromBool[C tensor.Elem](v bool) C {
	var i int64
	if v {
		i = 1
	}
	return fromInt[C](i)
}

func fromInt[C tensor.Elem](v int64) C {
	var dummy C
	switch any(dummy).(type) {
	case bool:
		return any(v != 0).(C)
	case uint8:
		return any(uint8(v)).(C)
	case int8:
		return any(int8(v)).(C)
	case int16:
		return any(int16(v)).(C)
	case int32:
		return any(int32(v)).(C)
	case int64:
		return any(v).(C)
	case float32:
		return any(float32(v)).(C)
	case float64:
		return any(float64(v)).(C)
	default:
		panic("unsupported element type")
	}
}

func fromFloat[C tensor.Elem](v float64) C {
	var dummy C
	switch any(dummy).(type) {
	case bool:
		return any(v != 0).(C)
	case uint8:
		return any(uint8(v)).(C)
	case int8:
		return any(int8(v)).(C)
	case int16:
		return any(int16(v)).(C)
	case int32:
		return any(int32(v)).(C)
	case int64:
		return any(int64(v)).(C)
	case float32:
		return any(float32(v)).(C)
	case float64:
		return any(v).(C)
	default:
		panic("unsupported element type")
	}
}

func toInt[C tensor.Elem](v C) int64 {
	switch x := any(v).(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case uint8:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case float32:
		return int64(x)
	case float64:
		return int64(x)
	default:
		panic("unsupported element type")
	}
}

func toFloat[C tensor.Elem](v C) float64 {
	switch x := any(v).(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case uint8:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		panic("unsupported element type")
	}
}

func nonzero[C tensor.Elem](v C) bool {
	switch x := any(v).(type) {
	case bool:
		return x
	case uint8:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	default:
		panic("unsupported element type")
	}
}

// loader returns a function reading element i of t cast to the
// computation type C. The dtype switch runs once per tensor, not once
// per element.
func loader[C tensor.Elem](t *tensor.RawTensor) func(i int) C {
	switch t.DType() {
	case tensor.Bool:
		src := t.AsBool()
		return func(i int) C { return fromBool[C](src[i]) }
	case tensor.Uint8:
		src := t.AsUint8()
		return func(i int) C { return fromInt[C](int64(src[i])) }
	case tensor.Int8:
		src := t.AsInt8()
		return func(i int) C { return fromInt[C](int64(src[i])) }
	case tensor.Int16:
		src := t.AsInt16()
		return func(i int) C { return fromInt[C](int64(src[i])) }
	case tensor.Int32:
		src := t.AsInt32()
		return func(i int) C { return fromInt[C](int64(src[i])) }
	case tensor.Int64:
		src := t.AsInt64()
		return func(i int) C { return fromInt[C](src[i]) }
	case tensor.Float32:
		src := t.AsFloat32()
		return func(i int) C { return fromFloat[C](float64(src[i])) }
	case tensor.Float64:
		src := t.AsFloat64()
		return func(i int) C { return fromFloat[C](src[i]) }
	default:
		panic(fmt.Sprintf("loader: unsupported dtype %s", t.DType()))
	}
}

// storer returns a function writing a computation value into element i of
// t, cast to t's dtype.
func storer[C tensor.Elem](t *tensor.RawTensor) func(i int, v C) {
	switch t.DType() {
	case tensor.Bool:
		dst := t.AsBool()
		return func(i int, v C) { dst[i] = nonzero(v) }
	case tensor.Uint8:
		dst := t.AsUint8()
		return func(i int, v C) { dst[i] = uint8(toInt(v)) }
	case tensor.Int8:
		dst := t.AsInt8()
		return func(i int, v C) { dst[i] = int8(toInt(v)) }
	case tensor.Int16:
		dst := t.AsInt16()
		return func(i int, v C) { dst[i] = int16(toInt(v)) }
	case tensor.Int32:
		dst := t.AsInt32()
		return func(i int, v C) { dst[i] = int32(toInt(v)) }
	case tensor.Int64:
		dst := t.AsInt64()
		return func(i int, v C) { dst[i] = toInt(v) }
	case tensor.Float32:
		dst := t.AsFloat32()
		return func(i int, v C) { dst[i] = float32(toFloat(v)) }
	case tensor.Float64:
		dst := t.AsFloat64()
		return func(i int, v C) { dst[i] = toFloat(v) }
	default:
		panic(fmt.Sprintf("storer: unsupported dtype %s", t.DType()))
	}
}
