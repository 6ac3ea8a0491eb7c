// Package cpu implements the portable elementwise applier: strided
// row-major iteration over an output tensor, with per-position source
// offsets under broadcasting and boundary casts between stored dtypes and
// the computation type.
package cpu

import (
	"fmt"

	"github.com/Alexkv99/executorch-EF/internal/tensor"
)

// ApplyUnary applies fn to every element of a, writing the cast result
// into the corresponding position of out.
//
// Precondition: out.Shape() equals a.Shape() (the resizer has run).
// Elements are cast to the computation type C on load and to out's dtype
// on store. Zero-element tensors perform zero iterations and zero buffer
// accesses.
func ApplyUnary[C tensor.Elem](fn func(C) C, a, out *tensor.RawTensor) {
	if !a.Shape().Equal(out.Shape()) {
		panic(fmt.Sprintf("ApplyUnary: input shape %v does not match output shape %v", a.Shape(), out.Shape()))
	}

	n := out.NumElements()
	if n == 0 {
		return
	}

	load := loader[C](a)
	store := storer[C](out)
	for i := 0; i < n; i++ {
		store(i, fn(load(i)))
	}
}

// ApplyBinary applies fn across every position of out in row-major order,
// reading each input at the source offset its broadcast strides dictate.
//
// Precondition: out.Shape() is already the broadcast target shape of a
// and b (the resizer has run). Every output position is written exactly
// once; no position is read before being computed.
func ApplyBinary[C tensor.Elem](fn func(C, C) C, a, b, out *tensor.RawTensor) {
	outShape := out.Shape()
	n := outShape.NumElements()
	if n == 0 {
		return
	}

	loadA := loader[C](a)
	loadB := loader[C](b)
	store := storer[C](out)

	// Fast path: no broadcasting, all three tensors share a linear layout.
	if a.Shape().Equal(outShape) && b.Shape().Equal(outShape) {
		for i := 0; i < n; i++ {
			store(i, fn(loadA(i), loadB(i)))
		}
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := tensor.BroadcastStrides(a.Shape(), outShape)
	bStrides := tensor.BroadcastStrides(b.Shape(), outShape)

	for i := 0; i < n; i++ {
		ai := sourceIndex(i, outStrides, aStrides)
		bi := sourceIndex(i, outStrides, bStrides)
		store(i, fn(loadA(ai), loadB(bi)))
	}
}

// sourceIndex maps a linear output index to the flat index in a source
// buffer, walking the output coordinates and applying the source's
// broadcast strides. A stride of 0 replays the source along that
// dimension without advancing.
func sourceIndex(outIdx int, outStrides, srcStrides []int) int {
	flat := 0
	for i := 0; i < len(outStrides); i++ {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flat += coord * srcStrides[i]
	}
	return flat
}
