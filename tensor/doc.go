// Copyright 2026 The executorch-EF Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the elementwise operator
// engine's data model.
//
// # Overview
//
// The package re-exports the core types every operator works with:
//   - RawTensor: a view over a contiguous buffer of homogeneous elements
//   - Shape, BroadcastPlan: dimensions and NumPy-style broadcasting
//   - DataType, Scalar: runtime type tags and tagged scalar operands
//   - ShapeDynamism, Allocator: the resize contract and its growth
//     collaborator
//
// # Basic Usage
//
//	import (
//	    "github.com/Alexkv99/executorch-EF/ops"
//	    "github.com/Alexkv99/executorch-EF/tensor"
//	)
//
//	a, _ := tensor.FromSlice([]float32{0, 1, 3, 5}, tensor.Shape{4}, tensor.Static)
//	out, _ := tensor.Zeros(tensor.Shape{4}, tensor.Float32, tensor.Static)
//	_, err := ops.Tan(a, out)
//
// # Broadcasting
//
// Binary operators follow NumPy broadcasting rules: shapes are aligned
// from the trailing dimension and size-1 dimensions are replayed across
// the larger operand.
//
// # Dynamism
//
// Every tensor declares whether its logical shape may change after
// creation: Static (never), DynamicBound (within the buffer capacity) or
// DynamicUnbound (the buffer grows through the Allocator collaborator).
package tensor
