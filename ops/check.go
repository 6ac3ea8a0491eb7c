// Package ops provides concrete elementwise operators built on the
// generic engine. Every entry point runs the same sequence: validate the
// operand dtypes against the operator's allowlist, broadcast the input
// shapes, promote to the common computation dtype, check that dtype is
// castable into the output, resize the output, then delegate to the
// applier. All checks happen before the output tensor is mutated.
package ops

import (
	"fmt"

	"github.com/Alexkv99/executorch-EF/internal/tensor"
)

func intOrBool(dt tensor.DataType) bool {
	return dt == tensor.Bool || dt.IsIntegral()
}

func numeric(dt tensor.DataType) bool {
	return dt.IsIntegral() || dt.IsFloating()
}

func realType(dt tensor.DataType) bool {
	return dt.IsReal()
}

// checkDtypes validates every dtype against the operator's allowlist.
func checkDtypes(op string, allowed func(tensor.DataType) bool, dts ...tensor.DataType) error {
	for _, dt := range dts {
		if !allowed(dt) {
			return fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDtype, dt)
		}
	}
	return nil
}

// prepareBinary runs the shared tensor-tensor prologue: broadcast the
// input shapes, promote to the computation dtype, check it can be cast
// into the output, and resize the output to the broadcast shape. The
// cast check deliberately precedes the resize so that a failing call
// leaves the output shape untouched.
func prepareBinary(op string, a, b, out *tensor.RawTensor) (tensor.DataType, error) {
	plan, err := tensor.Broadcast(a.Shape(), b.Shape())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	common := tensor.PromoteTypes(a.DType(), b.DType())
	if !tensor.CanCast(common, out.DType()) {
		return 0, fmt.Errorf("%s: %w: %s into %s", op, tensor.ErrUnsupportedCast, common, out.DType())
	}

	if err := tensor.Resize(out, plan.Shape); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return common, nil
}

// prepareScalar runs the shared tensor-scalar prologue. The output takes
// the tensor operand's shape; the scalar contributes only to promotion.
func prepareScalar(op string, a *tensor.RawTensor, b tensor.Scalar, out *tensor.RawTensor) (tensor.DataType, error) {
	common := tensor.PromoteWithScalar(a.DType(), b)
	if !tensor.CanCast(common, out.DType()) {
		return 0, fmt.Errorf("%s: %w: %s into %s", op, tensor.ErrUnsupportedCast, common, out.DType())
	}

	if err := tensor.Resize(out, a.Shape()); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return common, nil
}
