package ops

import (
	"fmt"
	"math"

	"github.com/Alexkv99/executorch-EF/internal/backend/cpu"
	"github.com/Alexkv99/executorch-EF/internal/tensor"
)

// Tan computes the trigonometric tangent of every element of a into out.
// Inputs may be bool, integer or floating; the output dtype must be
// floating — an integer output is rejected rather than truncated. The
// computation runs in float64.
func Tan(a, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "tan"
	if err := checkDtypes(op, realType, a.DType()); err != nil {
		return nil, err
	}
	if !out.DType().IsFloating() {
		return nil, fmt.Errorf("%s: %w: float64 into %s", op, tensor.ErrUnsupportedCast, out.DType())
	}

	if err := tensor.Resize(out, a.Shape()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cpu.ApplyUnary(math.Tan, a, out)
	return out, nil
}
