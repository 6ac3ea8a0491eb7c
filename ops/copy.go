package ops

import (
	"fmt"

	"github.com/Alexkv99/executorch-EF/internal/tensor"
)

// DetachCopy copies a into out as a raw byte transfer. Both tensors must
// share a dtype; out is resized to a's shape first.
func DetachCopy(a, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "detach_copy"
	if err := checkDtypes(op, realType, a.DType(), out.DType()); err != nil {
		return nil, err
	}
	if a.DType() != out.DType() {
		return nil, fmt.Errorf("%s: %w: %s into %s", op, tensor.ErrUnsupportedCast, a.DType(), out.DType())
	}

	if err := tensor.Resize(out, a.Shape()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// A zero-element tensor may legally have no backing storage; don't
	// touch either buffer in that case.
	if a.NumElements() > 0 {
		copy(out.Data(), a.Data())
	}
	return out, nil
}
