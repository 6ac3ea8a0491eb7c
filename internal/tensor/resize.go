package tensor

import "fmt"

// Resize adjusts t's logical shape to target under its dynamism contract.
// No data moves: only the shape and strides change, and stale buffer
// contents are unspecified afterwards.
//
//   - Static: only the identical shape is accepted.
//   - DynamicBound: any shape whose element count fits the buffer capacity.
//   - DynamicUnbound: any shape; the buffer grows through the allocator
//     when the element count exceeds capacity.
//
// On failure the shape is left exactly as it was.
func Resize(t *RawTensor, target Shape) error {
	if err := target.Validate(); err != nil {
		return fmt.Errorf("resize: %w", err)
	}

	switch t.dynamism {
	case Static:
		if !t.shape.Equal(target) {
			return fmt.Errorf("resize: %w: static tensor %v cannot become %v",
				ErrResizeNotAllowed, t.shape, target)
		}
		return nil
	case DynamicBound:
		if n := target.NumElements(); n > t.Capacity() {
			return fmt.Errorf("resize: %w: shape %v needs %d elements, capacity is %d",
				ErrResizeNotAllowed, target, n, t.Capacity())
		}
	case DynamicUnbound:
		if n := target.NumElements(); n > t.Capacity() {
			buf, err := t.alloc.Grow(n * t.dtype.Size())
			if err != nil {
				return fmt.Errorf("resize: growing to %d elements: %w", n, err)
			}
			t.data = buf
		}
	}

	t.shape = target.Clone()
	t.stride = target.ComputeStrides()
	return nil
}
