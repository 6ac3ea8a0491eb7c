package tensor

import "errors"

// Contract-violation errors reported by the engine. Every check that can
// produce one of these runs before any element of the output is written;
// callers should treat them as fatal for the current operator invocation,
// not as transient conditions to retry.
var (
	ErrShapeMismatch    = errors.New("input shapes are not broadcast-compatible")
	ErrUnsupportedCast  = errors.New("computation dtype cannot be cast to output dtype")
	ErrResizeNotAllowed = errors.New("tensor dynamism forbids the shape change")
	ErrUnsupportedDtype = errors.New("dtype not supported by operator")
)
