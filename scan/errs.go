package scan

import "errors"

var (
	ErrStride    = errors.New("bad decoder stride")
	ErrPredicate = errors.New("nil predicate")
	ErrMinLength = errors.New("negative minimum length")
)
