package scan

// Run is a maximal sequence of accepted values found in a buffer.
//
// Offset is the byte offset of the first value relative to the start of
// the scanned buffer and is always a multiple of the decoder size. Values
// are decoded copies; a Run does not refer to the buffer.
type Run[V any] struct {
	Offset int
	Values []V
}

// Len returns the number of values in the run.
func (r *Run[V]) Len() int {
	return len(r.Values)
}

// End returns the byte offset just past the run for values of the given
// size.
func (r *Run[V]) End(size int) int {
	return r.Offset + len(r.Values)*size
}
