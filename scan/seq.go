package scan

import (
	"io"
	"iter"
)

// Seq yields the runs of a fixed buffer one at a time. It is not safe for
// concurrent use and cannot be restarted: once Read has returned io.EOF,
// build a new Seq from the original buffer to scan again.
type Seq[V any] struct {
	s   *Scanner[V]
	buf []byte
	pos int
	eof bool

	stats Stats
}

// Stats summarizes a scan.
type Stats struct {
	// Runs is the number of runs returned.
	Runs int
	// Discarded is the number of accepted streaks shorter than the
	// minimum length.
	Discarded int
	// Windows is the number of windows decoded and tested. Windows
	// examined by a failed search are counted again when a later search
	// covers them.
	Windows int
	// Unconsumed is the length of the remainder once the scan is done.
	Unconsumed int
}

// Runs returns a Seq over the runs of buf.
func (s *Scanner[V]) Runs(buf []byte) *Seq[V] {
	return &Seq[V]{s: s, buf: buf}
}

// IterateRuns is shorthand for building a Scanner and calling Runs. Invalid
// arguments yield an empty sequence that leaves all of buf unconsumed.
func IterateRuns[V any](buf []byte, minLength int, dec Decoder[V], accepts Predicate[V]) *Seq[V] {
	s, err := NewScanner(dec, accepts, MinLength(minLength))
	if err != nil {
		return &Seq[V]{buf: buf, eof: true, stats: Stats{Unconsumed: len(buf)}}
	}
	return s.Runs(buf)
}

// Read returns the next run. When no runs remain it returns (nil, io.EOF),
// and keeps doing so on subsequent calls.
func (q *Seq[V]) Read() (*Run[V], error) {
	if q.eof {
		return nil, io.EOF
	}
	st, fs := q.s.find(q.buf, q.pos)
	q.stats.Windows += fs.windows
	q.stats.Discarded += fs.discarded
	if !st.found {
		q.eof = true
		q.stats.Unconsumed = len(q.buf) - q.pos
		return nil, io.EOF
	}
	run := q.s.materialize(q.buf, st.start, st.count)
	q.pos = st.start + st.count*q.s.dec.Size
	q.stats.Runs++
	return run, nil
}

// All returns an iterator over the remaining runs. Breaking out of the
// loop early leaves the Seq positioned after the last run yielded.
func (q *Seq[V]) All() iter.Seq[Run[V]] {
	return func(yield func(Run[V]) bool) {
		for {
			run, err := q.Read()
			if err != nil {
				return
			}
			if !yield(*run) {
				return
			}
		}
	}
}

// Done reports whether the sequence is exhausted.
func (q *Seq[V]) Done() bool {
	return q.eof
}

// Offset returns the byte offset at which the next Read resumes scanning.
func (q *Seq[V]) Offset() int {
	return q.pos
}

// Remainder returns the bytes not yet consumed by a returned run. After
// the sequence is exhausted this is the final remainder, including any
// trailing bytes too short to decode.
func (q *Seq[V]) Remainder() []byte {
	return q.buf[q.pos:]
}

// Unconsumed returns len(Remainder()).
func (q *Seq[V]) Unconsumed() int {
	return len(q.buf) - q.pos
}

// Stats returns counters for the scan so far.
func (q *Seq[V]) Stats() Stats {
	st := q.stats
	st.Unconsumed = q.Unconsumed()
	return st
}
