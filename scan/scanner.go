package scan

import "fmt"

// Scanner finds runs of values accepted by a predicate. A Scanner holds no
// state between calls and may be shared by goroutines scanning the same or
// different buffers.
type Scanner[V any] struct {
	dec     Decoder[V]
	accepts Predicate[V]
	minLen  int
}

// NewScanner returns a Scanner decoding values with dec and keeping those
// accepted by accepts.
func NewScanner[V any](dec Decoder[V], accepts Predicate[V], opts ...Option) (*Scanner[V], error) {
	opt := &scanOpts{}
	for _, o := range opts {
		o(opt)
	}
	if !dec.valid() {
		return nil, fmt.Errorf("%w: decoder %q has size %d", ErrStride, dec.Name, dec.Size)
	}
	if accepts == nil {
		return nil, ErrPredicate
	}
	if opt.minLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrMinLength, opt.minLength)
	}
	return &Scanner[V]{
		dec:     dec,
		accepts: accepts,
		minLen:  max(opt.minLength, 1),
	}, nil
}

// Decoder returns the decoder the scanner was built with.
func (s *Scanner[V]) Decoder() Decoder[V] {
	return s.dec
}

// MinLength returns the effective minimum run length, never less than 1.
func (s *Scanner[V]) MinLength() int {
	return s.minLen
}

// FindNext finds the first run in buf and returns it together with the
// bytes following it. The window that ended the run, if any, is part of
// the remainder.
//
// If buf holds no run, FindNext returns nil and buf unchanged. Calling
// FindNext again with the same buf will not make progress, so callers
// must stop at the first nil run.
//
// Run offsets are relative to buf. When resuming from a remainder, add
// len(orig)-len(remainder) to recover offsets in the original buffer.
func (s *Scanner[V]) FindNext(buf []byte) (*Run[V], []byte) {
	run, next := s.FindFrom(buf, 0)
	if run == nil {
		return nil, buf
	}
	return run, buf[next:]
}

// FindFrom is FindNext expressed with indices: it scans buf starting at
// byte offset from and returns the run and the offset at which scanning
// should resume. If no run is found it returns nil and from.
//
// Windows are aligned to from, not to the start of buf. A negative from
// is treated as 0.
func (s *Scanner[V]) FindFrom(buf []byte, from int) (*Run[V], int) {
	from = max(from, 0)
	st, _ := s.find(buf, from)
	if !st.found {
		return nil, from
	}
	return s.materialize(buf, st.start, st.count), st.start + st.count*s.dec.Size
}

// streak is the scanning state machine. While skipping, streaking is false
// and count is zero. Once a window is accepted it records where the streak
// began and how many windows it has covered.
type streak struct {
	streaking bool
	found     bool
	start     int
	count     int
}

type step int

const (
	stepContinue step = iota
	stepTooShort
	stepQualifies
)

// feed advances the state machine by one window at offset pos.
func (st *streak) feed(accepted bool, pos, minLen int) step {
	if accepted {
		if !st.streaking {
			st.streaking = true
			st.start = pos
			st.count = 0
		}
		st.count++
		return stepContinue
	}
	if !st.streaking {
		return stepContinue
	}
	return st.end(minLen)
}

// end terminates the current streak, either because a window was rejected
// or because the buffer ran out.
func (st *streak) end(minLen int) step {
	st.streaking = false
	if st.count >= minLen {
		st.found = true
		return stepQualifies
	}
	st.start, st.count = 0, 0
	return stepTooShort
}

// findStats counts the work done by one call to find.
type findStats struct {
	windows   int
	discarded int
}

// find runs the state machine over buf[from:] until a streak qualifies or
// fewer than Size bytes remain. A streak that is too short is folded back
// into the skipped region and scanning continues with the window that
// ended it, which was already classified as rejected.
func (s *Scanner[V]) find(buf []byte, from int) (streak, findStats) {
	var (
		st    streak
		stats findStats
		size  = s.dec.Size
	)
	for pos := from; pos+size <= len(buf); pos += size {
		stats.windows++
		accepted := s.accepts(s.dec.Decode(buf[pos : pos+size]))
		switch st.feed(accepted, pos, s.minLen) {
		case stepQualifies:
			return st, stats
		case stepTooShort:
			stats.discarded++
		}
	}
	if st.streaking {
		if st.end(s.minLen) == stepTooShort {
			stats.discarded++
		}
	}
	return st, stats
}

func (s *Scanner[V]) materialize(buf []byte, start, count int) *Run[V] {
	size := s.dec.Size
	values := make([]V, count)
	for i := range values {
		off := start + i*size
		values[i] = s.dec.Decode(buf[off : off+size])
	}
	return &Run[V]{Offset: start, Values: values}
}

// FindNextRun finds the first run of at least minLength values in buf.
// It is shorthand for building a Scanner and calling FindNext; invalid
// arguments yield no run.
func FindNextRun[V any](buf []byte, minLength int, dec Decoder[V], accepts Predicate[V]) (*Run[V], []byte) {
	s, err := NewScanner(dec, accepts, MinLength(minLength))
	if err != nil {
		return nil, buf
	}
	return s.FindNext(buf)
}
