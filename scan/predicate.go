package scan

import "cmp"

// Predicate reports whether a decoded value belongs in a run. A predicate
// must be free of side effects: the scanner may test the same window more
// than once.
type Predicate[V any] func(V) bool

// Between accepts values v with min <= v <= max. A nil bound leaves that
// side unconstrained. NaN fails any comparison, so it is only accepted when
// both bounds are nil.
func Between[V cmp.Ordered](min, max *V) Predicate[V] {
	var lo, hi V
	hasLo, hasHi := min != nil, max != nil
	if hasLo {
		lo = *min
	}
	if hasHi {
		hi = *max
	}
	return func(v V) bool {
		return (!hasLo || v >= lo) && (!hasHi || v <= hi)
	}
}

// All accepts every value.
func All[V any]() Predicate[V] {
	return func(V) bool { return true }
}

// And accepts values accepted by every predicate in ps. Nil entries are
// skipped.
func And[V any](ps ...Predicate[V]) Predicate[V] {
	live := make([]Predicate[V], 0, len(ps))
	for _, p := range ps {
		if p != nil {
			live = append(live, p)
		}
	}
	switch len(live) {
	case 0:
		return All[V]()
	case 1:
		return live[0]
	}
	return func(v V) bool {
		for _, p := range live {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Not accepts the values p rejects.
func Not[V any](p Predicate[V]) Predicate[V] {
	return func(v V) bool { return !p(v) }
}
