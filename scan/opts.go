package scan

type scanOpts struct {
	minLength int
}

// Option configures a Scanner.
type Option func(*scanOpts)

// MinLength sets the minimum number of values a run must hold to be
// reported. Zero and one are equivalent: every run has at least one value.
func MinLength(n int) Option {
	return func(o *scanOpts) {
		o.minLength = n
	}
}
