package composite

// Default tunables.
const (
	// DefaultMinIntronLen is the shortest gap recorded as a splice site.
	// Shorter gaps are treated as alignment noise.
	DefaultMinIntronLen = 50

	// DefaultMaxWobble is the tolerance in bases around a splice site
	// within which a join does not count as crossing it.
	DefaultMaxWobble = 4
)

// Option configures a Compositor during creation.
//
// Example:
//
//	c := composite.New(composite.WithMaxWobble(2))
type Option func(*options)

type options struct {
	minIntronLen int
	maxWobble    int
}

func defaultOptions() options {
	return options{
		minIntronLen: DefaultMinIntronLen,
		maxWobble:    DefaultMaxWobble,
	}
}

// WithMinIntronLen sets the shortest gap recorded as a splice site.
// Values below 1 are ignored.
func WithMinIntronLen(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.minIntronLen = n
		}
	}
}

// WithMaxWobble sets the splice site tolerance used by join.
// Negative values are ignored.
func WithMaxWobble(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxWobble = n
		}
	}
}
