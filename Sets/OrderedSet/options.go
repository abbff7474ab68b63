package OrderedSet

type config struct {
	limit, hint uint32
}

// Option configures a set when it's created.
type Option func(*config)

// WithLimit caps the number of values the set holds. Once it's reached, inserting a new value
// fails with ErrFull. 0, the default, means no cap other than 1<<32-1 values.
func WithLimit(n uint32) Option {
	return func(c *config) {
		c.limit = n
	}
}

// WithHint preallocates room for n values.
func WithHint(n uint32) Option {
	return func(c *config) {
		c.hint = n
	}
}

func makeConfig(opts []Option) (c config) {
	for _, o := range opts {
		o(&c)
	}
	if c.limit != 0 && c.hint > c.limit {
		c.hint = c.limit
	}
	return
}
