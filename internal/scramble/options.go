package scramble

// DefaultMaxAttempts bounds the consecutive rejected draws at one position.
const DefaultMaxAttempts = 1000

// Options configures scramble generation.
type Options struct {
	Seed        int64 // Seed for reproducible scrambles (0 = random)
	MaxAttempts int   // Rejected draws allowed per position (<= 0 means DefaultMaxAttempts)
}

// DefaultOptions returns time-seeded options with the default draw cap.
func DefaultOptions() *Options {
	return &Options{
		Seed:        0,
		MaxAttempts: DefaultMaxAttempts,
	}
}
