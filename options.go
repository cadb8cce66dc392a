package overlap

import "go.uber.org/zap"

// DefaultMaxCells bounds the character comparisons of a single search.
// The first rectangle alone costs len(a)*len(b) cells, so with this default
// two texts of more than about 8000 characters each exceed the budget before
// any match is found and yield an empty result with ErrResourceExceeded.
// Raise it with WithMaxCells, or pass 0, for longer texts.
const DefaultMaxCells = 1 << 26

// options holds configuration for the match search.
type options struct {
	maxCells      int
	maxRectangles int
	maxPending    int
	observer      func(Event)
	logger        *zap.Logger
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() *options {
	return &options{
		maxCells:      DefaultMaxCells,
		maxRectangles: 0, // unlimited
		maxPending:    0, // unlimited
		logger:        zap.NewNop(),
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

// Option configures the match search.
type Option func(*options)

// WithMaxCells limits the total number of character pairs compared across
// all rectangles. 0 means unlimited.
// Default: DefaultMaxCells.
func WithMaxCells(n int) Option {
	return func(o *options) {
		o.maxCells = n
	}
}

// WithMaxRectangles limits how many rectangles are examined.
// 0 means unlimited.
// Default: 0.
func WithMaxRectangles(n int) Option {
	return func(o *options) {
		o.maxRectangles = n
	}
}

// WithMaxPending limits how many rectangles may wait on the work stack at
// once. 0 means unlimited.
// Default: 0.
func WithMaxPending(n int) Option {
	return func(o *options) {
		o.maxPending = n
	}
}

// WithObserver registers fn to be called once for every examined rectangle.
func WithObserver(fn func(Event)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// WithLogger logs each examined rectangle at debug level and a summary of
// every search at info level.
// Default: a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
