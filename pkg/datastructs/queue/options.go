package queue

import "go.uber.org/zap"

type options struct {
	capacity int
	log      *zap.Logger
}

func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
		log:      zap.NewNop(),
	}
}

// Option configures a Ring at construction time.
type Option func(*options)

// WithCapacity sets the fixed number of slots. It must be positive.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets the logger used for rejected operations. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
