package queue

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-ringqueue/pkg/settings"
)

// NewFromConfig validates cfg and builds a Ring from it.
// A zero Capacity selects DefaultCapacity.
func NewFromConfig[T any](cfg settings.Queue, log *zap.Logger) (*Ring[T], error) {
	if err := settings.Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "queue settings")
	}

	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	return New[T](WithCapacity(capacity), WithLogger(log))
}
