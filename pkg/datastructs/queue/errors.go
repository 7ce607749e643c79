package queue

import "github.com/pkg/errors"

var (
	// ErrQueueEmpty is returned by Dequeue, Pop, Front and Back on an empty queue.
	ErrQueueEmpty = errors.New("queue is empty")

	// ErrQueueFull is returned by Enqueue when the queue is at capacity.
	ErrQueueFull = errors.New("queue is full")

	// ErrInvalidCapacity is returned when a non-positive capacity is requested.
	ErrInvalidCapacity = errors.New("queue capacity must be positive")
)
