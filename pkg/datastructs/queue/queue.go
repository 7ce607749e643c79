package queue

// Queue is a generic interface for bounded FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item to the back of the queue.
	// Returns ErrQueueFull if the queue already holds Capacity items.
	Enqueue(item T) error

	// Dequeue removes the item at the front of the queue.
	// Returns ErrQueueEmpty if there is nothing to remove.
	Dequeue() error

	// Front returns the oldest item without removing it.
	Front() (T, error)

	// Back returns the newest item without removing it.
	Back() (T, error)

	// Size returns the number of items currently queued.
	Size() int

	// Empty reports whether Size is zero.
	Empty() bool

	// Capacity returns the maximum number of items the queue can hold.
	Capacity() int
}
