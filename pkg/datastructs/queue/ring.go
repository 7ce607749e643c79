package queue

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Queue[int] = (*Ring[int])(nil)

// Ring is a fixed-capacity FIFO queue backed by a circular slice.
// A full Ring rejects Enqueue with ErrQueueFull; it never overwrites the oldest item.
// It is NOT thread-safe.
type Ring[T any] struct {
	buf      []T // backing storage, owned by this Ring only
	capacity int // len(buf), fixed unless CopyFrom grows it
	front    int // slot of the oldest item, noIndex when empty
	back     int // slot of the newest item, noIndex when empty
	size     int // number of live items
	log      *zap.Logger
}

// New creates an empty Ring. Without WithCapacity it holds DefaultCapacity items.
func New[T any](opts ...Option) (*Ring[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", o.capacity)
	}

	return &Ring[T]{
		buf:      make([]T, o.capacity),
		capacity: o.capacity,
		front:    noIndex,
		back:     noIndex,
		log:      o.log,
	}, nil
}

// MustNew is like New but panics if the options are invalid.
func MustNew[T any](opts ...Option) *Ring[T] {
	r, err := New[T](opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Enqueue appends v at the back of the ring.
func (r *Ring[T]) Enqueue(v T) error {
	if r.size == r.capacity {
		r.reject("enqueue", ErrQueueFull)
		return ErrQueueFull
	}

	if r.size == 0 {
		r.front, r.back = 0, 0
	} else {
		r.back = r.next(r.back)
	}
	r.buf[r.back] = v
	r.size++
	return nil
}

// Dequeue removes the item at the front of the ring.
func (r *Ring[T]) Dequeue() error {
	if r.size == 0 {
		r.reject("dequeue", ErrQueueEmpty)
		return ErrQueueEmpty
	}

	var zero T
	r.buf[r.front] = zero // release references held by the vacated slot
	r.front = r.next(r.front)
	r.size--

	if r.size == 0 {
		r.front, r.back = noIndex, noIndex
	}
	return nil
}

// Pop removes and returns the item at the front of the ring.
func (r *Ring[T]) Pop() (T, error) {
	if r.size == 0 {
		var zero T
		r.reject("pop", ErrQueueEmpty)
		return zero, ErrQueueEmpty
	}

	v := r.buf[r.front]
	_ = r.Dequeue()
	return v, nil
}

// Front returns the oldest item.
func (r *Ring[T]) Front() (T, error) {
	if r.size == 0 {
		var zero T
		r.reject("front", ErrQueueEmpty)
		return zero, ErrQueueEmpty
	}
	return r.buf[r.front], nil
}

// Back returns the newest item.
func (r *Ring[T]) Back() (T, error) {
	if r.size == 0 {
		var zero T
		r.reject("back", ErrQueueEmpty)
		return zero, ErrQueueEmpty
	}
	return r.buf[r.back], nil
}

// Size returns the number of queued items.
func (r *Ring[T]) Size() int {
	return r.size
}

// Empty reports whether the ring holds no items.
func (r *Ring[T]) Empty() bool {
	return r.size == 0
}

// Full reports whether the next Enqueue would fail.
func (r *Ring[T]) Full() bool {
	return r.size == r.capacity
}

// Capacity returns the number of slots.
func (r *Ring[T]) Capacity() int {
	return r.capacity
}

// Reset drops all items. The capacity is unchanged.
func (r *Ring[T]) Reset() {
	clear(r.buf)
	r.front, r.back = noIndex, noIndex
	r.size = 0
}

// Clone returns an independent copy with its own storage of the same capacity.
// Items are copied by value.
func (r *Ring[T]) Clone() *Ring[T] {
	c := &Ring[T]{
		buf:      make([]T, r.capacity),
		capacity: r.capacity,
		front:    r.front,
		back:     r.back,
		size:     r.size,
		log:      r.log,
	}
	copy(c.buf, r.buf)
	return c
}

// CopyFrom replaces the contents of r with those of src.
// If r is smaller than src its storage is replaced by a block of src's capacity first;
// r never shrinks and never shares storage with src.
func (r *Ring[T]) CopyFrom(src *Ring[T]) {
	if r == src {
		return
	}

	// src's cursors only make sense modulo its own capacity, so a larger
	// destination gets the items laid out from slot 0 instead.
	if r.capacity > src.capacity {
		clear(r.buf)
		head, tail := src.segments()
		n := copy(r.buf, head)
		copy(r.buf[n:], tail)

		r.size = src.size
		if r.size == 0 {
			r.front, r.back = noIndex, noIndex
		} else {
			r.front, r.back = 0, r.size-1
		}
		return
	}

	if r.capacity < src.capacity {
		r.buf = make([]T, src.capacity)
		r.capacity = src.capacity
	}
	copy(r.buf, src.buf)
	r.front, r.back, r.size = src.front, src.back, src.size
}

// String renders the items front to back, e.g. "[5 9 8]".
func (r *Ring[T]) String() string {
	return fmt.Sprint(r.values())
}

// MarshalJSON encodes the items as a JSON array, front first.
func (r *Ring[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.values())
}

// segments returns the live items in order as two views of buf.
// tail is nil unless the items wrap past the end of buf.
func (r *Ring[T]) segments() (head, tail []T) {
	if r.size == 0 {
		return nil, nil
	}
	if r.front <= r.back {
		return r.buf[r.front : r.back+1], nil
	}
	return r.buf[r.front:], r.buf[:r.back+1]
}

// values returns a copy of the live items, front first.
func (r *Ring[T]) values() []T {
	head, tail := r.segments()

	out := make([]T, 0, r.size)
	out = append(out, head...)
	out = append(out, tail...)
	return out
}

// next returns the slot after i, wrapping to 0.
func (r *Ring[T]) next(i int) int {
	i++
	if i == r.capacity {
		i = 0
	}
	return i
}

func (r *Ring[T]) reject(op string, err error) {
	if r.log == nil {
		return
	}
	if ce := r.log.Check(zapcore.DebugLevel, "queue operation rejected"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Error(err),
			zap.Int("size", r.size),
			zap.Int("capacity", r.capacity),
		)
	}
}
