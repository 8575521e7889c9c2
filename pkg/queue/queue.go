// Package queue implements a FIFO queue on a circular buffer.
package queue

import (
	"go-dsa/pkg/customerrors"
	"go-dsa/util/helpers"

	"github.com/pkg/errors"
)

// Queue is a FIFO queue. head indexes the oldest element and tail the next
// free slot; one slot always stays free so that head == tail means empty.
type Queue[T any] struct {
	arr        []T
	head, tail int
	maxSize    int
}

// New creates an empty queue. A nil opts means unbounded.
func New[T any](opts *Options) *Queue[T] {
	if opts == nil {
		opts = &Options{}
	}

	size := defaultArrSize
	if opts.MaxSize > 0 {
		size = opts.MaxSize + 1
	}
	return &Queue[T]{
		arr:     make([]T, size),
		maxSize: opts.MaxSize,
	}
}

func (q *Queue[T]) Size() int {
	return (q.tail - q.head + len(q.arr)) % len(q.arr)
}

func (q *Queue[T]) Empty() bool {
	return q.head == q.tail
}

func (q *Queue[T]) Full() bool {
	return q.maxSize > 0 && q.Size() >= q.maxSize
}

func (q *Queue[T]) Enqueue(v T) error {
	if q.Full() {
		return errors.Wrapf(customerrors.ErrFull, "queue holds %d elements", q.Size())
	}
	if q.Size() == len(q.arr)-1 {
		q.grow()
	}

	q.arr[q.tail] = v
	q.tail = (q.tail + 1) % len(q.arr)
	return nil
}

func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.Empty() {
		return zero, errors.Wrap(customerrors.ErrEmpty, "dequeue from empty queue")
	}

	v := q.arr[q.head]
	q.arr[q.head] = zero
	q.head = (q.head + 1) % len(q.arr)
	return v, nil
}

// Peek returns the oldest element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.Empty() {
		var zero T
		return zero, errors.Wrap(customerrors.ErrEmpty, "peek at empty queue")
	}
	return q.arr[q.head], nil
}

// ToSlice returns the elements from head to tail.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, 0, q.Size())
	for i := q.head; i != q.tail; i = (i + 1) % len(q.arr) {
		out = append(out, q.arr[i])
	}
	return out
}

func (q *Queue[T]) grow() {
	vals := q.ToSlice()
	q.arr = make([]T, helpers.Max(2*len(q.arr), defaultArrSize))
	copy(q.arr, vals)
	q.head = 0
	q.tail = len(vals)
}
