// Package heap implements binary heaps stored in flat slices: free
// functions that keep a caller-owned slice heap-ordered, and a Heap
// container that binds a slice to a fixed comparator.
package heap

import (
	"fmt"

	"go-dsa/pkg/customerrors"
	"go-dsa/pkg/tree"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Heap is a binary heap ordered by a comparator fixed at construction. Not
// safe to use concurrently.
type Heap[T any] struct {
	data []T
	cmp  Comparator[T]
}

// New creates a heap ordered by cmp holding a copy of values.
func New[T any](cmp Comparator[T], values ...T) *Heap[T] {
	data := make([]T, len(values))
	copy(data, values)
	Heapify(data, cmp)
	return &Heap[T]{data: data, cmp: cmp}
}

func NewMin[T constraints.Ordered](values ...T) *Heap[T] {
	return New(Natural[T](MinHeap), values...)
}

func NewMax[T constraints.Ordered](values ...T) *Heap[T] {
	return New(Natural[T](MaxHeap), values...)
}

// NewByKey creates a heap whose invariant holds on key(element) rather than
// on the elements themselves.
func NewByKey[T any, K constraints.Ordered](mode Mode, key func(T) K, values ...T) *Heap[T] {
	return New(ByKey(mode, key), values...)
}

func (h *Heap[T]) Push(item T) {
	Push(&h.data, item, h.cmp)
}

func (h *Heap[T]) Pop() (T, error) {
	return Pop(&h.data, h.cmp)
}

// Peek returns the best element without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, errors.Wrap(customerrors.ErrEmpty, "peek at empty heap")
	}
	return h.data[0], nil
}

func (h *Heap[T]) Len() int {
	return len(h.data)
}

func (h *Heap[T]) Height() int {
	return Height(len(h.data))
}

// Valid recomputes the heap invariant over every parent/child pair.
func (h *Heap[T]) Valid() bool {
	return Satisfies(h.data, h.cmp)
}

// Values returns a copy of the elements in heap (array) order.
func (h *Heap[T]) Values() []T {
	cp := make([]T, len(h.data))
	copy(cp, h.data)
	return cp
}

func (h *Heap[T]) String() string {
	return fmt.Sprintf("Heap%v", h.data)
}

// Render draws the heap as a tree using the renderer registered under
// style.
func (h *Heap[T]) Render(style string) (string, error) {
	r, err := tree.Style(style)
	if err != nil {
		return "", err
	}
	return Render(h.data, r), nil
}
