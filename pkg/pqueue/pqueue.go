// Package pqueue implements a priority queue on top of the heap package.
// Lower priority values are dequeued first.
package pqueue

import (
	"go-dsa/pkg/customerrors"
	"go-dsa/pkg/heap"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// rank orders entries by priority, then by insertion sequence.
type rank[P constraints.Ordered] struct {
	priority P
	seq      uint64
}

func (r rank[P]) Compare(other rank[P]) int {
	switch {
	case r.priority < other.priority:
		return -1
	case r.priority > other.priority:
		return 1
	case r.seq < other.seq:
		return -1
	case r.seq > other.seq:
		return 1
	}
	return 0
}

type entry[T any, P constraints.Ordered] struct {
	rank rank[P]
	item T
}

func extractRank[T any, P constraints.Ordered](e entry[T, P]) rank[P] {
	return e.rank
}

// PriorityQueue holds arbitrary payloads; only their priorities are ever
// compared. Not safe to use concurrently.
type PriorityQueue[T any, P constraints.Ordered] struct {
	entries []entry[T, P]
	cmp     heap.Comparator[entry[T, P]]
	stable  bool
	counter uint64
	maxSize int
}

// New creates an empty queue. A nil opts uses DefaultOptions.
func New[T any, P constraints.Ordered](opts *Options) *PriorityQueue[T, P] {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &PriorityQueue[T, P]{
		cmp:     heap.ByOrder(heap.MinHeap, extractRank[T, P]),
		stable:  opts.Stable,
		maxSize: opts.MaxSize,
	}
}

func (pq *PriorityQueue[T, P]) Put(item T, priority P) error {
	if pq.Full() {
		return errors.Wrapf(customerrors.ErrFull, "priority queue holds %d items", len(pq.entries))
	}

	r := rank[P]{priority: priority}
	if pq.stable {
		r.seq = pq.counter
		pq.counter++
	}
	heap.Push(&pq.entries, entry[T, P]{rank: r, item: item}, pq.cmp)
	return nil
}

// Get removes and returns the item with the lowest priority.
func (pq *PriorityQueue[T, P]) Get() (T, error) {
	e, err := heap.Pop(&pq.entries, pq.cmp)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "get from priority queue")
	}
	return e.item, nil
}

func (pq *PriorityQueue[T, P]) Size() int {
	return len(pq.entries)
}

func (pq *PriorityQueue[T, P]) Empty() bool {
	return len(pq.entries) == 0
}

func (pq *PriorityQueue[T, P]) Full() bool {
	return pq.maxSize > 0 && len(pq.entries) >= pq.maxSize
}

// ToSlice returns the queued items in heap order, which is not the order
// Get would return them in.
func (pq *PriorityQueue[T, P]) ToSlice() []T {
	out := make([]T, 0, len(pq.entries))
	for _, e := range pq.entries {
		out = append(out, e.item)
	}
	return out
}
