package heap

import (
	"go-dsa/pkg/customerrors"
	"go-dsa/util/logger"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// RestoreDown sifts a[i] towards the leaves until neither of its children
// is strictly better than it. Only indices below bound take part; a
// negative bound means len(a). Everything under i must already be a heap.
func RestoreDown[T any](a []T, i, bound int, cmp Comparator[T]) {
	if bound < 0 || bound > len(a) {
		bound = len(a)
	}

	for {
		left := Left(i)
		if left >= bound || left < 0 { // left < 0 after int overflow
			return
		}

		// the holder wins ties, and left wins ties against right
		best := i
		if !cmp(a[best], a[left]) {
			best = left
		}
		if right := left + 1; right < bound && !cmp(a[best], a[right]) {
			best = right
		}
		if best == i {
			return
		}

		a[i], a[best] = a[best], a[i]
		i = best
	}
}

// RestoreUp sifts a[i] towards the root while its parent is not at least
// as good as it. Every ancestor of i must already satisfy the invariant.
func RestoreUp[T any](a []T, i int, cmp Comparator[T]) {
	for i > 0 {
		p := Parent(i)
		if cmp(a[p], a[i]) {
			return
		}
		a[i], a[p] = a[p], a[i]
		i = p
	}
}

// Heapify rearranges a into a heap in linear time.
func Heapify[T any](a []T, cmp Comparator[T]) {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		RestoreDown(a, i, n, cmp)
	}
}

// Push appends item to the heap in *h.
// The complexity is O(log n) where n = len(*h).
func Push[T any](h *[]T, item T, cmp Comparator[T]) {
	*h = append(*h, item)
	RestoreUp(*h, len(*h)-1, cmp)
}

// Pop removes and returns the best element of the heap in *h. It fails
// with ErrEmpty, leaving *h untouched, when the heap is empty.
// The complexity is O(log n) where n = len(*h).
func Pop[T any](h *[]T, cmp Comparator[T]) (T, error) {
	var zero T
	a := *h
	n := len(a)
	if n == 0 {
		return zero, errors.Wrap(customerrors.ErrEmpty, "pop from empty heap")
	}

	last := a[n-1]
	a[n-1] = zero
	*h = a[:n-1]
	if n == 1 {
		return last, nil
	}

	root := a[0]
	a[0] = last
	RestoreDown(*h, 0, n-1, cmp)
	return root, nil
}

// Sort sorts a in ascending order with heapsort. It is in place and not
// stable.
func Sort[T constraints.Ordered](a []T) {
	heapsort(a, Natural[T](MaxHeap))
}

// SortBy sorts a in ascending order of key(element).
func SortBy[T any, K constraints.Ordered](a []T, key func(T) K) {
	heapsort(a, ByKey(MaxHeap, key))
}

func heapsort[T any](a []T, cmp Comparator[T]) {
	Heapify(a, cmp)
	for end := len(a) - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		RestoreDown(a, 0, end, cmp)
	}
}

// Satisfies reports whether every parent in a is at least as good as each
// of its children. It is O(n) and meant for tests and debugging.
func Satisfies[T any](a []T, cmp Comparator[T]) bool {
	if len(a) == 0 {
		return true
	}

	ok := true
	_ = ParentChildPairs(len(a), 0, func(p, c int) bool {
		if !cmp(a[p], a[c]) {
			logger.L.WithFields(logrus.Fields{
				"parent": p,
				"child":  c,
			}).Debug("heap invariant violated")
			ok = false
		}
		return ok
	})
	return ok
}
