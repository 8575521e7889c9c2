package heap

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type Mode uint8

const (
	MinHeap Mode = iota
	MaxHeap
)

func (m Mode) String() string {
	if m == MaxHeap {
		return "max"
	}
	return "min"
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "min":
		return MinHeap, nil
	case "max":
		return MaxHeap, nil
	}
	return MinHeap, errors.Errorf("unknown heap mode '%s'", s)
}

// Comparator reports whether a is at least as good as b, i.e. whether a may
// sit above b in the heap. It must be a total preorder: deterministic and
// free of side effects.
type Comparator[T any] func(a, b T) bool

// Orderable is implemented by keys that carry their own total order, such
// as composite keys compared field by field. Compare returns a negative
// number, zero or a positive number when the receiver sorts before, equal
// to or after other.
type Orderable[K any] interface {
	Compare(other K) int
}

// Natural orders elements by their own value: <= for MinHeap, >= for
// MaxHeap.
func Natural[T constraints.Ordered](mode Mode) Comparator[T] {
	if mode == MaxHeap {
		return func(a, b T) bool { return a >= b }
	}
	return func(a, b T) bool { return a <= b }
}

// ByKey orders elements by key(element). key is called on both sides of
// every comparison and must be pure.
func ByKey[T any, K constraints.Ordered](mode Mode, key func(T) K) Comparator[T] {
	if mode == MaxHeap {
		return func(a, b T) bool { return key(a) >= key(b) }
	}
	return func(a, b T) bool { return key(a) <= key(b) }
}

func ByOrder[T any, K Orderable[K]](mode Mode, key func(T) K) Comparator[T] {
	if mode == MaxHeap {
		return func(a, b T) bool { return key(a).Compare(key(b)) >= 0 }
	}
	return func(a, b T) bool { return key(a).Compare(key(b)) <= 0 }
}
