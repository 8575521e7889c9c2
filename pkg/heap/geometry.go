package heap

import (
	"math/bits"

	"go-dsa/pkg/customerrors"

	"github.com/pkg/errors"
)

// A heap of n elements is an implicit binary tree over indices [0, n): the
// children of i live at 2i+1 and 2i+2 and no node objects are stored.

func Left(i int) int   { return 2*i + 1 }
func Right(i int) int  { return 2*i + 2 }
func Parent(i int) int { return (i - 1) / 2 }

// Height returns the number of levels of an implicit tree with n nodes.
func Height(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}

// ParentChildPairs calls fn for every (parent, child) index pair below
// start in a tree of the given size. Each pair is followed by the pairs of
// that child's own subtree, left before right. Returning false from fn
// stops the walk.
func ParentChildPairs(size, start int, fn func(parent, child int) bool) error {
	if start < 0 || start >= size {
		return errors.Wrapf(customerrors.ErrInvalidIndex, "start index %d not in [0, %d)", start, size)
	}
	walkPairs(size, start, fn)
	return nil
}

func walkPairs(size, i int, fn func(parent, child int) bool) bool {
	for _, c := range [2]int{Left(i), Right(i)} {
		if c >= size {
			break
		}
		if !fn(i, c) || !walkPairs(size, c, fn) {
			return false
		}
	}
	return true
}
