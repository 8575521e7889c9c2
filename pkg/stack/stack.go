package stack

import (
	"go-dsa/pkg/customerrors"

	"github.com/pkg/errors"
)

type stack[T interface{}] struct {
	s       []T
	maxSize int
}

type Stack[T interface{}] interface {
	Push(v T) error
	Pop() (T, error)
	Top() (T, error)
	Size() int
	Empty() bool
	Full() bool
	ToSlice() []T
}

// New creates an empty stack. A nil opts means unbounded.
func New[T interface{}](opts *Options) Stack[T] {
	if opts == nil {
		opts = &Options{}
	}

	initialSize := defaultArrSize
	if opts.MaxSize > 0 {
		initialSize = opts.MaxSize
	}
	return &stack[T]{make([]T, 0, initialSize), opts.MaxSize}
}

func (s *stack[T]) Push(value T) error {
	if s.Full() {
		return errors.Wrapf(customerrors.ErrFull, "stack holds %d elements", len(s.s))
	}

	s.s = append(s.s, value)
	return nil
}

func (s *stack[T]) Pop() (value T, err error) {
	l := len(s.s)
	if l == 0 {
		err = errors.Wrap(customerrors.ErrEmpty, "pop from empty stack")
		return
	}

	var zero T
	value = s.s[l-1]
	s.s[l-1] = zero
	s.s = s.s[:l-1]
	return value, nil
}

func (s *stack[T]) Top() (value T, err error) {
	l := len(s.s)
	if l == 0 {
		err = errors.Wrap(customerrors.ErrEmpty, "top of empty stack")
		return
	}

	return s.s[l-1], nil
}

func (s *stack[T]) Size() int {
	return len(s.s)
}

func (s *stack[T]) Empty() bool {
	return len(s.s) == 0
}

func (s *stack[T]) Full() bool {
	return s.maxSize > 0 && len(s.s) >= s.maxSize
}

// ToSlice returns the elements from bottom to top.
func (s *stack[T]) ToSlice() []T {
	cp := make([]T, len(s.s))
	copy(cp, s.s)
	return cp
}
