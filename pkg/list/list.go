// Package list implements a doubly linked list over a sentinel element.
//
// To iterate over a list (where l is a *List):
//
//	for e := l.Front(); e != nil; e = e.Next() {
//		// do something with e.Value
//	}
package list

import (
	"go-dsa/pkg/customerrors"

	"github.com/pkg/errors"
)

// Element is an element of a linked list.
type Element[T comparable] struct {
	// Internally the list is a ring: &l.root is both the next element of
	// the last element and the previous element of the first one.
	next, prev *Element[T]
	list       *List[T]

	Value T
}

// Next returns the next list element or nil.
func (e *Element[T]) Next() *Element[T] {
	if p := e.next; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// Prev returns the previous list element or nil.
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// List is a doubly linked list. The element count is maintained on every
// attach and detach, so Len is O(1).
type List[T comparable] struct {
	root    Element[T] // sentinel, only &root, root.prev and root.next are used
	len     int
	maxSize int
}

// New creates a list holding values. A nil opts means unbounded.
func New[T comparable](opts *Options, values ...T) (*List[T], error) {
	if opts == nil {
		opts = &Options{}
	}

	l := &List[T]{maxSize: opts.MaxSize}
	l.root.next = &l.root
	l.root.prev = &l.root
	if err := l.Extend(values...); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List[T]) Len() int { return l.len }

func (l *List[T]) Empty() bool { return l.len == 0 }

func (l *List[T]) Full() bool {
	return l.maxSize > 0 && l.len >= l.maxSize
}

// Front returns the first element of l or nil if the list is empty.
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of l or nil if the list is empty.
func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// Append adds v at the back of l.
func (l *List[T]) Append(v T) error {
	return l.attach(v, l.root.prev)
}

// AppendLeft adds v at the front of l.
func (l *List[T]) AppendLeft(v T) error {
	return l.attach(v, &l.root)
}

func (l *List[T]) Extend(values ...T) error {
	for _, v := range values {
		if err := l.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// ExtendLeft adds values at the front one at a time, so they end up in
// reverse order.
func (l *List[T]) ExtendLeft(values ...T) error {
	for _, v := range values {
		if err := l.AppendLeft(v); err != nil {
			return err
		}
	}
	return nil
}

// Insert places v so that it ends up at position index. Indices past the
// end append.
func (l *List[T]) Insert(v T, index int) error {
	at := &l.root
	for e, i := l.Front(), 0; e != nil && i < index; e, i = e.Next(), i+1 {
		at = e
	}
	return l.attach(v, at)
}

// Pop removes and returns the last element.
func (l *List[T]) Pop() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, errors.Wrap(customerrors.ErrEmpty, "pop from empty list")
	}
	return l.detach(l.root.prev), nil
}

// PopLeft removes and returns the first element.
func (l *List[T]) PopLeft() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, errors.Wrap(customerrors.ErrEmpty, "pop from empty list")
	}
	return l.detach(l.root.next), nil
}

// Search returns the first element holding v.
func (l *List[T]) Search(v T) (*Element[T], error) {
	for e := l.Front(); e != nil; e = e.Next() {
		if e.Value == v {
			return e, nil
		}
	}
	return nil, errors.Wrapf(customerrors.ErrNotFound, "list does not contain %v", v)
}

// Remove deletes the first occurrence of v.
func (l *List[T]) Remove(v T) error {
	e, err := l.Search(v)
	if err != nil {
		return err
	}
	l.detach(e)
	return nil
}

// RemoveElement deletes e if it belongs to l and returns its value.
func (l *List[T]) RemoveElement(e *Element[T]) (T, error) {
	if e.list != l {
		var zero T
		return zero, errors.Wrap(customerrors.ErrNotFound, "element does not belong to the list")
	}
	return l.detach(e), nil
}

func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.len)
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value)
	}
	return out
}

// attach inserts a new element holding v after at.
func (l *List[T]) attach(v T, at *Element[T]) error {
	if l.Full() {
		return errors.Wrapf(customerrors.ErrFull, "list holds %d elements", l.len)
	}

	e := &Element[T]{Value: v, list: l}
	e.prev = at
	e.next = at.next
	at.next.prev = e
	at.next = e
	l.len++
	return nil
}

func (l *List[T]) detach(e *Element[T]) T {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil // avoid memory leaks
	e.prev = nil
	e.list = nil
	l.len--
	return e.Value
}
