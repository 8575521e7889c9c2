package tree

import (
	"go-dsa/pkg/customerrors"

	"github.com/pkg/errors"
)

// Node is a vertex in a general rooted tree. Structural changes all go
// through SetParent: adding or removing a child re-parents that child, and
// the old and new parents update their child lists as a consequence.
type Node[T any] struct {
	Key      T
	parent   *Node[T]
	children []*Node[T]
}

func NewNode[T any](key T) *Node[T] {
	return &Node[T]{Key: key}
}

func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Children returns the node's children in insertion order. The returned
// slice must not be modified.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

func (n *Node[T]) Root() *Node[T] {
	node := n
	for node.parent != nil {
		node = node.parent
	}
	return node
}

// SetParent moves n under p, detaching it from its current parent. A nil p
// makes n a root. Fails with ErrLoop if p is n or one of its descendants.
func (n *Node[T]) SetParent(p *Node[T]) error {
	if p != nil {
		loop := false
		n.WalkBFS(func(d *Node[T]) bool {
			loop = d == p
			return !loop
		})
		if loop {
			return errors.Wrap(customerrors.ErrLoop, "new parent is a descendant of the node")
		}
	}

	if n.parent != nil {
		n.parent.unregister(n)
	}
	n.parent = p
	if p != nil {
		p.children = append(p.children, n)
	}
	return nil
}

func (n *Node[T]) AddChild(child *Node[T]) error {
	if n.hasChild(child) {
		return customerrors.ErrAlreadyChild
	}
	return child.SetParent(n)
}

func (n *Node[T]) RemoveChild(child *Node[T]) error {
	if !n.hasChild(child) {
		return customerrors.ErrNotChild
	}
	return child.SetParent(nil)
}

// WalkDFS visits n and its descendants depth-first, pre-order. Returning
// false from fn stops the walk.
func (n *Node[T]) WalkDFS(fn func(*Node[T]) bool) {
	n.walkDFS(fn)
}

func (n *Node[T]) walkDFS(fn func(*Node[T]) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walkDFS(fn) {
			return false
		}
	}
	return true
}

// WalkBFS visits n and its descendants level by level.
func (n *Node[T]) WalkBFS(fn func(*Node[T]) bool) {
	level := []*Node[T]{n}
	for len(level) > 0 {
		var next []*Node[T]
		for _, node := range level {
			if !fn(node) {
				return
			}
			next = append(next, node.children...)
		}
		level = next
	}
}

func (n *Node[T]) hasChild(child *Node[T]) bool {
	for _, c := range n.children {
		if c == child {
			return true
		}
	}
	return false
}

func (n *Node[T]) unregister(child *Node[T]) {
	for i := len(n.children) - 1; i >= 0; i-- {
		if n.children[i] == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
		}
	}
}
