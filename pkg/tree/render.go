package tree

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go-dsa/pkg/customerrors"

	"github.com/pkg/errors"
)

// Renderer draws a tree as indented text, one node per line.
type Renderer struct {
	// Bend connects the last child of a node.
	Bend string

	// Split connects every child but the last.
	Split string

	// Vert continues a parent's branch past children that are not last.
	Vert string
}

var styles = map[string]*Renderer{
	"default": {Bend: "└── ", Split: "├── ", Vert: "│"},
	"ascii":   {Bend: "'--- ", Split: "+--- ", Vert: "|"},
}

// Register makes r available under label, replacing any previous renderer
// with the same label.
func Register(label string, r *Renderer) {
	styles[label] = r
}

func Style(label string) (*Renderer, error) {
	r, ok := styles[label]
	if !ok {
		return nil, errors.Wrapf(customerrors.ErrUnknownStyle, "no style labelled '%s'", label)
	}
	return r, nil
}

// Render draws the tree rooted at root. label formats a node's key; a nil
// label uses %v.
func Render[T any](r *Renderer, root *Node[T], label func(T) string) string {
	if label == nil {
		label = func(key T) string { return fmt.Sprintf("%v", key) }
	}

	lines := []string{}
	renderLines(r, root, label, "", true, true, &lines)
	return strings.Join(lines, "\n")
}

func renderLines[T any](
	r *Renderer,
	n *Node[T],
	label func(T) string,
	prefix string,
	last, root bool,
	lines *[]string,
) {
	connector := r.Split
	if last {
		connector = r.Bend
	}
	if root {
		connector = ""
	}
	*lines = append(*lines, prefix+connector+label(n.Key))

	width := utf8.RuneCountInString(connector)
	childPrefix := prefix + strings.Repeat(" ", width)
	if !last {
		childPrefix = prefix + r.Vert + strings.Repeat(" ", width-utf8.RuneCountInString(r.Vert))
	}

	for i, c := range n.children {
		renderLines(r, c, label, childPrefix, i == len(n.children)-1, false, lines)
	}
}
