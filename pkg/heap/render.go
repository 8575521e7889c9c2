package heap

import (
	"fmt"

	"go-dsa/pkg/tree"
)

// Render draws the implicit tree of a with r, one element per line.
func Render[T any](a []T, r *tree.Renderer) string {
	if len(a) == 0 {
		return ""
	}

	nodes := make([]*tree.Node[int], len(a))
	for i := range a {
		nodes[i] = tree.NewNode(i)
		if i > 0 {
			// fresh leaf under an existing node, cannot loop
			_ = nodes[i].SetParent(nodes[Parent(i)])
		}
	}

	return tree.Render(r, nodes[0], func(i int) string {
		return fmt.Sprintf("%v", a[i])
	})
}
