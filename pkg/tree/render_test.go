package tree

import (
	"strings"
	"testing"

	"go-dsa/pkg/customerrors"

	"github.com/stretchr/testify/require"
)

func TestRenderDefault(t *testing.T) {
	a, _, c, _ := sample(t)
	require.NoError(t, c.AddChild(NewNode("e")))

	r, err := Style("default")
	require.NoError(t, err)

	expected := strings.Join([]string{
		"a",
		"├── b",
		"│   └── d",
		"└── c",
		"    └── e",
	}, "\n")
	require.Equal(t, expected, Render(r, a, nil))
}

func TestRenderASCII(t *testing.T) {
	a, _, _, _ := sample(t)

	r, err := Style("ascii")
	require.NoError(t, err)

	expected := strings.Join([]string{
		"<a>",
		"+--- <b>",
		"|    '--- <d>",
		"'--- <c>",
	}, "\n")
	require.Equal(t, expected, Render(r, a, func(k string) string { return "<" + k + ">" }))
}

func TestRenderSingleNode(t *testing.T) {
	r, err := Style("default")
	require.NoError(t, err)
	require.Equal(t, "42", Render(r, NewNode(42), nil))
}

func TestStyleRegistry(t *testing.T) {
	_, err := Style("fancy")
	require.ErrorIs(t, err, customerrors.ErrUnknownStyle)

	Register("fancy", &Renderer{Bend: "`- ", Split: "|- ", Vert: "|"})
	r, err := Style("fancy")
	require.NoError(t, err)

	root := NewNode(1)
	require.NoError(t, root.AddChild(NewNode(2)))
	require.NoError(t, root.AddChild(NewNode(3)))
	require.Equal(t, "1\n|- 2\n`- 3", Render(r, root, nil))
}
