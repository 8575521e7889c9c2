package heap

import (
	"math/rand"
	"strings"
	"testing"

	"go-dsa/pkg/customerrors"

	"github.com/stretchr/testify/require"
)

func drain[T any](t *testing.T, h *Heap[T]) []T {
	t.Helper()
	out := []T{}
	for h.Len() > 0 {
		v, err := h.Pop()
		require.NoError(t, err)
		require.True(t, h.Valid())
		out = append(out, v)
	}
	return out
}

func TestHeapEmptyPop(t *testing.T) {
	h := NewMin[int]()

	_, err := h.Pop()
	require.ErrorIs(t, err, customerrors.ErrEmpty)
	require.Equal(t, 0, h.Len())

	_, err = h.Peek()
	require.ErrorIs(t, err, customerrors.ErrEmpty)
	require.True(t, h.Valid())
}

func TestHeapSingleRoundTrip(t *testing.T) {
	h := NewMin[int]()
	h.Push(42)
	require.Equal(t, 1, h.Len())

	v, err := h.Pop()
	require.NoError(t, err)
	require.Equal(t, 42, v)
	require.Equal(t, 0, h.Len())
}

func TestHeapMinOrder(t *testing.T) {
	h := NewMin(5, 3, 8, 1)
	require.True(t, h.Valid())

	top, err := h.Peek()
	require.NoError(t, err)
	require.Equal(t, 1, top)
	require.Equal(t, 4, h.Len())

	require.Equal(t, []int{1, 3, 5, 8}, drain(t, h))
}

func TestHeapMaxOrder(t *testing.T) {
	h := NewMax(5, 3, 8, 1, 8)
	h.Push(2)
	require.Equal(t, []int{8, 8, 5, 3, 2, 1}, drain(t, h))
}

func TestHeapSizeAccounting(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	initial := randomInts(2, 50, -1000, 1000)
	h := NewMin(initial...)

	pushes, pops := 0, 0
	for i := 0; i < 2000; i++ {
		if r.Intn(3) > 0 || h.Len() == 0 {
			h.Push(r.Intn(1000))
			pushes++
		} else {
			_, err := h.Pop()
			require.NoError(t, err)
			pops++
		}
		require.Equal(t, len(initial)+pushes-pops, h.Len())
		require.True(t, h.Valid())
	}
}

func TestHeapCopiesInput(t *testing.T) {
	values := []int{4, 2, 6}
	h := NewMin(values...)
	values[0] = -100

	require.ElementsMatch(t, []int{2, 4, 6}, h.Values())

	vals := h.Values()
	vals[0] = 1000
	top, err := h.Peek()
	require.NoError(t, err)
	require.Equal(t, 2, top)
}

type person struct {
	name string
	age  int
}

func TestHeapByKey(t *testing.T) {
	people := []person{
		{"ada", 36}, {"alan", 41}, {"grace", 85}, {"linus", 21}, {"ken", 41},
	}
	h := NewByKey(MaxHeap, func(p person) int { return p.age }, people...)
	h.Push(person{"barbara", 50})

	out := drain(t, h)
	ages := []int{}
	for _, p := range out {
		ages = append(ages, p.age)
	}
	require.Equal(t, []int{85, 50, 41, 41, 36, 21}, ages)
	require.Equal(t, "grace", out[0].name)
	require.Equal(t, "linus", out[5].name)
}

func TestHeapHeight(t *testing.T) {
	h := NewMin[int]()
	require.Equal(t, 0, h.Height())
	for i := 1; i <= 8; i++ {
		h.Push(i)
	}
	require.Equal(t, 4, h.Height())
}

func TestHeapString(t *testing.T) {
	require.Equal(t, "Heap[1 3 2]", NewMin(3, 1, 2).String())
	require.Equal(t, "Heap[]", NewMin[int]().String())
}

func TestHeapRender(t *testing.T) {
	h := NewMin(1, 2, 3, 4, 5, 6)

	out, err := h.Render("default")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"1",
		"├── 2",
		"│   ├── 4",
		"│   └── 5",
		"└── 3",
		"    └── 6",
	}, "\n"), out)

	out, err = h.Render("ascii")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"1",
		"+--- 2",
		"|    +--- 4",
		"|    '--- 5",
		"'--- 3",
		"     '--- 6",
	}, "\n"), out)

	out, err = NewMin[int]().Render("default")
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = h.Render("nope")
	require.ErrorIs(t, err, customerrors.ErrUnknownStyle)
}
