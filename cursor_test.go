package slotlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayCursor(t *testing.T) {
	arr := NewSlotArray[int]()
	arr.Add(80)
	mid := arr.Add(85)
	arr.Add(90)
	arr.Add(100)
	require.NoError(t, arr.RemoveAt(mid))

	c := arr.Cursor()
	defer c.Release()

	sum := 0
	var indices []int
	for c.MoveNext() {
		sum += *c.Current()
		indices = append(indices, c.Index())
	}
	assert.Equal(t, 270, sum)
	assert.Equal(t, []int{0, 2, 3}, indices)
	assert.False(t, c.MoveNext(), "exhausted cursor stays exhausted")

	t.Run("reset restarts", func(t *testing.T) {
		c.Reset()
		require.True(t, c.MoveNext())
		assert.Equal(t, 80, *c.Current())
	})

	t.Run("current is writable", func(t *testing.T) {
		c.Reset()
		for c.MoveNext() {
			*c.Current() *= 2
		}
		v, err := arr.Get(0)
		require.NoError(t, err)
		assert.Equal(t, 160, *v)
	})
}

func TestArrayCursor_Empty(t *testing.T) {
	arr := NewSlotArray[int]()
	c := arr.Cursor()
	assert.False(t, c.MoveNext())

	arr.Add(1)
	require.NoError(t, arr.RemoveAt(0))
	c.Reset()
	assert.False(t, c.MoveNext())
}

func TestArrayCursor_Recycled(t *testing.T) {
	arr := NewSlotArray[int]()
	arr.Add(1)

	c := arr.Cursor()
	require.True(t, c.MoveNext())
	c.Release()
	c.Release()
	assert.Len(t, arr.cursors, 1)

	again := arr.Cursor()
	assert.Same(t, c, again)
	assert.Equal(t, -1, again.Index(), "recycled cursor starts over")
	assert.Empty(t, arr.cursors)

	fresh := arr.Cursor()
	assert.NotSame(t, again, fresh)
}

func TestArrayCursor_SteadyStateAllocs(t *testing.T) {
	arr := NewSlotArray[int]()
	for i := range 16 {
		arr.Add(i)
	}
	arr.Cursor().Release()

	allocs := testing.AllocsPerRun(100, func() {
		c := arr.Cursor()
		for c.MoveNext() {
			_ = c.Current()
		}
		c.Release()
	})
	assert.Zero(t, allocs)
}

func TestListCursor(t *testing.T) {
	list := NewGenerationalList[string]()
	a := list.Add("a")
	b := list.Add("b")
	list.Add("c")
	require.NoError(t, list.Remove(a))
	d := list.Add("d")

	c := list.Cursor()
	defer c.Release()

	var items []string
	var handles []Handle
	for c.MoveNext() {
		items = append(items, c.Current())
		handles = append(handles, c.Handle())
	}
	assert.Equal(t, []string{"d", "b", "c"}, items)
	assert.Equal(t, d, handles[0])
	assert.Equal(t, b, handles[1])
	for _, h := range handles {
		assert.True(t, list.Contains(h))
	}

	c.Reset()
	require.True(t, c.MoveNext())
	assert.Equal(t, "d", c.Current())
}

func TestListCursor_SkipsFreeSlots(t *testing.T) {
	list := NewGenerationalList[int]()
	hs := []Handle{list.Add(1), list.Add(2), list.Add(3)}
	require.NoError(t, list.Remove(hs[0]))
	require.NoError(t, list.Remove(hs[2]))

	c := list.Cursor()
	require.True(t, c.MoveNext())
	assert.Equal(t, 2, c.Current())
	assert.False(t, c.MoveNext())
}

func TestListCursor_Recycled(t *testing.T) {
	list := NewGenerationalList[int]()
	list.Add(1)

	c := list.Cursor()
	c.Release()
	again := list.Cursor()
	assert.Same(t, c, again)
	assert.True(t, again.MoveNext())
}
