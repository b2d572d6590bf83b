package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionBasics(t *testing.T) {
	c := NewCollection([]int{1, 2, 3})

	assert.Equal(t, 3, c.Len())
	assert.False(t, c.IsEmpty())

	first, ok := c.First()
	require.True(t, ok)
	assert.Equal(t, 1, first)

	last, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, 3, last)
}

func TestCollectionEmpty(t *testing.T) {
	var c Collection[string]

	assert.Zero(t, c.Len())
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Records())

	_, ok := c.First()
	assert.False(t, ok)
	_, ok = c.Last()
	assert.False(t, ok)
	_, ok = c.Find(func(string) bool { return true })
	assert.False(t, ok)
}

func TestCollectionRecordsIsCopy(t *testing.T) {
	c := NewCollection([]int{1, 2, 3})

	records := c.Records()
	records[0] = 42

	again := c.Records()
	assert.Equal(t, 1, again[0])
}

func TestCollectionFindAndCount(t *testing.T) {
	c := NewCollection([]int{1, 2, 3, 4})

	v, ok := c.Find(func(n int) bool { return n > 2 })
	require.True(t, ok)
	assert.Equal(t, 3, v)

	assert.Equal(t, 2, c.Count(func(n int) bool { return n%2 == 0 }))
}

func TestCollectionFilterIsRestartable(t *testing.T) {
	c := NewCollection([]int{1, 2, 3, 4, 5})
	even := c.Filter(func(n int) bool { return n%2 == 0 })

	// The sequence can be drained more than once.
	assert.Equal(t, []int{2, 4}, Collect(even))
	assert.Equal(t, []int{2, 4}, Collect(even))
}

func TestCollectionAllPreservesOrder(t *testing.T) {
	c := NewCollection([]string{"c", "a", "b"})
	assert.Equal(t, []string{"c", "a", "b"}, Collect(c.All()))
}

func TestCollectionFilterEarlyStop(t *testing.T) {
	c := NewCollection([]int{1, 2, 3, 4})

	var seen []int
	for n := range c.All() {
		seen = append(seen, n)
		if n == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}
