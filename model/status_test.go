package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIndexStatusCharRoundTrip(t *testing.T) {
	for _, c := range []byte{'M', 'A', 'D', 'R', 'C'} {
		status := IndexStatusFromChar(c)
		assert.Equal(t, c, status.Char())
	}
}

func TestWorktreeStatusCharRoundTrip(t *testing.T) {
	for _, c := range []byte{'M', 'D', '?', '!'} {
		status := WorktreeStatusFromChar(c)
		assert.Equal(t, c, status.Char())
	}
}

func TestStatusFromCharUnknownIsClean(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := rapid.Byte().Draw(t, "char")

		index := IndexStatusFromChar(c)
		switch c {
		case 'M', 'A', 'D', 'R', 'C':
			require.NotEqual(t, IndexClean, index)
		default:
			require.Equal(t, IndexClean, index)
		}

		worktree := WorktreeStatusFromChar(c)
		switch c {
		case 'M', 'D', '?', '!':
			require.NotEqual(t, WorktreeClean, worktree)
		default:
			require.Equal(t, WorktreeClean, worktree)
		}
	})
}

func TestStatusEntryAxes(t *testing.T) {
	staged := StatusEntry{Path: "a.go", Index: IndexAdded}
	assert.True(t, staged.IsStaged())
	assert.False(t, staged.IsUnstaged())

	unstaged := StatusEntry{Path: "b.go", Worktree: WorktreeModified}
	assert.False(t, unstaged.IsStaged())
	assert.True(t, unstaged.IsUnstaged())

	both := StatusEntry{Path: "c.go", Index: IndexModified, Worktree: WorktreeModified}
	assert.True(t, both.IsStaged())
	assert.True(t, both.IsUnstaged())
}

func TestStatusHelpers(t *testing.T) {
	entries := []StatusEntry{
		{Path: "staged.go", Index: IndexAdded},
		{Path: "modified.go", Index: IndexModified, Worktree: WorktreeModified},
		{Path: "untracked.go", Worktree: WorktreeUntracked},
		{Path: "ignored.log", Worktree: WorktreeIgnored},
	}
	status := NewStatus(entries)

	assert.False(t, status.IsClean())
	assert.True(t, status.HasChanges())
	assert.Len(t, status.Staged(), 2)
	assert.Len(t, status.Unstaged(), 3)
	assert.Len(t, status.Untracked(), 1)
	assert.Len(t, status.Ignored(), 1)
	assert.Len(t, status.WithIndexStatus(IndexAdded), 1)
	assert.Len(t, status.WithWorktreeStatus(WorktreeModified), 1)

	entry, ok := status.FindPath("untracked.go")
	require.True(t, ok)
	assert.Equal(t, WorktreeUntracked, entry.Worktree)

	_, ok = status.FindPath("missing.go")
	assert.False(t, ok)
}

func TestStatusEmptyIsClean(t *testing.T) {
	status := NewStatus(nil)
	assert.True(t, status.IsClean())
	assert.False(t, status.HasChanges())
	assert.Zero(t, status.Len())
}
