package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeKindCharRoundTrip(t *testing.T) {
	for _, c := range []byte{'A', 'M', 'D', 'R', 'C'} {
		kind, ok := ChangeKindFromChar(c)
		require.True(t, ok)
		assert.Equal(t, c, kind.Char())
	}

	_, ok := ChangeKindFromChar('X')
	assert.False(t, ok)

	// An unknown kind prints as modified rather than a made-up letter.
	assert.Equal(t, byte('M'), ChangeKind("bogus").Char())
}

func TestFileDiffPredicates(t *testing.T) {
	rename := FileDiff{Path: "new.go", OldPath: "old.go", Kind: ChangeRenamed}
	assert.True(t, rename.IsRename())
	assert.Equal(t, "renamed old.go -> new.go", rename.String())

	plain := FileDiff{Path: "a.go", Kind: ChangeModified, Additions: 3}
	assert.False(t, plain.IsRename())
	assert.True(t, plain.IsSummaryOnly())
}
