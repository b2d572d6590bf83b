package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeStatusPredicates(t *testing.T) {
	clean := MergeStatus{Outcome: MergeFastForward, Hash: "abc123d"}
	assert.True(t, clean.IsClean())
	assert.False(t, clean.HasConflicts())

	conflicted := MergeStatus{Outcome: MergeConflicted, Conflicts: []string{"a.go", "b.go"}}
	assert.False(t, conflicted.IsClean())
	assert.True(t, conflicted.HasConflicts())
	assert.True(t, conflicted.Hash.IsZero())
}
