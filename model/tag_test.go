package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListFinders(t *testing.T) {
	tags := NewTagList([]Tag{
		{Name: "v2.0.0", Kind: TagAnnotated, Message: "big release"},
		{Name: "v1.0.0", Kind: TagLightweight},
		{Name: "v1.1.0", Kind: TagLightweight},
	})

	// Construction re-sorts by name.
	first, _ := tags.First()
	assert.Equal(t, "v1.0.0", first.Name)

	tag, ok := tags.FindTag("v2.0.0")
	require.True(t, ok)
	assert.True(t, tag.IsAnnotated())

	assert.Len(t, Collect(tags.FindContaining("v1.")), 2)
	assert.Equal(t, 2, tags.LightweightCount())
	assert.Equal(t, 1, tags.AnnotatedCount())
}

func TestBranchShortName(t *testing.T) {
	remote := Branch{Name: "origin/main", Kind: BranchRemoteTracking}
	assert.Equal(t, "main", remote.ShortName())

	// Local branches keep their slashes.
	local := Branch{Name: "feature/parse", Kind: BranchLocal}
	assert.Equal(t, "feature/parse", local.ShortName())

	// Only the leading remote segment is stripped; nested path segments
	// of the branch name survive.
	nested := Branch{Name: "origin/feature/parse", Kind: BranchRemoteTracking}
	assert.Equal(t, "feature/parse", nested.ShortName())
}

func TestBranchListFinders(t *testing.T) {
	branches := NewBranchList([]Branch{
		{Name: "main", Kind: BranchLocal, IsCurrent: true},
		{Name: "origin/main", Kind: BranchRemoteTracking},
		{Name: "feature/parse", Kind: BranchLocal},
	})

	branch, ok := branches.FindByShortName("main")
	require.True(t, ok)
	assert.True(t, branch.IsLocal())

	assert.Len(t, Collect(branches.FindContaining("main")), 2)
	assert.Len(t, Collect(branches.Local()), 2)
	assert.Len(t, Collect(branches.Remote()), 1)
}
