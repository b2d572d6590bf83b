package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxbolgarin/gitq"
	"github.com/maxbolgarin/gitq/model"
)

func TestStatusViewStringifiesCodes(t *testing.T) {
	status := model.NewStatus([]model.StatusEntry{
		{Path: "a.go", Index: model.IndexAdded},
		{Path: "b.go", Worktree: model.WorktreeUntracked},
	})

	view := newStatusView(status)
	assert.False(t, view.Clean)
	require.Len(t, view.Entries, 2)
	assert.Equal(t, "A", view.Entries[0].Index)
	assert.Equal(t, "?", view.Entries[1].Worktree)
	assert.True(t, view.Entries[0].Staged)
	assert.True(t, view.Entries[1].Unstaged)
}

func TestStatusViewClean(t *testing.T) {
	view := newStatusView(model.NewStatus(nil))
	assert.True(t, view.Clean)
	assert.Empty(t, view.Entries)
}

func TestViewsCarryCounts(t *testing.T) {
	log := model.NewCommitLog([]model.Commit{{Hash: "abc"}})
	assert.Equal(t, 1, newLogView(log).Count)

	branches := model.NewBranchList([]model.Branch{
		{Name: "main", Kind: model.BranchLocal},
		{Name: "origin/main", Kind: model.BranchRemoteTracking},
	})
	bv := newBranchesView(branches)
	assert.Equal(t, 1, bv.LocalCount)
	assert.Equal(t, 1, bv.RemoteCount)

	stashes := model.NewStashList([]model.Stash{{Index: 0}})
	assert.Equal(t, 1, newStashesView(stashes).Count)

	remotes := model.NewRemoteList([]model.Remote{{Name: "origin"}})
	assert.Equal(t, 1, newRemotesView(remotes).Count)
}

func TestDiffViewTotals(t *testing.T) {
	diff := model.NewDiffResult([]model.FileDiff{
		{Path: "a.go", Kind: model.ChangeModified, Additions: 3, Deletions: 1},
	})

	view := newDiffView(diff)
	assert.Equal(t, 1, view.Totals.FilesChanged)
	assert.Equal(t, 3, view.Totals.Insertions)
	assert.Equal(t, 1, view.Totals.Deletions)
	require.Len(t, view.Files, 1)
}

func TestSnapshotView(t *testing.T) {
	snap := &gitq.Snapshot{
		CurrentBranch: "main",
		Status:        model.NewStatus(nil),
		Log:           model.NewCommitLog([]model.Commit{{Hash: "abc"}}),
	}

	view := newSnapshotView(snap)
	assert.Equal(t, "main", view.CurrentBranch)
	assert.True(t, view.Status.Clean)
	assert.Equal(t, 1, view.Log.Count)
}
