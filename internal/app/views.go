package app

import (
	"github.com/maxbolgarin/gitq"
	"github.com/maxbolgarin/gitq/model"
)

// Status letter codes marshal as strings, not as raw enum bytes.
type statusEntryView struct {
	Path     string `json:"path"`
	Index    string `json:"index"`
	Worktree string `json:"worktree"`
	Staged   bool   `json:"staged"`
	Unstaged bool   `json:"unstaged"`
}

type statusView struct {
	Clean   bool              `json:"clean"`
	Entries []statusEntryView `json:"entries,omitempty"`
}

func newStatusView(status model.Status) statusView {
	view := statusView{Clean: status.IsClean()}
	for entry := range status.All() {
		view.Entries = append(view.Entries, statusEntryView{
			Path:     entry.Path,
			Index:    entry.Index.String(),
			Worktree: entry.Worktree.String(),
			Staged:   entry.IsStaged(),
			Unstaged: entry.IsUnstaged(),
		})
	}
	return view
}

type logView struct {
	Count   int            `json:"count"`
	Commits []model.Commit `json:"commits,omitempty"`
}

func newLogView(log model.CommitLog) logView {
	return logView{Count: log.Len(), Commits: log.Records()}
}

type branchesView struct {
	LocalCount  int            `json:"local_count"`
	RemoteCount int            `json:"remote_count"`
	Branches    []model.Branch `json:"branches,omitempty"`
}

func newBranchesView(branches model.BranchList) branchesView {
	return branchesView{
		LocalCount:  branches.LocalCount(),
		RemoteCount: branches.RemoteCount(),
		Branches:    branches.Records(),
	}
}

type tagsView struct {
	Count int         `json:"count"`
	Tags  []model.Tag `json:"tags,omitempty"`
}

func newTagsView(tags model.TagList) tagsView {
	return tagsView{Count: tags.Len(), Tags: tags.Records()}
}

type remotesView struct {
	Count   int            `json:"count"`
	Remotes []model.Remote `json:"remotes,omitempty"`
}

func newRemotesView(remotes model.RemoteList) remotesView {
	return remotesView{Count: remotes.Len(), Remotes: remotes.Records()}
}

type stashesView struct {
	Count   int           `json:"count"`
	Stashes []model.Stash `json:"stashes,omitempty"`
}

func newStashesView(stashes model.StashList) stashesView {
	return stashesView{Count: stashes.Len(), Stashes: stashes.Records()}
}

type diffView struct {
	Totals model.DiffTotals `json:"totals"`
	Files  []model.FileDiff `json:"files,omitempty"`
}

func newDiffView(diff model.DiffResult) diffView {
	return diffView{Totals: diff.Totals(), Files: diff.Records()}
}

type snapshotView struct {
	CurrentBranch string       `json:"current_branch,omitempty"`
	Status        statusView   `json:"status"`
	Log           logView      `json:"log"`
	Branches      branchesView `json:"branches"`
	Tags          tagsView     `json:"tags"`
	Stashes       stashesView  `json:"stashes"`
}

func newSnapshotView(snap *gitq.Snapshot) snapshotView {
	return snapshotView{
		CurrentBranch: snap.CurrentBranch,
		Status:        newStatusView(snap.Status),
		Log:           newLogView(snap.Log),
		Branches:      newBranchesView(snap.Branches),
		Tags:          newTagsView(snap.Tags),
		Stashes:       newStashesView(snap.Stashes),
	}
}
