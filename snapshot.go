package gitq

import (
	"context"

	"github.com/maxbolgarin/abstract"

	"github.com/maxbolgarin/gitq/model"
)

// Snapshot is a point-in-time view of a repository, gathered by running
// the individual queries concurrently. It is not atomic: the underlying
// git invocations race with other writers of the repository.
type Snapshot struct {
	CurrentBranch string
	Status        model.Status
	Log           model.CommitLog
	Branches      model.BranchList
	Tags          model.TagList
	Stashes       model.StashList
}

// Snapshot gathers the working tree status, history, branches, tags and
// stashes in one call. logLimit caps the history, zero means all commits.
func (r *Repository) Snapshot(ctx context.Context, logLimit int) (*Snapshot, error) {
	var snap Snapshot

	waiterSet := abstract.NewWaiterSet(r.log)
	waiterSet.Add(ctx, func(ctx context.Context) (err error) {
		snap.CurrentBranch, err = r.CurrentBranch(ctx)
		return err
	})
	waiterSet.Add(ctx, func(ctx context.Context) (err error) {
		snap.Status, err = r.Status(ctx)
		return err
	})
	waiterSet.Add(ctx, func(ctx context.Context) (err error) {
		snap.Log, err = r.LogWithOptions(ctx, LogOptions{MaxCount: logLimit})
		return err
	})
	waiterSet.Add(ctx, func(ctx context.Context) (err error) {
		snap.Branches, err = r.Branches(ctx)
		return err
	})
	waiterSet.Add(ctx, func(ctx context.Context) (err error) {
		snap.Tags, err = r.Tags(ctx)
		return err
	})
	waiterSet.Add(ctx, func(ctx context.Context) (err error) {
		snap.Stashes, err = r.Stashes(ctx)
		return err
	})

	if err := waiterSet.Await(ctx); err != nil {
		return nil, err
	}
	return &snap, nil
}
