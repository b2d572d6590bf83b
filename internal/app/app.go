// Package app wires the repository queries to the CLI commands and prints
// the results as JSON.
package app

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"

	"github.com/maxbolgarin/gitq"
	"github.com/maxbolgarin/gitq/internal/config"
	"github.com/maxbolgarin/gitq/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// App is the command dispatcher over one opened repository.
type App struct {
	repo *gitq.Repository
	cfg  config.Config
	out  io.Writer
	log  logze.Logger
}

// New opens the repository at repoPath and builds the dispatcher.
func New(cfg config.Config, repoPath string, out io.Writer) (*App, error) {
	repo, err := gitq.OpenWithConfig(repoPath, cfg.Repo)
	if err != nil {
		return nil, errm.Wrap(err, "open repository")
	}
	return &App{
		repo: repo,
		cfg:  cfg,
		out:  out,
		log:  logze.With("component", "app"),
	}, nil
}

// Stop releases the repository resources.
func (a *App) Stop(_ context.Context) error {
	a.repo.Close()
	return nil
}

// Status prints the working tree state.
func (a *App) Status(ctx context.Context) error {
	status, err := a.repo.Status(ctx)
	if err != nil {
		return errm.Wrap(err, "query status")
	}
	return a.print(newStatusView(status))
}

// Log prints the commit history.
func (a *App) Log(ctx context.Context, limit int, author, grep string) error {
	log, err := a.repo.LogWithOptions(ctx, gitq.LogOptions{
		MaxCount: limit,
		Author:   author,
		Grep:     grep,
	})
	if err != nil {
		return errm.Wrap(err, "query log")
	}
	return a.print(newLogView(log))
}

// Branches prints all local and remote-tracking branches.
func (a *App) Branches(ctx context.Context) error {
	branches, err := a.repo.Branches(ctx)
	if err != nil {
		return errm.Wrap(err, "query branches")
	}
	return a.print(newBranchesView(branches))
}

// Tags prints all tags.
func (a *App) Tags(ctx context.Context) error {
	tags, err := a.repo.Tags(ctx)
	if err != nil {
		return errm.Wrap(err, "query tags")
	}
	return a.print(newTagsView(tags))
}

// Remotes prints the configured remotes.
func (a *App) Remotes(ctx context.Context) error {
	remotes, err := a.repo.Remotes(ctx)
	if err != nil {
		return errm.Wrap(err, "query remotes")
	}
	return a.print(newRemotesView(remotes))
}

// Stashes prints the stash stack.
func (a *App) Stashes(ctx context.Context) error {
	stashes, err := a.repo.Stashes(ctx)
	if err != nil {
		return errm.Wrap(err, "query stashes")
	}
	return a.print(newStashesView(stashes))
}

// Diff prints the changes between the working tree and the index, or
// between two revisions when both are given.
func (a *App) Diff(ctx context.Context, mode string, cached bool, from, to string) error {
	opts := gitq.DiffOptions{Mode: gitq.DiffMode(mode), Cached: cached}

	var (
		diff model.DiffResult
		err  error
	)
	if from != "" && to != "" {
		diff, err = a.repo.DiffCommits(ctx, from, to, opts)
	} else {
		diff, err = a.repo.DiffWithOptions(ctx, opts)
	}
	if err != nil {
		return errm.Wrap(err, "query diff")
	}
	return a.print(newDiffView(diff))
}

// Snapshot prints the combined repository state.
func (a *App) Snapshot(ctx context.Context, logLimit int) error {
	snap, err := a.repo.Snapshot(ctx, logLimit)
	if err != nil {
		return errm.Wrap(err, "query snapshot")
	}
	return a.print(newSnapshotView(snap))
}

func (a *App) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errm.Wrap(err, "encode output")
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}
