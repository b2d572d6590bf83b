package gitq

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/maxbolgarin/errm"

	"github.com/maxbolgarin/gitq/model"
	"github.com/maxbolgarin/gitq/parse"
)

// parallelDecodeThreshold is the number of log lines from which decoding
// fans out to the worker pool instead of running sequentially.
const parallelDecodeThreshold = 64

// Log returns the full commit history of the current branch.
func (r *Repository) Log(ctx context.Context) (model.CommitLog, error) {
	return r.LogWithOptions(ctx, LogOptions{})
}

// RecentCommits returns the latest n commits.
func (r *Repository) RecentCommits(ctx context.Context, n int) (model.CommitLog, error) {
	return r.LogWithOptions(ctx, LogOptions{MaxCount: n})
}

// LogWithOptions returns the commit history filtered by opts.
func (r *Repository) LogWithOptions(ctx context.Context, opts LogOptions) (model.CommitLog, error) {
	args := append([]string{"log", parse.LogFormat}, opts.args()...)
	out, err := r.run(ctx, args...)
	if err != nil {
		return model.CommitLog{}, err
	}
	return r.decodeLog(out)
}

// LogRange returns the commits reachable from "to" but not from "from",
// i.e. git's from..to notation.
func (r *Repository) LogRange(ctx context.Context, from, to string) (model.CommitLog, error) {
	out, err := r.run(ctx, "log", parse.LogFormat, from+".."+to)
	if err != nil {
		return model.CommitLog{}, err
	}
	return r.decodeLog(out)
}

// ShowCommit returns one commit together with its change statistics. The
// per-file numbers come from --stat output, so they are approximate for
// files whose histogram was truncated.
func (r *Repository) ShowCommit(ctx context.Context, hash model.Hash) (model.CommitDetails, error) {
	out, err := r.run(ctx, "show", "-s", parse.LogFormat, hash.String())
	if err != nil {
		return model.CommitDetails{}, err
	}
	commit, ok, err := parse.CommitLine(out)
	if err != nil {
		return model.CommitDetails{}, errm.Wrap(err, "decode commit", "hash", hash.Short())
	}
	if !ok {
		return model.CommitDetails{}, errm.Errorf("no commit record for %s", hash.Short())
	}

	stat, err := r.run(ctx, "show", "--stat", "--format=", hash.String())
	if err != nil {
		return model.CommitDetails{}, err
	}
	paths, insertions, deletions := parse.ApproxStats(stat)

	return model.CommitDetails{
		Commit:       commit,
		FilesChanged: paths,
		Insertions:   insertions,
		Deletions:    deletions,
	}, nil
}

// decodeLog decodes a log blob, fanning the per-line work out to the
// worker pool when the blob is large. Record order is preserved.
func (r *Repository) decodeLog(blob string) (model.CommitLog, error) {
	lines := strings.Split(blob, "\n")
	if len(lines) < parallelDecodeThreshold {
		return parse.LogOutput(blob)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		errs    = errm.NewList()
		commits = make([]model.Commit, len(lines))
		keep    = make([]bool, len(lines))
	)
	for i, line := range lines {
		wg.Add(1)
		r.submit(func() {
			defer wg.Done()
			commit, ok, err := parse.CommitLine(line)
			if err != nil {
				mu.Lock()
				errs.Wrap(err, "decode log line", "line", strconv.Itoa(i+1))
				mu.Unlock()
				return
			}
			if ok {
				commits[i], keep[i] = commit, true
			}
		})
	}
	wg.Wait()

	if err := errs.Err(); err != nil {
		return model.CommitLog{}, err
	}
	kept := make([]model.Commit, 0, len(lines))
	for i := range commits {
		if keep[i] {
			kept = append(kept, commits[i])
		}
	}
	return model.NewCommitLog(kept), nil
}
