package gitq

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/maxbolgarin/errm"

	"github.com/maxbolgarin/gitq/model"
	"github.com/maxbolgarin/gitq/parse"
)

// FastForwardMode controls whether a merge may move the branch pointer
// without a merge commit.
type FastForwardMode string

const (
	// FastForwardAuto fast-forwards when possible (git's default).
	FastForwardAuto FastForwardMode = ""
	// FastForwardOnly fails unless the merge is a pure fast-forward.
	FastForwardOnly FastForwardMode = "--ff-only"
	// FastForwardNever always creates a merge commit.
	FastForwardNever FastForwardMode = "--no-ff"
)

// MergeStrategy selects the merge strategy backend.
type MergeStrategy string

const (
	MergeRecursive MergeStrategy = "recursive"
	MergeOurs      MergeStrategy = "ours"
	MergeTheirs    MergeStrategy = "theirs"
)

// MergeOptions shapes a merge. The zero value is a plain merge with
// fast-forward allowed.
type MergeOptions struct {
	FastForward FastForwardMode
	Strategy    MergeStrategy
	Message     string
	NoCommit    bool
}

func (o MergeOptions) args() []string {
	var args []string
	if o.FastForward != FastForwardAuto {
		args = append(args, string(o.FastForward))
	}
	if o.Strategy != "" {
		args = append(args, "-s", string(o.Strategy))
	}
	if o.NoCommit {
		args = append(args, "--no-commit")
	}
	if o.Message != "" {
		args = append(args, "-m", o.Message)
	}
	return args
}

// Merge merges branch into the current branch with default options.
func (r *Repository) Merge(ctx context.Context, branch string) (model.MergeStatus, error) {
	return r.MergeWithOptions(ctx, branch, MergeOptions{})
}

// MergeWithOptions merges branch into the current branch. A merge that
// stops on conflicts is not an error: the returned status carries the
// conflicted outcome and the list of unresolved paths.
func (r *Repository) MergeWithOptions(ctx context.Context, branch string, opts MergeOptions) (model.MergeStatus, error) {
	args := append([]string{"merge"}, opts.args()...)
	args = append(args, branch)

	out, err := r.run(ctx, args...)
	if err != nil {
		conflicts, cerr := r.ConflictedFiles(ctx)
		if cerr == nil && (len(conflicts) > 0 || parse.IsMergeConflict(err.Error())) {
			return model.MergeStatus{Outcome: model.MergeConflicted, Conflicts: conflicts}, nil
		}
		return model.MergeStatus{}, err
	}

	outcome, hash := parse.MergeResult(out)
	if outcome != model.MergeUpToDate && hash.IsZero() {
		// Merge commits (and truncated fast-forward output) do not carry
		// the resulting hash, HEAD does.
		head, err := r.run(ctx, "rev-parse", "HEAD")
		if err != nil {
			return model.MergeStatus{}, errm.Wrap(err, "resolve merge result")
		}
		hash = model.Hash(strings.TrimSpace(head))
	}
	return model.MergeStatus{Outcome: outcome, Hash: hash}, nil
}

// ConflictedFiles returns the paths that are unmerged in the index.
func (r *Repository) ConflictedFiles(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, err
	}
	diff := parse.NameOnlyOutput(out)
	paths := make([]string, 0, diff.Len())
	for f := range diff.All() {
		paths = append(paths, f.Path)
	}
	return paths, nil
}

// MergeInProgress reports whether a merge was started and not yet
// concluded, i.e. MERGE_HEAD exists in the git directory.
func (r *Repository) MergeInProgress(ctx context.Context) (bool, error) {
	out, err := r.run(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return false, err
	}
	gitDir := strings.TrimSpace(out)
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(r.path, gitDir)
	}

	if _, err := os.Stat(filepath.Join(gitDir, "MERGE_HEAD")); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errm.Wrap(err, "stat MERGE_HEAD")
	}
	return true, nil
}

// AbortMerge aborts an in-progress merge and restores the pre-merge state.
func (r *Repository) AbortMerge(ctx context.Context) error {
	_, err := r.run(ctx, "merge", "--abort")
	return err
}
