package gitq

import (
	"context"

	"github.com/maxbolgarin/gitq/model"
	"github.com/maxbolgarin/gitq/parse"
)

// Diff returns the unstaged changes as a unified diff.
func (r *Repository) Diff(ctx context.Context) (model.DiffResult, error) {
	return r.DiffWithOptions(ctx, DiffOptions{})
}

// DiffStaged returns the staged changes as a unified diff.
func (r *Repository) DiffStaged(ctx context.Context) (model.DiffResult, error) {
	return r.DiffWithOptions(ctx, DiffOptions{Cached: true})
}

// DiffHead returns all uncommitted changes, staged and unstaged, against
// HEAD.
func (r *Repository) DiffHead(ctx context.Context) (model.DiffResult, error) {
	return r.diff(ctx, DiffOptions{}, "HEAD")
}

// DiffCommits returns the changes between two revisions (from..to).
func (r *Repository) DiffCommits(ctx context.Context, from, to string, opts DiffOptions) (model.DiffResult, error) {
	return r.diff(ctx, opts, from+".."+to)
}

// DiffWithOptions returns the diff shaped by opts; see DiffMode for which
// decoder interprets the output.
func (r *Repository) DiffWithOptions(ctx context.Context, opts DiffOptions) (model.DiffResult, error) {
	return r.diff(ctx, opts)
}

func (r *Repository) diff(ctx context.Context, opts DiffOptions, revs ...string) (model.DiffResult, error) {
	args := append([]string{"diff"}, opts.args()...)
	args = append(args, revs...)
	args = append(args, opts.pathArgs()...)

	out, err := r.run(ctx, args...)
	if err != nil {
		return model.DiffResult{}, err
	}

	switch opts.Mode {
	case DiffNameOnly:
		return parse.NameOnlyOutput(out), nil
	case DiffNameStatus:
		return parse.NameStatusOutput(out), nil
	case DiffStat:
		return parse.StatOutput(out), nil
	case DiffNumstat:
		return parse.NumstatOutput(out), nil
	default:
		return parse.UnifiedOutput(out), nil
	}
}
