package gitq

import (
	"context"

	"github.com/maxbolgarin/errm"
)

// RestoreOptions shapes a restore. When neither Staged nor Worktree is
// set the worktree is restored, matching git's own default.
type RestoreOptions struct {
	// Source restores from the given commit instead of the index.
	Source   string
	Staged   bool
	Worktree bool
}

func (o RestoreOptions) args() []string {
	var args []string
	if o.Source != "" {
		args = append(args, "--source", o.Source)
	}
	if o.Staged {
		args = append(args, "--staged")
	}
	if o.Worktree || !o.Staged {
		args = append(args, "--worktree")
	}
	return args
}

// RemoveOptions shapes an rm.
type RemoveOptions struct {
	Force     bool
	Recursive bool
	// Cached removes paths from the index only, leaving the worktree alone.
	Cached bool
	// IgnoreUnmatch succeeds even when no path matches.
	IgnoreUnmatch bool
}

func (o RemoveOptions) args() []string {
	var args []string
	if o.Force {
		args = append(args, "--force")
	}
	if o.Recursive {
		args = append(args, "-r")
	}
	if o.Cached {
		args = append(args, "--cached")
	}
	if o.IgnoreUnmatch {
		args = append(args, "--ignore-unmatch")
	}
	return args
}

// MoveOptions shapes an mv.
type MoveOptions struct {
	Force  bool
	DryRun bool
}

func (o MoveOptions) args() []string {
	var args []string
	if o.Force {
		args = append(args, "-f")
	}
	if o.DryRun {
		args = append(args, "-n")
	}
	return args
}

// CheckoutFile discards worktree changes to a path, restoring it from HEAD.
func (r *Repository) CheckoutFile(ctx context.Context, path string) error {
	_, err := r.run(ctx, "checkout", "HEAD", "--", path)
	return err
}

// Restore restores paths from the index or a source commit.
func (r *Repository) Restore(ctx context.Context, opts RestoreOptions, paths ...string) error {
	if len(paths) == 0 {
		return errm.New("no paths to restore")
	}
	args := append([]string{"restore"}, opts.args()...)
	args = append(args, "--")
	args = append(args, paths...)
	_, err := r.run(ctx, args...)
	return err
}

// Remove removes paths from the index and the worktree.
func (r *Repository) Remove(ctx context.Context, paths ...string) error {
	return r.RemoveWithOptions(ctx, RemoveOptions{}, paths...)
}

// RemoveWithOptions removes paths from the index and, unless Cached is
// set, from the worktree.
func (r *Repository) RemoveWithOptions(ctx context.Context, opts RemoveOptions, paths ...string) error {
	if len(paths) == 0 {
		return errm.New("no paths to remove")
	}
	args := append([]string{"rm"}, opts.args()...)
	args = append(args, "--")
	args = append(args, paths...)
	_, err := r.run(ctx, args...)
	return err
}

// Move renames a tracked path.
func (r *Repository) Move(ctx context.Context, src, dst string) error {
	return r.MoveWithOptions(ctx, src, dst, MoveOptions{})
}

// MoveWithOptions renames a tracked path.
func (r *Repository) MoveWithOptions(ctx context.Context, src, dst string, opts MoveOptions) error {
	args := append([]string{"mv"}, opts.args()...)
	args = append(args, src, dst)
	_, err := r.run(ctx, args...)
	return err
}
