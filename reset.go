package gitq

import "context"

// ResetMode selects what `git reset` touches besides HEAD.
type ResetMode string

const (
	// ResetSoft moves HEAD only; index and working tree stay.
	ResetSoft ResetMode = "--soft"
	// ResetMixed moves HEAD and resets the index; working tree stays.
	ResetMixed ResetMode = "--mixed"
	// ResetHard moves HEAD and resets both index and working tree.
	ResetHard ResetMode = "--hard"
)

// Reset moves HEAD to commit with the given mode.
func (r *Repository) Reset(ctx context.Context, commit string, mode ResetMode) error {
	_, err := r.run(ctx, "reset", string(mode), commit)
	return err
}

// ResetSoft moves HEAD to commit, keeping index and working tree.
func (r *Repository) ResetSoft(ctx context.Context, commit string) error {
	return r.Reset(ctx, commit, ResetSoft)
}

// ResetMixed moves HEAD to commit and unstages everything.
func (r *Repository) ResetMixed(ctx context.Context, commit string) error {
	return r.Reset(ctx, commit, ResetMixed)
}

// ResetHard moves HEAD to commit and discards all local changes.
func (r *Repository) ResetHard(ctx context.Context, commit string) error {
	return r.Reset(ctx, commit, ResetHard)
}

// UnstageFile removes path from the index, keeping working tree changes.
func (r *Repository) UnstageFile(ctx context.Context, path string) error {
	_, err := r.run(ctx, "reset", "HEAD", "--", path)
	return err
}
