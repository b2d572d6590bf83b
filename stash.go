package gitq

import (
	"context"
	"strconv"

	"github.com/maxbolgarin/gitq/model"
	"github.com/maxbolgarin/gitq/parse"
)

func stashRef(index int) string {
	return "stash@{" + strconv.Itoa(index) + "}"
}

// Stashes returns the stash stack, newest first.
func (r *Repository) Stashes(ctx context.Context) (model.StashList, error) {
	out, err := r.run(ctx, "stash", "list", parse.StashFormat)
	if err != nil {
		return model.StashList{}, err
	}
	return parse.StashOutput(out)
}

// StashSave stashes the working tree changes under message.
func (r *Repository) StashSave(ctx context.Context, message string, opts StashOptions) error {
	args := []string{"stash", "push"}
	if message != "" {
		args = append(args, "-m", message)
	}
	args = append(args, opts.args()...)
	_, err := r.run(ctx, args...)
	return err
}

// StashApply applies the stash at index, keeping it on the stack.
func (r *Repository) StashApply(ctx context.Context, index int, opts StashApplyOptions) error {
	args := append([]string{"stash", "apply"}, opts.args()...)
	args = append(args, stashRef(index))
	_, err := r.run(ctx, args...)
	return err
}

// StashPop applies the stash at index and drops it from the stack.
func (r *Repository) StashPop(ctx context.Context, index int, opts StashApplyOptions) error {
	args := append([]string{"stash", "pop"}, opts.args()...)
	args = append(args, stashRef(index))
	_, err := r.run(ctx, args...)
	return err
}

// StashDrop removes the stash at index without applying it.
func (r *Repository) StashDrop(ctx context.Context, index int) error {
	_, err := r.run(ctx, "stash", "drop", stashRef(index))
	return err
}

// StashClear removes the whole stash stack.
func (r *Repository) StashClear(ctx context.Context) error {
	_, err := r.run(ctx, "stash", "clear")
	return err
}
