package gitq

import (
	"context"
	"strings"

	"github.com/maxbolgarin/lang"

	"github.com/maxbolgarin/gitq/model"
	"github.com/maxbolgarin/gitq/parse"
)

// Branches returns all local and remote-tracking branches, sorted by name.
func (r *Repository) Branches(ctx context.Context) (model.BranchList, error) {
	out, err := r.run(ctx, "branch", "-vv", "--all")
	if err != nil {
		return model.BranchList{}, err
	}
	return parse.BranchOutput(out), nil
}

// CurrentBranch returns the checked-out branch name, empty on a detached
// HEAD.
func (r *Repository) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CreateBranch creates a branch at startPoint without checking it out.
// An empty startPoint means HEAD.
func (r *Repository) CreateBranch(ctx context.Context, name, startPoint string) error {
	args := []string{"branch", name}
	if startPoint != "" {
		args = append(args, startPoint)
	}
	_, err := r.run(ctx, args...)
	return err
}

// Checkout switches the working tree to ref (a branch, tag or commit).
func (r *Repository) Checkout(ctx context.Context, ref string) error {
	_, err := r.run(ctx, "checkout", ref)
	return err
}

// CheckoutNew creates a branch and switches to it.
func (r *Repository) CheckoutNew(ctx context.Context, name string) error {
	_, err := r.run(ctx, "checkout", "-b", name)
	return err
}

// DeleteBranch deletes a local branch. With force the branch is deleted
// even when it is not merged.
func (r *Repository) DeleteBranch(ctx context.Context, name string, force bool) error {
	_, err := r.run(ctx, "branch", lang.If(force, "-D", "-d"), name)
	return err
}
