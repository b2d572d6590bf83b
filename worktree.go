package gitq

import (
	"context"
	"strings"

	"github.com/maxbolgarin/errm"

	"github.com/maxbolgarin/gitq/model"
)

// Add stages the given paths.
func (r *Repository) Add(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return errm.New("no paths to add")
	}
	_, err := r.run(ctx, append([]string{"add", "--"}, paths...)...)
	return err
}

// AddAll stages every change in the working tree, including untracked
// files and deletions.
func (r *Repository) AddAll(ctx context.Context) error {
	_, err := r.run(ctx, "add", "-A")
	return err
}

// AddUpdate stages changes to already tracked files only.
func (r *Repository) AddUpdate(ctx context.Context) error {
	_, err := r.run(ctx, "add", "-u")
	return err
}

// Commit records the staged changes and returns the new commit hash.
func (r *Repository) Commit(ctx context.Context, message string) (model.Hash, error) {
	return r.commit(ctx, message, "")
}

// CommitWithAuthor records the staged changes under an explicit author,
// given as "Name <email>".
func (r *Repository) CommitWithAuthor(ctx context.Context, message, author string) (model.Hash, error) {
	return r.commit(ctx, message, author)
}

func (r *Repository) commit(ctx context.Context, message, author string) (model.Hash, error) {
	if message == "" {
		return "", errm.New("empty commit message")
	}
	args := []string{"commit", "-m", message}
	if author != "" {
		args = append(args, "--author="+author)
	}
	if _, err := r.run(ctx, args...); err != nil {
		return "", err
	}

	out, err := r.run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", errm.Wrap(err, "resolve new commit")
	}
	return model.Hash(strings.TrimSpace(out)), nil
}
