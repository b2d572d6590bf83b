package gitq

import (
	"context"

	"github.com/maxbolgarin/gitq/model"
	"github.com/maxbolgarin/gitq/parse"
)

// Status returns the working tree state from `git status --porcelain`.
func (r *Repository) Status(ctx context.Context) (model.Status, error) {
	out, err := r.run(ctx, "status", "--porcelain")
	if err != nil {
		return model.Status{}, err
	}
	return parse.StatusOutput(out), nil
}
