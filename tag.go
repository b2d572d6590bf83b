package gitq

import (
	"context"

	"github.com/maxbolgarin/gitq/model"
	"github.com/maxbolgarin/gitq/parse"
)

// Tags returns all tags, sorted by name. Annotated tags carry their
// message and tagger and point at the dereferenced commit.
func (r *Repository) Tags(ctx context.Context) (model.TagList, error) {
	out, err := r.run(ctx, "for-each-ref", parse.TagRefFormat, "refs/tags/")
	if err != nil {
		return model.TagList{}, err
	}
	return parse.TagOutput(out), nil
}

// CreateTag creates a tag at target (HEAD when empty). A non-empty
// opts.Message creates an annotated tag, otherwise a lightweight one.
func (r *Repository) CreateTag(ctx context.Context, name, target string, opts TagOptions) error {
	args := append([]string{"tag"}, opts.args()...)
	args = append(args, name)
	if target != "" {
		args = append(args, target)
	}
	_, err := r.run(ctx, args...)
	return err
}

// DeleteTag deletes a tag.
func (r *Repository) DeleteTag(ctx context.Context, name string) error {
	_, err := r.run(ctx, "tag", "-d", name)
	return err
}
