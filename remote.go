package gitq

import (
	"context"
	"strings"

	"github.com/maxbolgarin/errm"

	"github.com/maxbolgarin/gitq/model"
)

// FetchOptions shapes a fetch.
type FetchOptions struct {
	Prune      bool
	Tags       bool
	AllRemotes bool
}

func (o FetchOptions) args() []string {
	var args []string
	if o.Prune {
		args = append(args, "--prune")
	}
	if o.Tags {
		args = append(args, "--tags")
	}
	if o.AllRemotes {
		args = append(args, "--all")
	}
	return args
}

// PushOptions shapes a push.
type PushOptions struct {
	Force       bool
	Tags        bool
	SetUpstream bool
}

func (o PushOptions) args() []string {
	var args []string
	if o.Force {
		args = append(args, "--force")
	}
	if o.SetUpstream {
		args = append(args, "--set-upstream")
	}
	return args
}

// Remotes returns the configured remotes. The enumeration runs one
// get-url query per remote; a remote whose URL cannot be resolved is
// dropped from the result.
func (r *Repository) Remotes(ctx context.Context) (model.RemoteList, error) {
	out, err := r.run(ctx, "remote")
	if err != nil {
		return model.RemoteList{}, err
	}

	var remotes []model.Remote
	for _, name := range strings.Fields(out) {
		fetchURL, err := r.run(ctx, "remote", "get-url", name)
		if err != nil {
			continue
		}
		remote := model.Remote{Name: name, FetchURL: strings.TrimSpace(fetchURL)}

		// The push URL is stored only when it differs from the fetch URL.
		if pushURL, err := r.run(ctx, "remote", "get-url", "--push", name); err == nil {
			if url := strings.TrimSpace(pushURL); url != remote.FetchURL {
				remote.PushURL = url
			}
		}
		remotes = append(remotes, remote)
	}
	return model.NewRemoteList(remotes), nil
}

// RemoteURL returns the fetch URL of a remote.
func (r *Repository) RemoteURL(ctx context.Context, name string) (string, error) {
	out, err := r.run(ctx, "remote", "get-url", name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// AddRemote registers a new remote.
func (r *Repository) AddRemote(ctx context.Context, name, url string) error {
	_, err := r.run(ctx, "remote", "add", name, url)
	return err
}

// RemoveRemote deletes a remote and its tracking refs.
func (r *Repository) RemoveRemote(ctx context.Context, name string) error {
	_, err := r.run(ctx, "remote", "remove", name)
	return err
}

// RenameRemote renames a remote.
func (r *Repository) RenameRemote(ctx context.Context, oldName, newName string) error {
	_, err := r.run(ctx, "remote", "rename", oldName, newName)
	return err
}

// Fetch downloads objects and refs from a remote.
func (r *Repository) Fetch(ctx context.Context, remote string) error {
	return r.FetchWithOptions(ctx, remote, FetchOptions{})
}

// FetchWithOptions downloads objects and refs; with AllRemotes the remote
// argument is ignored.
func (r *Repository) FetchWithOptions(ctx context.Context, remote string, opts FetchOptions) error {
	args := append([]string{"fetch"}, opts.args()...)
	if !opts.AllRemotes {
		args = append(args, remote)
	}
	_, err := r.run(ctx, args...)
	return err
}

// Push uploads a branch to a remote.
func (r *Repository) Push(ctx context.Context, remote, branch string) error {
	return r.PushWithOptions(ctx, remote, branch, PushOptions{})
}

// PushWithOptions uploads a branch to a remote.
func (r *Repository) PushWithOptions(ctx context.Context, remote, branch string, opts PushOptions) error {
	args := append([]string{"push"}, opts.args()...)
	args = append(args, remote, branch)
	if opts.Tags {
		args = append(args, "--tags")
	}
	_, err := r.run(ctx, args...)
	return err
}

// Clone clones the repository at url into path and opens it.
func Clone(ctx context.Context, url, path string) (*Repository, error) {
	return CloneWithConfig(ctx, url, path, Config{})
}

// CloneWithConfig clones the repository at url into path and opens it.
func CloneWithConfig(ctx context.Context, url, path string, cfg Config) (*Repository, error) {
	r, err := newRepository(path, cfg)
	if err != nil {
		return nil, err
	}

	// clone runs outside the repository directory, like init.
	if _, err := r.runner.Run(ctx, "", "clone", url, path); err != nil {
		r.Close()
		return nil, errm.Wrap(err, "clone repository", "url", url, "path", path)
	}
	return r, nil
}
