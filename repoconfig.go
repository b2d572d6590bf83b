package gitq

import (
	"context"
	"strings"
)

// ConfigGet reads a configuration value from the repository.
func (r *Repository) ConfigGet(ctx context.Context, key string) (string, error) {
	out, err := r.run(ctx, "config", "--get", key)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ConfigSet writes a configuration value into the repository.
func (r *Repository) ConfigSet(ctx context.Context, key, value string) error {
	_, err := r.run(ctx, "config", key, value)
	return err
}

// ConfigUnset removes a configuration key from the repository.
func (r *Repository) ConfigUnset(ctx context.Context, key string) error {
	_, err := r.run(ctx, "config", "--unset", key)
	return err
}

// SetUser sets the commit author identity for the repository.
func (r *Repository) SetUser(ctx context.Context, name, email string) error {
	if err := r.ConfigSet(ctx, "user.name", name); err != nil {
		return err
	}
	return r.ConfigSet(ctx, "user.email", email)
}

// User returns the configured commit author identity.
func (r *Repository) User(ctx context.Context) (name, email string, err error) {
	name, err = r.ConfigGet(ctx, "user.name")
	if err != nil {
		return "", "", err
	}
	email, err = r.ConfigGet(ctx, "user.email")
	if err != nil {
		return "", "", err
	}
	return name, email, nil
}
