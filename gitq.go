// Package gitq is a typed query layer over the git command line tool. It
// invokes the git binary, decodes its line-oriented porcelain output into
// immutable typed records (see the model package) and serves every query
// result as an ordered, filterable collection.
//
// gitq does not implement version-control semantics itself: it is a
// best-effort decoder for a text protocol it does not control. Queries can
// fail outright on malformed records, and non-error results may silently
// omit lines that are not records - see the parse package for the two
// error policies.
package gitq

import (
	"context"
	"time"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
	"github.com/panjf2000/ants/v2"

	"github.com/maxbolgarin/gitq/internal/gitcmd"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultPoolSize = 8
)

// Config tunes how a Repository invokes git.
type Config struct {
	// GitBin is the git binary to invoke; "git" from PATH when empty.
	GitBin string `yaml:"git_bin" env:"GITQ_GIT_BIN"`
	// Timeout caps every single git invocation.
	Timeout time.Duration `yaml:"timeout" env:"GITQ_TIMEOUT"`
	// PoolSize is the worker pool used for concurrent queries and
	// parallel record decoding.
	PoolSize int `yaml:"pool_size" env:"GITQ_POOL_SIZE"`
}

// PrepareAndValidate fills defaults and rejects nonsensical values.
func (c *Config) PrepareAndValidate() error {
	c.GitBin = lang.Check(c.GitBin, "git")
	if c.Timeout < 0 {
		return errm.Errorf("negative timeout: %s", c.Timeout)
	}
	if c.PoolSize < 0 {
		return errm.Errorf("negative pool size: %d", c.PoolSize)
	}
	c.Timeout = lang.Check(c.Timeout, defaultTimeout)
	c.PoolSize = lang.Check(c.PoolSize, defaultPoolSize)
	return nil
}

// Repository is the query façade over one local git repository. All
// methods are safe for concurrent use: nothing is cached or mutated after
// construction, every query is a one-shot "text in, collection out" call.
type Repository struct {
	path   string
	cfg    Config
	runner *gitcmd.Runner
	pool   *ants.Pool
	log    logze.Logger
}

// Open opens an existing repository at path with default configuration.
func Open(path string) (*Repository, error) {
	return OpenWithConfig(path, Config{})
}

// OpenWithConfig opens an existing repository at path.
func OpenWithConfig(path string, cfg Config) (*Repository, error) {
	r, err := newRepository(path, cfg)
	if err != nil {
		return nil, err
	}
	if _, err := r.run(context.Background(), "rev-parse", "--git-dir"); err != nil {
		r.Close()
		return nil, errm.Wrap(err, "not a git repository", "path", path)
	}
	return r, nil
}

// Init creates a new repository at path and opens it.
func Init(path string, bare bool) (*Repository, error) {
	return InitWithConfig(path, bare, Config{})
}

// InitWithConfig creates a new repository at path and opens it.
func InitWithConfig(path string, bare bool, cfg Config) (*Repository, error) {
	r, err := newRepository(path, cfg)
	if err != nil {
		return nil, err
	}

	args := []string{"init"}
	if bare {
		args = append(args, "--bare")
	}
	args = append(args, path)

	// init runs outside the repository directory, the path is an argument.
	if _, err := r.runner.Run(context.Background(), "", args...); err != nil {
		r.Close()
		return nil, errm.Wrap(err, "init repository", "path", path)
	}
	return r, nil
}

func newRepository(path string, cfg Config) (*Repository, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, errm.Wrap(err, "validate config")
	}
	if err := gitcmd.Available(cfg.GitBin); err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(cfg.PoolSize)
	if err != nil {
		return nil, errm.Wrap(err, "create worker pool")
	}

	return &Repository{
		path:   path,
		cfg:    cfg,
		runner: gitcmd.New(cfg.GitBin, cfg.Timeout),
		pool:   pool,
		log:    logze.With("component", "gitq", "repo", path),
	}, nil
}

// Close releases the repository's worker pool.
func (r *Repository) Close() {
	if r.pool != nil {
		r.pool.Release()
	}
}

// Path returns the repository root path.
func (r *Repository) Path() string {
	return r.path
}

// IsGitAvailable reports whether the configured git binary can be
// executed. The probe runs once per binary and is reused afterwards.
func IsGitAvailable() bool {
	return gitcmd.Available("") == nil
}

// run executes git in the repository directory.
func (r *Repository) run(ctx context.Context, args ...string) (string, error) {
	return r.runner.Run(ctx, r.path, args...)
}

// submit schedules fn on the worker pool, running it inline if the pool
// rejects it.
func (r *Repository) submit(fn func()) {
	if r.pool == nil || r.pool.Submit(fn) != nil {
		fn()
	}
}
