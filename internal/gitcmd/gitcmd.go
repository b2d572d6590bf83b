// Package gitcmd runs the external git binary and hands its raw output to
// the decoders. It is the only place in the module that performs I/O.
package gitcmd

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/maxbolgarin/abstract"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
)

const defaultBin = "git"

// availability memoizes the per-binary availability probe: the value is
// availableOK on success, otherwise the error text. Computed lazily on
// first use and reused for the life of the process.
var availability = abstract.NewSafeMap[string, string]()

const availableOK = "ok"

// Available reports whether bin can be executed, probing `bin --version`
// once per binary.
func Available(bin string) error {
	bin = lang.Check(bin, defaultBin)

	switch state := availability.Get(bin); state {
	case "":
	case availableOK:
		return nil
	default:
		return errm.Errorf("%s", state)
	}

	if err := exec.Command(bin, "--version").Run(); err != nil {
		msg := "git not found in PATH: " + bin
		availability.Set(bin, msg)
		return errm.Errorf("%s", msg)
	}
	availability.Set(bin, availableOK)
	return nil
}

// Runner executes git commands in a repository directory.
type Runner struct {
	bin     string
	timeout time.Duration
	log     logze.Logger
}

// New creates a runner for the given binary; an empty bin means "git" from
// PATH.
func New(bin string, timeout time.Duration) *Runner {
	return &Runner{
		bin:     lang.Check(bin, defaultBin),
		timeout: timeout,
		log:     logze.With("component", "gitcmd"),
	}
}

// Bin returns the configured git binary.
func (r *Runner) Bin() string {
	return r.bin
}

// Run executes `git <args>` in dir and returns stdout. On failure the
// error carries the verb and trimmed stderr.
func (r *Runner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.bin, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	timer := abstract.StartTimer()
	err := cmd.Run()
	r.log.Debug("git command finished", "verb", verb(args), "elapsed", timer.ElapsedTime().String())

	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errm.Errorf("git %s failed: %s", verb(args), msg)
	}
	return stdout.String(), nil
}

func verb(args []string) string {
	if len(args) == 0 {
		return "<unknown>"
	}
	return args[0]
}
