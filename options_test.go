package gitq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogOptionsArgs(t *testing.T) {
	opts := LogOptions{
		MaxCount: 10,
		Since:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Author:   "alice",
		Grep:     "fix",
		NoMerges: true,
		Paths:    []string{"parse/", "model/"},
	}

	assert.Equal(t, []string{
		"-n", "10",
		"--since=2024-01-01 00:00:00",
		"--author=alice",
		"--grep=fix",
		"--no-merges",
		"--", "parse/", "model/",
	}, opts.args())
}

func TestLogOptionsZeroValueIsNoFiltering(t *testing.T) {
	assert.Empty(t, LogOptions{}.args())
}

func TestDiffOptionsArgs(t *testing.T) {
	opts := DiffOptions{
		Mode:         DiffNumstat,
		ContextLines: 5,
		Cached:       true,
	}
	assert.Equal(t, []string{"-U5", "--numstat", "--cached"}, opts.args())

	assert.Empty(t, DiffOptions{}.args())
	assert.Equal(t, []string{"--name-only"}, DiffOptions{Mode: DiffNameOnly}.args())
	assert.Equal(t, []string{"--name-status"}, DiffOptions{Mode: DiffNameStatus}.args())
	assert.Equal(t, []string{"--stat"}, DiffOptions{Mode: DiffStat}.args())
}

func TestDiffOptionsPathArgs(t *testing.T) {
	assert.Nil(t, DiffOptions{}.pathArgs())
	assert.Equal(t, []string{"--", "a.go"}, DiffOptions{Paths: []string{"a.go"}}.pathArgs())
}

func TestStashOptionsArgs(t *testing.T) {
	opts := StashOptions{IncludeUntracked: true, KeepIndex: true}
	assert.Equal(t, []string{"--include-untracked", "--keep-index"}, opts.args())

	assert.Empty(t, StashOptions{}.args())
}

func TestStashApplyOptionsArgs(t *testing.T) {
	assert.Equal(t, []string{"--index"}, StashApplyOptions{RestoreIndex: true}.args())
	assert.Empty(t, StashApplyOptions{}.args())
}

func TestTagOptionsArgs(t *testing.T) {
	assert.Empty(t, TagOptions{}.args())
	assert.Equal(t, []string{"-a", "-m", "v1"}, TagOptions{Message: "v1"}.args())
	assert.Equal(t, []string{"--force"}, TagOptions{Force: true}.args())
}

func TestMergeOptionsArgs(t *testing.T) {
	assert.Empty(t, MergeOptions{}.args())
	assert.Equal(t, []string{"--ff-only"}, MergeOptions{FastForward: FastForwardOnly}.args())
	assert.Equal(t,
		[]string{"--no-ff", "-s", "theirs", "--no-commit", "-m", "merge it"},
		MergeOptions{FastForward: FastForwardNever, Strategy: MergeTheirs, NoCommit: true, Message: "merge it"}.args())
}

func TestFetchOptionsArgs(t *testing.T) {
	assert.Empty(t, FetchOptions{}.args())
	assert.Equal(t, []string{"--prune", "--tags", "--all"},
		FetchOptions{Prune: true, Tags: true, AllRemotes: true}.args())
}

func TestPushOptionsArgs(t *testing.T) {
	assert.Empty(t, PushOptions{}.args())
	assert.Equal(t, []string{"--force", "--set-upstream"},
		PushOptions{Force: true, SetUpstream: true}.args())
}

func TestRestoreOptionsArgs(t *testing.T) {
	// The worktree is restored when nothing narrows the target.
	assert.Equal(t, []string{"--worktree"}, RestoreOptions{}.args())
	assert.Equal(t, []string{"--staged"}, RestoreOptions{Staged: true}.args())
	assert.Equal(t, []string{"--staged", "--worktree"},
		RestoreOptions{Staged: true, Worktree: true}.args())
	assert.Equal(t, []string{"--source", "HEAD~1", "--worktree"},
		RestoreOptions{Source: "HEAD~1"}.args())
}

func TestRemoveOptionsArgs(t *testing.T) {
	assert.Empty(t, RemoveOptions{}.args())
	assert.Equal(t, []string{"--force", "-r", "--cached", "--ignore-unmatch"},
		RemoveOptions{Force: true, Recursive: true, Cached: true, IgnoreUnmatch: true}.args())
}

func TestMoveOptionsArgs(t *testing.T) {
	assert.Empty(t, MoveOptions{}.args())
	assert.Equal(t, []string{"-f", "-n"}, MoveOptions{Force: true, DryRun: true}.args())
}

func TestConfigPrepareAndValidate(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.PrepareAndValidate())
	assert.Equal(t, "git", cfg.GitBin)
	assert.Equal(t, defaultTimeout, cfg.Timeout)
	assert.Equal(t, defaultPoolSize, cfg.PoolSize)

	bad := Config{Timeout: -time.Second}
	assert.Error(t, bad.PrepareAndValidate())

	badPool := Config{PoolSize: -1}
	assert.Error(t, badPool.PrepareAndValidate())
}

func TestStashRef(t *testing.T) {
	assert.Equal(t, "stash@{0}", stashRef(0))
	assert.Equal(t, "stash@{3}", stashRef(3))
}
