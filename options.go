package gitq

import (
	"strconv"
	"time"
)

// gitDateFormat is the layout git accepts for --since/--until filters.
const gitDateFormat = "2006-01-02 15:04:05"

// LogOptions filters a log query. The zero value means "no filtering".
type LogOptions struct {
	MaxCount      int
	Since         time.Time
	Until         time.Time
	Author        string
	Committer     string
	Grep          string
	Paths         []string
	FollowRenames bool
	MergesOnly    bool
	NoMerges      bool
}

func (o LogOptions) args() []string {
	var args []string
	if o.MaxCount > 0 {
		args = append(args, "-n", strconv.Itoa(o.MaxCount))
	}
	if !o.Since.IsZero() {
		args = append(args, "--since="+o.Since.Format(gitDateFormat))
	}
	if !o.Until.IsZero() {
		args = append(args, "--until="+o.Until.Format(gitDateFormat))
	}
	if o.Author != "" {
		args = append(args, "--author="+o.Author)
	}
	if o.Committer != "" {
		args = append(args, "--committer="+o.Committer)
	}
	if o.Grep != "" {
		args = append(args, "--grep="+o.Grep)
	}
	if o.FollowRenames {
		args = append(args, "--follow")
	}
	if o.MergesOnly {
		args = append(args, "--merges")
	}
	if o.NoMerges {
		args = append(args, "--no-merges")
	}
	if len(o.Paths) > 0 {
		args = append(args, "--")
		args = append(args, o.Paths...)
	}
	return args
}

// DiffMode selects which diff decoder interprets the output.
type DiffMode string

const (
	// DiffUnified is the full patch output with hunks.
	DiffUnified DiffMode = "unified"
	// DiffNameOnly lists changed paths only.
	DiffNameOnly DiffMode = "name-only"
	// DiffNameStatus lists changed paths with their change kind letter.
	DiffNameStatus DiffMode = "name-status"
	// DiffStat is the human histogram summary; per-file counts are not
	// exact in this mode.
	DiffStat DiffMode = "stat"
	// DiffNumstat is the machine-readable per-file count output.
	DiffNumstat DiffMode = "numstat"
)

// DiffOptions shapes a diff query. The zero value produces a unified diff
// of unstaged changes.
type DiffOptions struct {
	Mode                   DiffMode
	ContextLines           int
	IgnoreWhitespace       bool
	IgnoreWhitespaceChange bool
	IgnoreBlankLines       bool
	Cached                 bool
	Paths                  []string
}

func (o DiffOptions) args() []string {
	var args []string
	if o.ContextLines > 0 {
		args = append(args, "-U"+strconv.Itoa(o.ContextLines))
	}
	if o.IgnoreWhitespace {
		args = append(args, "--ignore-all-space")
	}
	if o.IgnoreWhitespaceChange {
		args = append(args, "--ignore-space-change")
	}
	if o.IgnoreBlankLines {
		args = append(args, "--ignore-blank-lines")
	}
	switch o.Mode {
	case DiffNameOnly:
		args = append(args, "--name-only")
	case DiffNameStatus:
		args = append(args, "--name-status")
	case DiffStat:
		args = append(args, "--stat")
	case DiffNumstat:
		args = append(args, "--numstat")
	}
	if o.Cached {
		args = append(args, "--cached")
	}
	return args
}

func (o DiffOptions) pathArgs() []string {
	if len(o.Paths) == 0 {
		return nil
	}
	return append([]string{"--"}, o.Paths...)
}

// StashOptions shapes a stash save.
type StashOptions struct {
	IncludeUntracked bool
	IncludeAll       bool
	KeepIndex        bool
	StagedOnly       bool
	Paths            []string
}

func (o StashOptions) args() []string {
	var args []string
	if o.IncludeUntracked {
		args = append(args, "--include-untracked")
	}
	if o.IncludeAll {
		args = append(args, "--all")
	}
	if o.KeepIndex {
		args = append(args, "--keep-index")
	}
	if o.StagedOnly {
		args = append(args, "--staged")
	}
	if len(o.Paths) > 0 {
		args = append(args, "--")
		args = append(args, o.Paths...)
	}
	return args
}

// StashApplyOptions shapes a stash apply/pop.
type StashApplyOptions struct {
	RestoreIndex bool
	Quiet        bool
}

func (o StashApplyOptions) args() []string {
	var args []string
	if o.RestoreIndex {
		args = append(args, "--index")
	}
	if o.Quiet {
		args = append(args, "--quiet")
	}
	return args
}

// TagOptions shapes tag creation. A non-empty Message creates an annotated
// tag.
type TagOptions struct {
	Message string
	Force   bool
}

func (o TagOptions) args() []string {
	var args []string
	if o.Message != "" {
		args = append(args, "-a", "-m", o.Message)
	}
	if o.Force {
		args = append(args, "--force")
	}
	return args
}
