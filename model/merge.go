package model

// MergeOutcome classifies how a merge concluded.
type MergeOutcome string

const (
	// MergeUpToDate means the current branch already contained the merged
	// ref, nothing changed.
	MergeUpToDate MergeOutcome = "up-to-date"
	// MergeFastForward means the branch pointer moved without a merge
	// commit.
	MergeFastForward MergeOutcome = "fast-forward"
	// MergeCommitted means a new merge commit was created.
	MergeCommitted MergeOutcome = "merged"
	// MergeConflicted means the merge stopped on conflicts that need
	// manual resolution.
	MergeConflicted MergeOutcome = "conflicts"
)

// MergeStatus is the decoded result of one merge operation. Hash is the
// fast-forward target or the new merge commit; it is empty for the
// up-to-date and conflicted outcomes. Conflicts lists the unresolved paths
// and is populated only for the conflicted outcome.
type MergeStatus struct {
	Outcome   MergeOutcome `json:"outcome"`
	Hash      Hash         `json:"hash,omitempty"`
	Conflicts []string     `json:"conflicts,omitempty"`
}

// IsClean reports whether the merge concluded without conflicts.
func (s MergeStatus) IsClean() bool {
	return s.Outcome != MergeConflicted
}

// HasConflicts reports whether the merge stopped on conflicts.
func (s MergeStatus) HasConflicts() bool {
	return s.Outcome == MergeConflicted
}
