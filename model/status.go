package model

// IndexStatus is the state of a path in the index relative to HEAD.
type IndexStatus byte

const (
	IndexClean IndexStatus = iota
	IndexModified
	IndexAdded
	IndexDeleted
	IndexRenamed
	IndexCopied
)

// IndexStatusFromChar maps a porcelain index character to its status.
// Unrecognized characters (including space) map to IndexClean, so a new
// porcelain code silently yields "no signal" rather than an error.
func IndexStatusFromChar(c byte) IndexStatus {
	switch c {
	case 'M':
		return IndexModified
	case 'A':
		return IndexAdded
	case 'D':
		return IndexDeleted
	case 'R':
		return IndexRenamed
	case 'C':
		return IndexCopied
	default:
		return IndexClean
	}
}

// Char returns the porcelain character for the status.
func (s IndexStatus) Char() byte {
	switch s {
	case IndexModified:
		return 'M'
	case IndexAdded:
		return 'A'
	case IndexDeleted:
		return 'D'
	case IndexRenamed:
		return 'R'
	case IndexCopied:
		return 'C'
	default:
		return ' '
	}
}

func (s IndexStatus) String() string {
	return string(s.Char())
}

// WorktreeStatus is the state of a path in the working tree relative to
// the index.
type WorktreeStatus byte

const (
	WorktreeClean WorktreeStatus = iota
	WorktreeModified
	WorktreeDeleted
	WorktreeUntracked
	WorktreeIgnored
)

// WorktreeStatusFromChar maps a porcelain worktree character to its status.
// Unrecognized characters map to WorktreeClean, same policy as the index
// table.
func WorktreeStatusFromChar(c byte) WorktreeStatus {
	switch c {
	case 'M':
		return WorktreeModified
	case 'D':
		return WorktreeDeleted
	case '?':
		return WorktreeUntracked
	case '!':
		return WorktreeIgnored
	default:
		return WorktreeClean
	}
}

// Char returns the porcelain character for the status.
func (s WorktreeStatus) Char() byte {
	switch s {
	case WorktreeModified:
		return 'M'
	case WorktreeDeleted:
		return 'D'
	case WorktreeUntracked:
		return '?'
	case WorktreeIgnored:
		return '!'
	default:
		return ' '
	}
}

func (s WorktreeStatus) String() string {
	return string(s.Char())
}

// StatusEntry is one path of a status report with its two independent
// status axes. An entry that is clean on both axes is never materialized,
// git does not report clean paths in porcelain output.
type StatusEntry struct {
	Path     string         `json:"path"`
	Index    IndexStatus    `json:"index_status"`
	Worktree WorktreeStatus `json:"worktree_status"`
}

// IsStaged reports whether the entry has changes recorded in the index.
func (e StatusEntry) IsStaged() bool {
	return e.Index != IndexClean
}

// IsUnstaged reports whether the entry has changes in the working tree.
func (e StatusEntry) IsUnstaged() bool {
	return e.Worktree != WorktreeClean
}

// Status is the decoded result of one status query.
type Status struct {
	Collection[StatusEntry]
}

// NewStatus builds a status report preserving entry order.
func NewStatus(entries []StatusEntry) Status {
	return Status{Collection: NewCollection(entries)}
}

// IsClean reports whether the working tree and index have no changes.
func (s Status) IsClean() bool {
	return s.IsEmpty()
}

// HasChanges is the inverse of IsClean.
func (s Status) HasChanges() bool {
	return !s.IsClean()
}

// Staged returns entries with changes in the index.
func (s Status) Staged() []StatusEntry {
	return Collect(s.Filter(StatusEntry.IsStaged))
}

// Unstaged returns entries with changes in the working tree.
func (s Status) Unstaged() []StatusEntry {
	return Collect(s.Filter(StatusEntry.IsUnstaged))
}

// Untracked returns entries git does not track yet.
func (s Status) Untracked() []StatusEntry {
	return s.WithWorktreeStatus(WorktreeUntracked)
}

// Ignored returns entries matched by an ignore rule.
func (s Status) Ignored() []StatusEntry {
	return s.WithWorktreeStatus(WorktreeIgnored)
}

// WithIndexStatus returns entries whose index axis equals status.
func (s Status) WithIndexStatus(status IndexStatus) []StatusEntry {
	return Collect(s.Filter(func(e StatusEntry) bool { return e.Index == status }))
}

// WithWorktreeStatus returns entries whose worktree axis equals status.
func (s Status) WithWorktreeStatus(status WorktreeStatus) []StatusEntry {
	return Collect(s.Filter(func(e StatusEntry) bool { return e.Worktree == status }))
}

// FindPath returns the entry for an exact path.
func (s Status) FindPath(path string) (StatusEntry, bool) {
	return s.Find(func(e StatusEntry) bool { return e.Path == path })
}
