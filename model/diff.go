package model

import (
	"fmt"
	"iter"
)

// ChangeKind is how a file changed between the two sides of a diff.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeModified ChangeKind = "modified"
	ChangeDeleted  ChangeKind = "deleted"
	ChangeRenamed  ChangeKind = "renamed"
	ChangeCopied   ChangeKind = "copied"
)

// ChangeKindFromChar maps a git status letter to a change kind.
func ChangeKindFromChar(c byte) (ChangeKind, bool) {
	switch c {
	case 'A':
		return ChangeAdded, true
	case 'M':
		return ChangeModified, true
	case 'D':
		return ChangeDeleted, true
	case 'R':
		return ChangeRenamed, true
	case 'C':
		return ChangeCopied, true
	default:
		return "", false
	}
}

// Char returns the git status letter for the kind.
func (k ChangeKind) Char() byte {
	switch k {
	case ChangeAdded:
		return 'A'
	case ChangeDeleted:
		return 'D'
	case ChangeRenamed:
		return 'R'
	case ChangeCopied:
		return 'C'
	default:
		return 'M'
	}
}

// DiffLineKind classifies one line inside a hunk.
type DiffLineKind byte

const (
	DiffLineContext DiffLineKind = iota
	DiffLineAdded
	DiffLineRemoved
)

// DiffLine is one line of a hunk without its leading marker.
type DiffLine struct {
	Kind    DiffLineKind `json:"kind"`
	Content string       `json:"content"`
}

// DiffChunk is one @@ hunk of a unified diff.
type DiffChunk struct {
	OldStart int        `json:"old_start"`
	OldCount int        `json:"old_count"`
	NewStart int        `json:"new_start"`
	NewCount int        `json:"new_count"`
	Lines    []DiffLine `json:"lines,omitempty"`
}

// FileDiff is one decoded file record of a diff query. A record with
// populated counts but no chunks is summary-only (name-only, stat or
// numstat modes); a record with neither counts nor chunks may represent
// a binary change.
type FileDiff struct {
	Path      string      `json:"path"`
	OldPath   string      `json:"old_path,omitempty"`
	Kind      ChangeKind  `json:"kind"`
	Chunks    []DiffChunk `json:"chunks,omitempty"`
	Additions int         `json:"additions"`
	Deletions int         `json:"deletions"`
}

// IsRename reports whether the record carries a prior path.
func (f FileDiff) IsRename() bool {
	return f.OldPath != "" && f.OldPath != f.Path
}

// IsSummaryOnly reports whether the record has counts but no chunk detail.
func (f FileDiff) IsSummaryOnly() bool {
	return len(f.Chunks) == 0 && (f.Additions > 0 || f.Deletions > 0)
}

func (f FileDiff) String() string {
	if f.IsRename() {
		return fmt.Sprintf("%s %s -> %s", f.Kind, f.OldPath, f.Path)
	}
	return fmt.Sprintf("%s %s", f.Kind, f.Path)
}

// DiffTotals aggregates a diff result.
type DiffTotals struct {
	FilesChanged int `json:"files_changed"`
	Insertions   int `json:"insertions"`
	Deletions    int `json:"deletions"`
}

func (t DiffTotals) String() string {
	return fmt.Sprintf("%d files changed, %d insertions(+), %d deletions(-)",
		t.FilesChanged, t.Insertions, t.Deletions)
}

// DiffResult is the decoded result of one diff query.
type DiffResult struct {
	Collection[FileDiff]

	totals DiffTotals
}

// NewDiffResult builds a diff result, deriving totals from the records.
func NewDiffResult(files []FileDiff) DiffResult {
	var totals DiffTotals
	for _, f := range files {
		totals.FilesChanged++
		totals.Insertions += f.Additions
		totals.Deletions += f.Deletions
	}
	return DiffResult{Collection: NewCollection(files), totals: totals}
}

// NewDiffResultWithTotals builds a diff result with caller-provided totals,
// for modes where the summary line is more trustworthy than the per-file
// records.
func NewDiffResultWithTotals(files []FileDiff, totals DiffTotals) DiffResult {
	return DiffResult{Collection: NewCollection(files), totals: totals}
}

// Totals returns the aggregated change counts of the query.
func (d DiffResult) Totals() DiffTotals {
	return d.totals
}

// WithKind returns file records with the given change kind.
func (d DiffResult) WithKind(kind ChangeKind) iter.Seq[FileDiff] {
	return d.Filter(func(f FileDiff) bool { return f.Kind == kind })
}

// FindPath returns the record for an exact path.
func (d DiffResult) FindPath(path string) (FileDiff, bool) {
	return d.Find(func(f FileDiff) bool { return f.Path == path })
}
