package model

import (
	"iter"
	"sort"
	"strings"
)

// BranchKind discriminates local branches from remote-tracking ones.
type BranchKind string

const (
	BranchLocal          BranchKind = "local"
	BranchRemoteTracking BranchKind = "remote-tracking"
)

// Branch is one decoded record of a branch enumeration.
type Branch struct {
	Name      string     `json:"name"`
	Kind      BranchKind `json:"kind"`
	IsCurrent bool       `json:"is_current"`
	Hash      Hash       `json:"hash"`
	Upstream  string     `json:"upstream,omitempty"`
}

// IsLocal reports whether this is a local branch.
func (b Branch) IsLocal() bool {
	return b.Kind == BranchLocal
}

// IsRemote reports whether this is a remote-tracking branch.
func (b Branch) IsRemote() bool {
	return b.Kind == BranchRemoteTracking
}

// ShortName returns the branch name without the leading remote segment
// for remote-tracking branches ("origin/main" -> "main").
func (b Branch) ShortName() string {
	if b.IsRemote() {
		if _, rest, ok := strings.Cut(b.Name, "/"); ok {
			return rest
		}
	}
	return b.Name
}

// BranchList is the decoded result of one branch enumeration, sorted by
// name for deterministic iteration regardless of git's output order.
type BranchList struct {
	Collection[Branch]
}

// NewBranchList builds a branch list re-sorted by name.
func NewBranchList(branches []Branch) BranchList {
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return BranchList{Collection: NewCollection(branches)}
}

// Local returns local branches.
func (l BranchList) Local() iter.Seq[Branch] {
	return l.Filter(Branch.IsLocal)
}

// Remote returns remote-tracking branches.
func (l BranchList) Remote() iter.Seq[Branch] {
	return l.Filter(Branch.IsRemote)
}

// Current returns the currently checked-out branch, if any.
func (l BranchList) Current() (Branch, bool) {
	return l.Find(func(b Branch) bool { return b.IsCurrent })
}

// FindBranch returns the branch with the exact name.
func (l BranchList) FindBranch(name string) (Branch, bool) {
	return l.Find(func(b Branch) bool { return b.Name == name })
}

// FindByShortName returns the first branch whose short name equals name,
// useful for remote-tracking branches.
func (l BranchList) FindByShortName(name string) (Branch, bool) {
	return l.Find(func(b Branch) bool { return b.ShortName() == name })
}

// FindContaining returns branches whose name contains substr.
func (l BranchList) FindContaining(substr string) iter.Seq[Branch] {
	return l.Filter(func(b Branch) bool { return strings.Contains(b.Name, substr) })
}

// LocalCount returns the number of local branches.
func (l BranchList) LocalCount() int {
	return l.Count(Branch.IsLocal)
}

// RemoteCount returns the number of remote-tracking branches.
func (l BranchList) RemoteCount() int {
	return l.Count(Branch.IsRemote)
}
