package model

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// Stash is one decoded record of a stash enumeration. Index is assigned
// by position in git's listing order (0 = most recently created) and is
// not a stable identity: dropping an earlier stash shifts all later
// indices down on the next query.
type Stash struct {
	Index     int       `json:"index"`
	Message   string    `json:"message"`
	Hash      Hash      `json:"hash"`
	Branch    string    `json:"branch"`
	CreatedAt time.Time `json:"created_at"`
}

func (s Stash) String() string {
	return fmt.Sprintf("stash@{%d}: %s", s.Index, s.Message)
}

// StashList is the decoded result of one stash enumeration, most recent
// first.
type StashList struct {
	Collection[Stash]
}

// NewStashList builds a stash list preserving enumeration order.
func NewStashList(stashes []Stash) StashList {
	return StashList{Collection: NewCollection(stashes)}
}

// Latest returns the most recent stash (index 0), if any.
func (l StashList) Latest() (Stash, bool) {
	return l.First()
}

// Get returns the stash with the given index.
func (l StashList) Get(index int) (Stash, bool) {
	return l.Find(func(s Stash) bool { return s.Index == index })
}

// FindContaining returns stashes whose message contains substr.
func (l StashList) FindContaining(substr string) iter.Seq[Stash] {
	return l.Filter(func(s Stash) bool { return strings.Contains(s.Message, substr) })
}

// ForBranch returns stashes created on branch.
func (l StashList) ForBranch(branch string) iter.Seq[Stash] {
	return l.Filter(func(s Stash) bool { return s.Branch == branch })
}
