package model

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// CommitMessage is a commit message split into its subject line and
// optional body.
type CommitMessage struct {
	Subject string `json:"subject"`
	Body    string `json:"body,omitempty"`
}

// Full returns the complete message, subject and body separated by a
// blank line.
func (m CommitMessage) Full() string {
	if m.Body == "" {
		return m.Subject
	}
	return m.Subject + "\n\n" + m.Body
}

// IsEmpty reports whether the message has no subject.
func (m CommitMessage) IsEmpty() bool {
	return m.Subject == ""
}

func (m CommitMessage) String() string {
	return m.Full()
}

// Commit is one decoded record of a log query. Timestamp is the author
// timestamp, not the committer timestamp - that is the convention of the
// source format, not necessarily the "true" time of arrival in history.
type Commit struct {
	Hash      Hash          `json:"hash"`
	Author    Signature     `json:"author"`
	Committer Signature     `json:"committer"`
	Message   CommitMessage `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
	Parents   []Hash        `json:"parents,omitempty"`
}

// IsMerge reports whether the commit has two or more parents.
func (c Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// IsRoot reports whether the commit has no parents.
func (c Commit) IsRoot() bool {
	return len(c.Parents) == 0
}

// MainParent returns the first parent, if any.
func (c Commit) MainParent() (Hash, bool) {
	if len(c.Parents) == 0 {
		return "", false
	}
	return c.Parents[0], true
}

// AuthoredBy reports whether author matches the commit author's name or
// email as a substring.
func (c Commit) AuthoredBy(author string) bool {
	return strings.Contains(c.Author.Name, author) || strings.Contains(c.Author.Email, author)
}

// MessageContains reports whether the subject or body contains text,
// case-insensitively.
func (c Commit) MessageContains(text string) bool {
	text = strings.ToLower(text)
	return strings.Contains(strings.ToLower(c.Message.Subject), text) ||
		strings.Contains(strings.ToLower(c.Message.Body), text)
}

func (c Commit) String() string {
	return fmt.Sprintf("%s %s by %s at %s",
		c.Hash.Short(), c.Message.Subject, c.Author.Name,
		c.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC"))
}

// CommitLog is the decoded result of one log query, most recent commit
// first (the order git emitted them in).
type CommitLog struct {
	Collection[Commit]
}

// NewCommitLog builds a log preserving commit order.
func NewCommitLog(commits []Commit) CommitLog {
	return CommitLog{Collection: NewCollection(commits)}
}

// ByAuthor returns commits whose author name or email contains author.
func (l CommitLog) ByAuthor(author string) iter.Seq[Commit] {
	return l.Filter(func(c Commit) bool { return c.AuthoredBy(author) })
}

// Since returns commits at or after date.
func (l CommitLog) Since(date time.Time) iter.Seq[Commit] {
	return l.Filter(func(c Commit) bool { return !c.Timestamp.Before(date) })
}

// Until returns commits at or before date.
func (l CommitLog) Until(date time.Time) iter.Seq[Commit] {
	return l.Filter(func(c Commit) bool { return !c.Timestamp.After(date) })
}

// MessageContaining returns commits whose message contains text.
func (l CommitLog) MessageContaining(text string) iter.Seq[Commit] {
	return l.Filter(func(c Commit) bool { return c.MessageContains(text) })
}

// MergesOnly returns only merge commits.
func (l CommitLog) MergesOnly() iter.Seq[Commit] {
	return l.Filter(Commit.IsMerge)
}

// NoMerges returns commits that are not merges.
func (l CommitLog) NoMerges() iter.Seq[Commit] {
	return l.Filter(func(c Commit) bool { return !c.IsMerge() })
}

// FindByHash returns the commit with the exact hash.
func (l CommitLog) FindByHash(hash Hash) (Commit, bool) {
	return l.Find(func(c Commit) bool { return c.Hash == hash })
}

// FindByShortHash returns the first commit whose abbreviated hash equals
// short.
func (l CommitLog) FindByShortHash(short string) (Commit, bool) {
	return l.Find(func(c Commit) bool { return c.Hash.Short() == short })
}

// MergeCount returns the number of merge commits.
func (l CommitLog) MergeCount() int {
	return l.Count(Commit.IsMerge)
}

// CommitDetails is a commit together with its change statistics. When the
// stats come from human-readable output the per-file insertion/deletion
// split is approximate, see parse.ApproxStats.
type CommitDetails struct {
	Commit       Commit   `json:"commit"`
	FilesChanged []string `json:"files_changed,omitempty"`
	Insertions   int      `json:"insertions"`
	Deletions    int      `json:"deletions"`
}

// TotalChanges returns insertions plus deletions.
func (d CommitDetails) TotalChanges() int {
	return d.Insertions + d.Deletions
}
