package model

import (
	"iter"
	"strings"
)

// Remote is one configured remote of a repository. PushURL is set only
// when it differs from FetchURL.
type Remote struct {
	Name     string `json:"name"`
	FetchURL string `json:"fetch_url"`
	PushURL  string `json:"push_url,omitempty"`
}

// PushTarget returns the URL pushes go to: the dedicated push URL when
// configured, the fetch URL otherwise.
func (r Remote) PushTarget() string {
	if r.PushURL != "" {
		return r.PushURL
	}
	return r.FetchURL
}

// RemoteList is the decoded result of one remote enumeration, in git's
// listing order.
type RemoteList struct {
	Collection[Remote]
}

// NewRemoteList builds a remote list preserving enumeration order.
func NewRemoteList(remotes []Remote) RemoteList {
	return RemoteList{Collection: NewCollection(remotes)}
}

// FindRemote returns the remote with the given name.
func (l RemoteList) FindRemote(name string) (Remote, bool) {
	return l.Find(func(r Remote) bool { return r.Name == name })
}

// FindByURL returns remotes whose fetch URL contains substr.
func (l RemoteList) FindByURL(substr string) iter.Seq[Remote] {
	return l.Filter(func(r Remote) bool { return strings.Contains(r.FetchURL, substr) })
}
