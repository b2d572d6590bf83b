// Package model defines the immutable record types decoded from git's
// porcelain output and the generic ordered collection they are served in.
package model

// shortHashLen is the number of characters git shows for an abbreviated hash.
const shortHashLen = 7

// Hash is an opaque identifier of a git object (commit, tree, blob, tag).
// Two hashes are equal iff their raw strings are equal, no normalization.
type Hash string

// Short returns the abbreviated form of the hash: the first 7 characters,
// or the whole string when it is shorter than that.
func (h Hash) Short() string {
	if len(h) >= shortHashLen {
		return string(h[:shortHashLen])
	}
	return string(h)
}

// IsZero reports whether the hash is empty.
func (h Hash) IsZero() bool {
	return h == ""
}

func (h Hash) String() string {
	return string(h)
}
