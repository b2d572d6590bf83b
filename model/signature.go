package model

import (
	"fmt"
	"time"
)

// Signature identifies who performed an action (author, committer, tagger)
// and when.
type Signature struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	When  time.Time `json:"when"`
}

// String formats the signature as "Name <email>".
func (s Signature) String() string {
	return fmt.Sprintf("%s <%s>", s.Name, s.Email)
}

// IsZero reports whether the signature carries no identity at all.
func (s Signature) IsZero() bool {
	return s.Name == "" && s.Email == "" && s.When.IsZero()
}
