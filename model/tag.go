package model

import (
	"iter"
	"sort"
	"strings"
)

// TagKind discriminates lightweight tags from annotated tag objects.
type TagKind string

const (
	TagLightweight TagKind = "lightweight"
	TagAnnotated   TagKind = "annotated"
)

// Tag is one decoded record of a tag enumeration. For annotated tags Hash
// is the dereferenced target (the commit the tag object points to), not
// the tag object's own identifier. Message and Tagger are populated only
// for annotated tags; a lightweight tag never carries either.
type Tag struct {
	Name    string     `json:"name"`
	Hash    Hash       `json:"hash"`
	Kind    TagKind    `json:"kind"`
	Message string     `json:"message,omitempty"`
	Tagger  *Signature `json:"tagger,omitempty"`
}

// IsLightweight reports whether this is a plain ref to a commit.
func (t Tag) IsLightweight() bool {
	return t.Kind == TagLightweight
}

// IsAnnotated reports whether this is a full tag object.
func (t Tag) IsAnnotated() bool {
	return t.Kind == TagAnnotated
}

// TagList is the decoded result of one tag enumeration, sorted by name
// for deterministic iteration regardless of git's output order.
type TagList struct {
	Collection[Tag]
}

// NewTagList builds a tag list re-sorted by name.
func NewTagList(tags []Tag) TagList {
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return TagList{Collection: NewCollection(tags)}
}

// Lightweight returns lightweight tags.
func (l TagList) Lightweight() iter.Seq[Tag] {
	return l.Filter(Tag.IsLightweight)
}

// Annotated returns annotated tags.
func (l TagList) Annotated() iter.Seq[Tag] {
	return l.Filter(Tag.IsAnnotated)
}

// FindTag returns the tag with the exact name.
func (l TagList) FindTag(name string) (Tag, bool) {
	return l.Find(func(t Tag) bool { return t.Name == name })
}

// FindContaining returns tags whose name contains substr.
func (l TagList) FindContaining(substr string) iter.Seq[Tag] {
	return l.Filter(func(t Tag) bool { return strings.Contains(t.Name, substr) })
}

// LightweightCount returns the number of lightweight tags.
func (l TagList) LightweightCount() int {
	return l.Count(Tag.IsLightweight)
}

// AnnotatedCount returns the number of annotated tags.
func (l TagList) AnnotatedCount() int {
	return l.Count(Tag.IsAnnotated)
}
