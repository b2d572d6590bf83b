package model

import "iter"

// Collection is an ordered, immutable set of decoded records of one query.
// It is constructed once from a materialized slice and never mutated;
// "removal" style operations are performed by re-issuing the query that
// produced it. All filtering methods return lazy sequences that are
// recomputed on every range, so they can be restarted freely.
type Collection[T any] struct {
	records []T
}

// NewCollection builds a collection that takes ownership of records.
// The caller must not retain the slice.
func NewCollection[T any](records []T) Collection[T] {
	return Collection[T]{records: records}
}

// Len returns the number of records.
func (c Collection[T]) Len() int {
	return len(c.records)
}

// IsEmpty reports whether the collection holds no records.
func (c Collection[T]) IsEmpty() bool {
	return len(c.records) == 0
}

// All iterates over every record in insertion order.
func (c Collection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, r := range c.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Records returns a copy of the underlying records.
func (c Collection[T]) Records() []T {
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// Find returns the first record matching pred.
func (c Collection[T]) Find(pred func(T) bool) (T, bool) {
	for _, r := range c.records {
		if pred(r) {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns a lazy sequence of all records matching pred.
func (c Collection[T]) Filter(pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, r := range c.records {
			if pred(r) && !yield(r) {
				return
			}
		}
	}
}

// Count returns the number of records matching pred.
func (c Collection[T]) Count(pred func(T) bool) int {
	var n int
	for _, r := range c.records {
		if pred(r) {
			n++
		}
	}
	return n
}

// First returns the first record, if any.
func (c Collection[T]) First() (T, bool) {
	if len(c.records) == 0 {
		var zero T
		return zero, false
	}
	return c.records[0], true
}

// Last returns the last record, if any.
func (c Collection[T]) Last() (T, bool) {
	if len(c.records) == 0 {
		var zero T
		return zero, false
	}
	return c.records[len(c.records)-1], true
}

// Collect drains a sequence into a slice, for callers that want a
// materialized result of a Filter.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for r := range seq {
		out = append(out, r)
	}
	return out
}
