// Package parse decodes git's line-oriented porcelain output into model
// records. Every decoder is a pure function from text to records, no I/O.
//
// Two error policies coexist on purpose and must not be unified: malformed
// status and ref lines are skipped (the output legitimately contains lines
// that are not records, e.g. HEAD pointer annotations), while malformed log
// and stash records fail the whole decode with a descriptive error. Callers
// therefore cannot assume a non-error result represents every source line,
// nor that mostly-well-formed input cannot fail outright.
package parse

import (
	"strconv"
	"strings"
	"time"

	"github.com/maxbolgarin/errm"
)

// unixTime parses a decimal epoch-seconds field into a UTC timestamp.
func unixTime(s string) (time.Time, error) {
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, errm.Errorf("invalid timestamp: %s", s)
	}
	return time.Unix(sec, 0).UTC(), nil
}

// splitLines yields the non-empty trimmed lines of a blob.
func splitLines(blob string) []string {
	raw := strings.Split(blob, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
