package parse

import (
	"strings"

	"github.com/maxbolgarin/gitq/model"
)

// statusMinWidth is two status characters, one separator, at least one
// path byte.
const statusMinWidth = 3

// StatusLine decodes one `git status --porcelain` line of the form
// "<index><worktree> <path>". It returns false for lines below the minimum
// width and for entries that are clean on both axes - git does not report
// clean paths, so such a line carries no signal.
func StatusLine(line string) (model.StatusEntry, bool) {
	if len(line) < statusMinWidth {
		return model.StatusEntry{}, false
	}

	entry := model.StatusEntry{
		Index:    model.IndexStatusFromChar(line[0]),
		Worktree: model.WorktreeStatusFromChar(line[1]),
		Path:     line[3:],
	}
	if entry.Index == model.IndexClean && entry.Worktree == model.WorktreeClean {
		return model.StatusEntry{}, false
	}
	return entry, true
}

// StatusOutput decodes a whole status blob. Lines are not trimmed before
// decoding: a leading space is a meaningful "clean index" marker.
func StatusOutput(blob string) model.Status {
	var entries []model.StatusEntry
	for _, line := range strings.Split(blob, "\n") {
		if entry, ok := StatusLine(line); ok {
			entries = append(entries, entry)
		}
	}
	return model.NewStatus(entries)
}
