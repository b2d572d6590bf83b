package parse

import (
	"strings"
	"time"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitq/model"
)

// StashFormat is the --format passed to `git stash list`: ref slot label,
// commit hash, epoch seconds, reflog subject.
const StashFormat = "--format=%gd %H %ct %gs"

// stashFieldCount is the minimum number of space-delimited parts of a
// stash line: slot label, hash, epoch, free-text remainder.
const stashFieldCount = 4

// StashLine decodes one stash list line, e.g.
// "stash@{0} abc123 1234567890 On master: test message". The remainder is
// split on the first colon into a branch label and the message; the branch
// name is recovered by stripping an "On " or "WIP on " prefix, defaulting
// to "unknown" when neither matches. Malformed lines are a hard error, not
// a skip.
func StashLine(index int, line string) (model.Stash, error) {
	parts := strings.SplitN(line, " ", stashFieldCount)
	if len(parts) < stashFieldCount {
		return model.Stash{}, errm.Errorf("invalid stash list format: expected %d parts, got %d", stashFieldCount, len(parts))
	}

	hash := model.Hash(parts[1])

	createdAt, err := unixTime(parts[2])
	if err != nil {
		createdAt = time.Now().UTC()
	}

	remainder := parts[3]
	if remainder == "" {
		return model.Stash{}, errm.New("invalid stash format: missing branch and message information")
	}

	branch, message := "unknown", remainder
	if label, rest, ok := strings.Cut(remainder, ":"); ok {
		message = strings.TrimSpace(rest)
		switch {
		case strings.HasPrefix(label, "WIP on "):
			branch = strings.TrimPrefix(label, "WIP on ")
		case strings.HasPrefix(label, "On "):
			branch = strings.TrimPrefix(label, "On ")
		}
	}

	return model.Stash{
		Index:     index,
		Message:   message,
		Hash:      hash,
		Branch:    branch,
		CreatedAt: createdAt,
	}, nil
}

// StashOutput decodes a whole stash enumeration blob. Indices are assigned
// by line position, 0 being the most recent stash. Any malformed line fails
// the whole query; the caller receives no partial collection.
func StashOutput(blob string) (model.StashList, error) {
	var stashes []model.Stash
	for index, line := range splitLines(blob) {
		stash, err := StashLine(index, line)
		if err != nil {
			return model.StashList{}, err
		}
		stashes = append(stashes, stash)
	}
	return model.NewStashList(stashes), nil
}
