package parse

import (
	"strings"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitq/model"
)

// LogFormat is the --pretty format producing the records LogOutput decodes:
// hash|author name|author email|author epoch|committer name|committer email|
// committer epoch|parent hashes|subject|body.
//
// Known limitation: the '|' delimiter is not escaped by git, so a subject
// or body containing a literal '|' is mis-split. This reproduces the source
// protocol as-is; switching to a control character would silently change
// observable behavior for existing format consumers.
const LogFormat = "--pretty=format:%H|%an|%ae|%at|%cn|%ce|%ct|%P|%s|%b"

// logFieldCount is the minimum number of '|'-separated fields of a record;
// the trailing body field may be absent.
const logFieldCount = 9

// CommitLine decodes one log record line. It returns ok=false for lines
// with fewer than nine fields (skip), and an error when an epoch field of
// a structurally complete record does not parse (the whole query fails).
func CommitLine(line string) (model.Commit, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return model.Commit{}, false, nil
	}

	// The last split is capped so an arbitrarily long body is never
	// re-split on its own '|' characters.
	parts := strings.SplitN(line, "|", logFieldCount+1)
	if len(parts) < logFieldCount {
		return model.Commit{}, false, nil
	}

	authorAt, err := unixTime(parts[3])
	if err != nil {
		return model.Commit{}, false, errm.Wrap(err, "author timestamp")
	}
	committerAt, err := unixTime(parts[6])
	if err != nil {
		return model.Commit{}, false, errm.Wrap(err, "committer timestamp")
	}

	var parents []model.Hash
	for _, p := range strings.Fields(parts[7]) {
		parents = append(parents, model.Hash(p))
	}

	var body string
	if len(parts) > logFieldCount {
		body = parts[9]
	}

	commit := model.Commit{
		Hash:      model.Hash(parts[0]),
		Author:    model.Signature{Name: parts[1], Email: parts[2], When: authorAt},
		Committer: model.Signature{Name: parts[4], Email: parts[5], When: committerAt},
		Message:   model.CommitMessage{Subject: parts[8], Body: body},
		// Commit time is the author time by convention of the format.
		Timestamp: authorAt,
		Parents:   parents,
	}
	return commit, true, nil
}

// LogOutput decodes a whole log blob, one record per line. A record that
// fails to decode fails the whole query; under-length lines are skipped.
func LogOutput(blob string) (model.CommitLog, error) {
	var commits []model.Commit
	for _, line := range splitLines(blob) {
		commit, ok, err := CommitLine(line)
		if err != nil {
			return model.CommitLog{}, err
		}
		if !ok {
			continue
		}
		commits = append(commits, commit)
	}
	return model.NewCommitLog(commits), nil
}
