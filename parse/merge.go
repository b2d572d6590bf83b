package parse

import (
	"strings"

	"github.com/maxbolgarin/gitq/model"
)

// MergeResult classifies successful merge stdout. It returns the outcome
// and, for fast-forward output of the form "abc123..def456", the target
// hash extracted from the range line. The hash is empty when the output
// does not carry one (regular merge commits, or fast-forward output
// without a range line); the caller resolves HEAD in that case.
func MergeResult(stdout string) (model.MergeOutcome, model.Hash) {
	// Both spellings occur across git versions.
	if strings.Contains(stdout, "Already up to date") || strings.Contains(stdout, "Already up-to-date") {
		return model.MergeUpToDate, ""
	}
	if !strings.Contains(stdout, "Fast-forward") {
		return model.MergeCommitted, ""
	}

	for _, line := range splitLines(stdout) {
		if !strings.Contains(line, "..") {
			continue
		}
		_, after, _ := strings.Cut(line, "..")
		if fields := strings.Fields(after); len(fields) > 0 {
			return model.MergeFastForward, model.Hash(fields[0])
		}
	}
	return model.MergeFastForward, ""
}

// IsMergeConflict reports whether merge output announces unresolved
// conflicts rather than some other failure.
func IsMergeConflict(text string) bool {
	return strings.Contains(text, "CONFLICT") || strings.Contains(text, "Automatic merge failed")
}
