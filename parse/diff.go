package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/maxbolgarin/gitq/model"
)

// hunkHeaderRegex matches a unified diff hunk header like
// "@@ -12,3 +12,4 @@"; the counts are optional.
var hunkHeaderRegex = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// NameOnlyOutput decodes `git diff --name-only` output: one path per
// non-empty line. The mode carries no change-kind information, so every
// record defaults to modified.
func NameOnlyOutput(blob string) model.DiffResult {
	var files []model.FileDiff
	for _, line := range splitLines(blob) {
		files = append(files, model.FileDiff{Path: line, Kind: model.ChangeModified})
	}
	return model.NewDiffResult(files)
}

// NameStatusOutput decodes `git diff --name-status` output: a change kind
// letter followed by tab-delimited paths. Renames and copies carry a
// similarity score after the letter ("R100") and two paths, old then new.
// Lines with an unknown kind letter are skipped.
func NameStatusOutput(blob string) model.DiffResult {
	var files []model.FileDiff
	for _, line := range splitLines(blob) {
		parts := strings.Split(line, "\t")
		if len(parts) < 2 || parts[0] == "" {
			continue
		}
		kind, ok := model.ChangeKindFromChar(parts[0][0])
		if !ok {
			continue
		}

		file := model.FileDiff{Path: parts[1], Kind: kind}
		if (kind == model.ChangeRenamed || kind == model.ChangeCopied) && len(parts) >= 3 {
			file.OldPath = parts[1]
			file.Path = parts[2]
		}
		files = append(files, file)
	}
	return model.NewDiffResult(files)
}

// NumstatOutput decodes `git diff --numstat` output: three tab-delimited
// fields per line - additions, deletions, path. The change kind is
// inferred: added when only additions, deleted when only deletions,
// otherwise modified. Binary files report "-" counts, which parse as zero.
func NumstatOutput(blob string) model.DiffResult {
	var files []model.FileDiff
	for _, line := range splitLines(blob) {
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		additions, _ := strconv.Atoi(parts[0])
		deletions, _ := strconv.Atoi(parts[1])

		kind := model.ChangeModified
		switch {
		case additions > 0 && deletions == 0:
			kind = model.ChangeAdded
		case additions == 0 && deletions > 0:
			kind = model.ChangeDeleted
		}

		files = append(files, model.FileDiff{
			Path:      parts[2],
			Kind:      kind,
			Additions: additions,
			Deletions: deletions,
		})
	}
	return model.NewDiffResult(files)
}

// StatOutput decodes `git diff --stat` (human stat) output: per-file
// "path | summary" lines plus a trailing "N files changed, A insertions(+),
// D deletions(-)" line. Per-file insertion/deletion splits are not
// available in this mode; only the totals of the summary line are exact.
// Callers needing per-file counts should use numstat.
func StatOutput(blob string) model.DiffResult {
	var (
		files  []model.FileDiff
		totals model.DiffTotals
	)

	for _, line := range splitLines(blob) {
		if strings.Contains(line, " | ") {
			path, _, _ := strings.Cut(line, " | ")
			files = append(files, model.FileDiff{
				Path: strings.TrimSpace(path),
				Kind: model.ChangeModified,
			})
			continue
		}
		if strings.Contains(line, "files changed") || strings.Contains(line, "file changed") {
			first, _, _ := strings.Cut(line, ",")
			if fields := strings.Fields(first); len(fields) > 0 {
				if n, err := strconv.Atoi(fields[0]); err == nil {
					totals.FilesChanged = n
				}
			}
			totals.Insertions = summaryCount(line, " insertions(+)", " insertion(+)")
			totals.Deletions = summaryCount(line, " deletions(-)", " deletion(-)")
		}
	}

	return model.NewDiffResultWithTotals(files, totals)
}

// summaryCount locates one of the named suffixes in a stat summary line
// and reads the integer immediately before it. Returns zero when absent.
func summaryCount(line string, suffixes ...string) int {
	for _, suffix := range suffixes {
		pos := strings.Index(line, suffix)
		if pos < 0 {
			continue
		}
		start := strings.LastIndexByte(line[:pos], ' ')
		if start < 0 {
			continue
		}
		if n, err := strconv.Atoi(line[start+1 : pos]); err == nil {
			return n
		}
	}
	return 0
}

// ApproxStats extracts changed paths and total insertions/deletions from
// `git show --stat` style output. Per-file counts are approximated by
// redistributing the combined change count across the '+' and '-' glyphs
// of the histogram proportionally - this is inherently lossy and must not
// be treated as exact; the numstat path is the exact alternative. When the
// trailing summary line is present its totals override the approximation.
func ApproxStats(blob string) (paths []string, insertions, deletions int) {
	for _, line := range splitLines(blob) {
		if pos := strings.Index(line, " | "); pos >= 0 {
			paths = append(paths, strings.TrimSpace(line[:pos]))

			statsPart := strings.TrimSpace(line[pos+3:])
			countStr, glyphs, ok := strings.Cut(statsPart, " ")
			if !ok {
				continue
			}
			changes, err := strconv.Atoi(countStr)
			if err != nil {
				continue
			}
			plus := strings.Count(glyphs, "+")
			minus := strings.Count(glyphs, "-")
			if total := plus + minus; total > 0 {
				add := changes * plus / total
				insertions += add
				deletions += changes - add
			}
			continue
		}
		if strings.Contains(line, "files changed") || strings.Contains(line, "file changed") {
			if n := summaryCount(line, " insertions(+)", " insertion(+)"); n > 0 {
				insertions = n
			}
			if n := summaryCount(line, " deletions(-)", " deletion(-)"); n > 0 {
				deletions = n
			}
		}
	}
	return paths, insertions, deletions
}

// UnifiedOutput decodes full unified diff output: per-file headers with
// rename detection, @@ hunks with per-line classification and add/delete
// counts. A file with neither hunks nor counts represents a binary change.
func UnifiedOutput(blob string) model.DiffResult {
	var (
		files []model.FileDiff
		cur   *model.FileDiff
		chunk *model.DiffChunk
	)

	flushChunk := func() {
		if cur != nil && chunk != nil {
			cur.Chunks = append(cur.Chunks, *chunk)
		}
		chunk = nil
	}
	flushFile := func() {
		flushChunk()
		if cur != nil {
			files = append(files, *cur)
		}
		cur = nil
	}

	for _, line := range strings.Split(blob, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			flushFile()
			fields := strings.Fields(line)
			if len(fields) < 4 {
				continue
			}
			cur = &model.FileDiff{
				Path:    strings.TrimPrefix(fields[3], "b/"),
				OldPath: strings.TrimPrefix(fields[2], "a/"),
				Kind:    model.ChangeModified,
			}
			if cur.OldPath == cur.Path {
				cur.OldPath = ""
			}

		case cur == nil:
			// Preamble before the first file header.

		case strings.HasPrefix(line, "new file mode"):
			cur.Kind = model.ChangeAdded
		case strings.HasPrefix(line, "deleted file mode"):
			cur.Kind = model.ChangeDeleted
		case strings.HasPrefix(line, "rename from "):
			cur.Kind = model.ChangeRenamed
			cur.OldPath = strings.TrimPrefix(line, "rename from ")
		case strings.HasPrefix(line, "rename to "):
			cur.Path = strings.TrimPrefix(line, "rename to ")
		case strings.HasPrefix(line, "copy from "):
			cur.Kind = model.ChangeCopied
			cur.OldPath = strings.TrimPrefix(line, "copy from ")
		case strings.HasPrefix(line, "copy to "):
			cur.Path = strings.TrimPrefix(line, "copy to ")

		case strings.HasPrefix(line, "@@"):
			flushChunk()
			m := hunkHeaderRegex.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			chunk = &model.DiffChunk{
				OldStart: atoiDefault(m[1], 0),
				OldCount: atoiDefault(m[2], 1),
				NewStart: atoiDefault(m[3], 0),
				NewCount: atoiDefault(m[4], 1),
			}

		case chunk == nil:
			// index/---/+++/mode/Binary lines between header and first hunk.

		case strings.HasPrefix(line, "+"):
			cur.Additions++
			chunk.Lines = append(chunk.Lines, model.DiffLine{Kind: model.DiffLineAdded, Content: line[1:]})
		case strings.HasPrefix(line, "-"):
			cur.Deletions++
			chunk.Lines = append(chunk.Lines, model.DiffLine{Kind: model.DiffLineRemoved, Content: line[1:]})
		case strings.HasPrefix(line, " "):
			chunk.Lines = append(chunk.Lines, model.DiffLine{Kind: model.DiffLineContext, Content: line[1:]})
		}
	}
	flushFile()

	return model.NewDiffResult(files)
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
