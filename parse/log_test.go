package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxbolgarin/gitq/model"
)

func TestCommitLine(t *testing.T) {
	line := "abc123def456|Alice|alice@example.com|1700000000|Bob|bob@example.com|1700000100|p1 p2|fix parser|handles tabs"

	commit, ok, err := CommitLine(line)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, model.Hash("abc123def456"), commit.Hash)
	assert.Equal(t, "Alice", commit.Author.Name)
	assert.Equal(t, "alice@example.com", commit.Author.Email)
	assert.Equal(t, "Bob", commit.Committer.Name)
	assert.Equal(t, "fix parser", commit.Message.Subject)
	assert.Equal(t, "handles tabs", commit.Message.Body)
	assert.Equal(t, []model.Hash{"p1", "p2"}, commit.Parents)
	assert.True(t, commit.IsMerge())

	// The record timestamp is the author timestamp.
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), commit.Timestamp)
	assert.Equal(t, time.Unix(1700000100, 0).UTC(), commit.Committer.When)
}

func TestCommitLineRootCommit(t *testing.T) {
	line := "abc123|Alice|a@e.com|1700000000|Alice|a@e.com|1700000000||initial commit|"

	commit, ok, err := CommitLine(line)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, commit.IsRoot())
	assert.Empty(t, commit.Parents)

	_, hasParent := commit.MainParent()
	assert.False(t, hasParent)
}

func TestCommitLineShortLineIsSkipped(t *testing.T) {
	for _, line := range []string{"", "   ", "abc|def", "a|b|c|d|e|f|g|h"} {
		_, ok, err := CommitLine(line)
		assert.NoError(t, err, line)
		assert.False(t, ok, line)
	}
}

func TestCommitLineBadEpochIsError(t *testing.T) {
	badAuthor := "abc|Alice|a@e.com|not-a-number|Bob|b@e.com|1700000000||subject|"
	_, _, err := CommitLine(badAuthor)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "author timestamp")

	badCommitter := "abc|Alice|a@e.com|1700000000|Bob|b@e.com|oops||subject|"
	_, _, err = CommitLine(badCommitter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "committer timestamp")
}

func TestCommitLineBodyKeepsDelimiters(t *testing.T) {
	line := "abc|Alice|a@e.com|1700000000|Bob|b@e.com|1700000000||subject|body with | pipes | inside"

	commit, ok, err := CommitLine(line)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "body with | pipes | inside", commit.Message.Body)
}

func TestLogOutput(t *testing.T) {
	blob := "abc|Alice|a@e.com|1700000200|Alice|a@e.com|1700000200|p1|second|\n" +
		"def|Bob|b@e.com|1700000100|Bob|b@e.com|1700000100||first|\n" +
		"\n" +
		"garbage line\n"

	log, err := LogOutput(blob)
	require.NoError(t, err)
	require.Equal(t, 2, log.Len())

	// Output order is preserved, most recent first.
	first, _ := log.First()
	assert.Equal(t, model.Hash("abc"), first.Hash)

	commit, ok := log.FindByHash("def")
	require.True(t, ok)
	assert.Equal(t, "first", commit.Message.Subject)
}

func TestLogOutputFailsOnBadRecord(t *testing.T) {
	blob := "abc|Alice|a@e.com|1700000000|Alice|a@e.com|1700000000||good|\n" +
		"def|Bob|b@e.com|broken|Bob|b@e.com|1700000000||bad|\n"

	_, err := LogOutput(blob)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp")
}
