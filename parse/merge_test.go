package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxbolgarin/gitq/model"
)

func TestMergeResult(t *testing.T) {
	tests := []struct {
		name     string
		stdout   string
		want     model.MergeOutcome
		wantHash model.Hash
	}{
		{
			name:   "already up to date",
			stdout: "Already up to date.\n",
			want:   model.MergeUpToDate,
		},
		{
			name:   "legacy up-to-date spelling",
			stdout: "Already up-to-date.\n",
			want:   model.MergeUpToDate,
		},
		{
			name:     "fast forward with hash",
			stdout:   "Updating abc123d..def456a\nFast-forward\n a.go | 2 +-\n",
			want:     model.MergeFastForward,
			wantHash: "def456a",
		},
		{
			name:   "fast forward without range line",
			stdout: "Fast-forward\n",
			want:   model.MergeFastForward,
		},
		{
			name:   "merge commit created",
			stdout: "Merge made by the 'ort' strategy.\n a.go | 2 +-\n",
			want:   model.MergeCommitted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, hash := MergeResult(tt.stdout)
			assert.Equal(t, tt.want, outcome)
			assert.Equal(t, tt.wantHash, hash)
		})
	}
}

func TestIsMergeConflict(t *testing.T) {
	assert.True(t, IsMergeConflict("CONFLICT (content): Merge conflict in a.go"))
	assert.True(t, IsMergeConflict("Automatic merge failed; fix conflicts and then commit the result."))
	assert.False(t, IsMergeConflict("Merge made by the 'ort' strategy."))
}
