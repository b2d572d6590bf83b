package gitcmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableMissingBinary(t *testing.T) {
	err := Available("definitely-not-a-real-binary-1234")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	// The probe result is memoized, the second call answers the same.
	again := Available("definitely-not-a-real-binary-1234")
	require.Error(t, again)
	assert.Equal(t, err.Error(), again.Error())
}

func TestNewDefaults(t *testing.T) {
	r := New("", time.Second)
	assert.Equal(t, "git", r.Bin())

	custom := New("/usr/local/bin/git", 0)
	assert.Equal(t, "/usr/local/bin/git", custom.Bin())
}

func TestVerb(t *testing.T) {
	assert.Equal(t, "status", verb([]string{"status", "--porcelain"}))
	assert.Equal(t, "<unknown>", verb(nil))
}
