package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	origCommit, origDate := Commit, Date
	t.Cleanup(func() { Commit, Date = origCommit, origDate })

	Commit, Date = "unknown", "unknown"
	s := String()
	assert.True(t, strings.HasPrefix(s, "tonal version dev"))
	assert.Contains(t, s, "apca 0.0.98G-4g")

	Commit, Date = "0123456789abcdef", "2026-01-02T03:04:05Z"
	assert.Contains(t, String(), "commit: 01234567,")

	Commit = "abc"
	assert.Contains(t, String(), "commit: abc,", "short hashes are not sliced")
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	assert.Equal(t, Version, info.Version)
	assert.Contains(t, info.Platform, "/")
	assert.NotEmpty(t, info.GoVersion)
}
