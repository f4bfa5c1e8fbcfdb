package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	assert.Equal(t, "dev", GetFullVersion())

	Version, GitCommit = "1.2.0", "abc123"
	assert.Equal(t, "1.2.0 (abc123)", GetFullVersion())

	BuildDate = "2026-10-01"
	assert.Equal(t, "1.2.0 (abc123, built 2026-10-01)", GetFullVersion())
	assert.Equal(t, "1.2.0", GetVersion())
}
