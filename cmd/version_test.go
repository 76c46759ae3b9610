package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out, err := executeRoot(t, "version", "--short=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Video Editor API")
	assert.Contains(t, out, "Version:      v"+Version)

	out, err = executeRoot(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "v"+Version+"\n", out)
}

func TestVersionCommandFlags(t *testing.T) {
	versionCmd, _, err := NewRootCmd().Find([]string{"version"})
	require.NoError(t, err)
	assert.NotNil(t, versionCmd.Flags().Lookup("short"))
}

func TestRepeatString(t *testing.T) {
	assert.Equal(t, "", repeatString("=", 0))
	assert.Equal(t, "---", repeatString("-", 3))
}
