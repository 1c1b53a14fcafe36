package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmdPrintsVersion(t *testing.T) {
	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(newVersionCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "version")
}
