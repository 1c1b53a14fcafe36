package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdWithoutArgsShowsHelp(t *testing.T) {
	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "boundsmith")
	assert.Contains(t, out.String(), "boundary conditions")
}

func TestRootCmdRejectsUnknownCommand(t *testing.T) {
	// Without registered subcommands cobra would treat the arg as positional,
	// so the command under test carries one like the production root does.
	cmd := newTestRoot(newVersionCmd)
	cmd.SetArgs([]string{"frobnicate"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
