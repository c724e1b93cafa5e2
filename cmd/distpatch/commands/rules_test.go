package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesCommand_ListsBuiltinRules(t *testing.T) {
	t.Parallel()

	out, err := executeCommand(t, NewRulesCommand())

	require.NoError(t, err)
	assert.Contains(t, out, "subagent-registry")
	assert.Contains(t, out, "reply")
	assert.Contains(t, out, "__exportAll")
}

func TestRulesCommand_RejectsArgs(t *testing.T) {
	t.Parallel()

	_, err := executeCommand(t, NewRulesCommand(), "extra")

	require.Error(t, err)
}
