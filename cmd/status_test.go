package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func runStatus(t *testing.T, dir string) string {
	t.Helper()
	t.Setenv("CLAUDE_PROJECT_DIR", dir)
	testRootCmd := &cobra.Command{Use: "graph-flow-hooks"}
	testRootCmd.AddCommand(statusCmd)
	output, err := executeCommand(testRootCmd, "", "status")
	assert.NoError(t, err)
	return output
}

func TestStatusDistinguishesStates(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		dir := t.TempDir()
		output := runStatus(t, dir)
		assert.Contains(t, output, "Project root: "+dir)
		assert.Contains(t, output, "No .mcp.json found")
	})

	t.Run("malformed", func(t *testing.T) {
		dir := t.TempDir()
		writeProjectConfig(t, dir, `{"mcpServers"`)
		assert.Contains(t, runStatus(t, dir), "not valid JSON")
	})

	t.Run("entry absent", func(t *testing.T) {
		dir := t.TempDir()
		writeProjectConfig(t, dir, `{"mcpServers": {"other-tool": {}}}`)
		assert.Contains(t, runStatus(t, dir), `no "graph-flow" server entry`)
	})

	t.Run("entry present", func(t *testing.T) {
		dir := t.TempDir()
		writeProjectConfig(t, dir, `{"mcpServers": {"graph-flow": {"command": "graph-flow"}}}`)
		assert.Contains(t, runStatus(t, dir), `"graph-flow" server entry configured`)
	})
}
