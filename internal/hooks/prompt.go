package hooks

import (
	"fmt"
	"io"

	"github.com/graph-flow/graph-flow-hooks/internal/mcpconfig"
)

const configuredLine = "graph-flow MCP tools available: " +
	"c- (checkpoint), k- (knowledge), g- (graph), p- (planning), a- (automation). " +
	"Use ToolSearch to discover specific tools."

const notConfiguredLine = "graph-flow MCP tools are NOT configured for this project. " +
	"Run `/graph-flow:init` to set up MCP tools, then restart Claude Code."

// PromptStatus writes the one-line availability notice for the
// UserPromptSubmit event: a brief reference card when the graph-flow
// server is configured, setup guidance when it is not.
func PromptStatus(w io.Writer, status mcpconfig.Status) error {
	line := notConfiguredLine
	if status.Configured() {
		line = configuredLine
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
