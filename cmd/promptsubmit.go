package cmd

import (
	"log/slog"

	"github.com/graph-flow/graph-flow-hooks/internal/hooks"
	"github.com/graph-flow/graph-flow-hooks/internal/mcpconfig"
	"github.com/spf13/cobra"
)

var userPromptSubmitCmd = &cobra.Command{
	Use:   "user-prompt-submit",
	Short: "UserPromptSubmit hook: report whether graph-flow MCP tools are configured.",
	Long: `Reads the hook payload from stdin, checks the project's .mcp.json for a
graph-flow server entry, and prints a one-line status. Wire it in
.claude/settings.json under the UserPromptSubmit event. Always exits 0.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		in := hooks.ReadInput(cmd.InOrStdin())
		status := mcpconfig.ProbeRoot(in.CWD)
		slog.Debug("probed project configuration", "event", "UserPromptSubmit", "status", status)
		if err := hooks.PromptStatus(cmd.OutOrStdout(), status); err != nil {
			slog.Error("writing hook output", "error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(userPromptSubmitCmd)
}
