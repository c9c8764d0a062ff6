package cmd

import (
	"log/slog"

	"github.com/graph-flow/graph-flow-hooks/internal/hooks"
	"github.com/graph-flow/graph-flow-hooks/internal/mcpconfig"
	"github.com/spf13/cobra"
)

var sessionStartCmd = &cobra.Command{
	Use:   "session-start",
	Short: "SessionStart hook: inject graph-flow tool guidance into the session.",
	Long: `Reads the hook payload from stdin and, when the project's .mcp.json has a
graph-flow server entry, prints the tool guidance as a hookSpecificOutput
envelope. Prints {} otherwise — the user-prompt-submit hook already covers
the unconfigured case. Always exits 0.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		in := hooks.ReadInput(cmd.InOrStdin())
		status := mcpconfig.ProbeRoot(in.CWD)
		slog.Debug("probed project configuration", "event", "SessionStart", "status", status)
		if err := hooks.SessionStart(cmd.OutOrStdout(), status); err != nil {
			slog.Error("writing hook output", "error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionStartCmd)
}
