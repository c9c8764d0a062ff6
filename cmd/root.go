package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "graph-flow-hooks",
	Short: "Lifecycle hooks for the graph-flow MCP tool suite.",
	Long: `graph-flow-hooks ships the Claude Code lifecycle hooks for graph-flow:
a UserPromptSubmit check that reports whether the project has the graph-flow
MCP server configured, and a SessionStart hook that primes the session with
tool guidance when it does. The init subcommand registers the server entry
the hooks look for.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
