package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/graph-flow/graph-flow-hooks/internal/mcpconfig"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how the project's MCP configuration resolves.",
	Long: `Prints the resolved project root and the exact state of .mcp.json there.
Unlike the hooks, which collapse every problem into "not configured", status
distinguishes a missing file, a malformed file, and a missing entry.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		root := mcpconfig.ResolveRoot("")
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Project root: %s\n", root)

		path := filepath.Join(root, mcpconfig.FileName)
		status := mcpconfig.StatusMissing
		if located, ok := mcpconfig.Locate(root); ok {
			status = mcpconfig.Probe(located, mcpconfig.ServerName)
		}

		switch status {
		case mcpconfig.StatusMissing:
			fmt.Fprintf(out, "No %s found. Run `graph-flow-hooks init` to create one.\n", mcpconfig.FileName)
		case mcpconfig.StatusMalformed:
			fmt.Fprintf(out, "%s exists but is not valid JSON.\n", path)
		case mcpconfig.StatusAbsent:
			fmt.Fprintf(out, "%s has no %q server entry. Run `graph-flow-hooks init` to add it.\n",
				path, mcpconfig.ServerName)
		case mcpconfig.StatusPresent:
			fmt.Fprintf(out, "%q server entry configured in %s.\n", mcpconfig.ServerName, path)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
