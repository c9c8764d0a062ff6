package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/graph-flow/graph-flow-hooks/internal/mcpconfig"
	"github.com/spf13/cobra"
)

var (
	initServerCommand string
	initServerArgs    []string
	initProjectDir    string

	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Register the graph-flow server entry in the project's .mcp.json.",
		Long: `Merges a graph-flow entry into .mcp.json at the project root, creating the
file when it does not exist. Entries for other servers are preserved; an
existing file that is not valid JSON is left untouched.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().StringVar(&initServerCommand, "command", "graph-flow", "command that launches the graph-flow MCP server")
	initCmd.Flags().StringSliceVar(&initServerArgs, "arg", []string{"mcp", "serve"}, "arguments passed to the server command")
	initCmd.Flags().StringVar(&initProjectDir, "project-dir", "", "project root (defaults to CLAUDE_PROJECT_DIR or the working directory)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	root := initProjectDir
	if root == "" {
		root = mcpconfig.ResolveRoot("")
	}
	if root == "" {
		return fmt.Errorf("cannot determine the project root, pass --project-dir")
	}

	path := filepath.Join(root, mcpconfig.FileName)
	entry := mcpconfig.ServerEntry{
		Command: initServerCommand,
		Args:    initServerArgs,
		Type:    "stdio",
	}
	if err := mcpconfig.AddServer(path, mcpconfig.ServerName, entry); err != nil {
		return err
	}
	slog.Info("registered server entry", "path", path, "server", mcpconfig.ServerName)
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s server entry to %s. Restart Claude Code to pick it up.\n",
		mcpconfig.ServerName, path)
	return nil
}
