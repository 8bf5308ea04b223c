package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avdx/attention/internal/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio",
	Long: `Serves attention's file-backed state (schedule, history, config) to
MCP clients over stdio. Session state belongs to a running overlay
process and is not exposed here.`,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	server := mcp.NewServer(app.configPath, app.history)
	return server.Start(cmd.Context())
}
