package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"rotor/internal/logging"
	mcpserver "rotor/internal/mcp"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio for the grading agent",
	Long: `Starts an MCP server over stdin/stdout exposing the encode, decode,
check_exercise and crack tools, so an agent-driven grader can call the
toolkit directly.

The server monitors for parent process death. When the host disconnects,
the server self-terminates to prevent zombie processes.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	srv := mcpserver.NewServer(cwd)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting rotor MCP server over stdio (parent watchdog active)")
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
