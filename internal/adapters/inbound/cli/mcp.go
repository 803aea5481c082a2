package cli

import (
	mcpadapter "github.com/openkraft/commitkraft/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the commitkraft MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start commitkraft MCP server (stdio)",
		Long:  "Start the commitkraft MCP server using stdio transport. This lets AI coding assistants lint commit messages and read the commit conventions before committing.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, absPath, err := flags.service(cmd)
			if err != nil {
				return err
			}
			s := mcpadapter.NewCommitKraftMCPServer(svc, absPath)
			return server.ServeStdio(s)
		},
	}

	flags.register(cmd)

	return cmd
}
