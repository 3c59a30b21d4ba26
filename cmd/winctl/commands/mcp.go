package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/1broseidon/winkit/internal/mcp"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server exposing window control tools on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			drv, err := openDriver()
			if err != nil {
				return err
			}
			defer drv.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := mcp.NewServer(drv, logger)
			defer server.Close()

			logger.Info("mcp server starting", "name", mcp.ServerName, "version", mcp.ServerVersion)
			return server.Run(ctx)
		},
	}
}
