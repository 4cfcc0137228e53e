package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/jamesprial/unraid-cli/internal/mcptools"
)

// newMCPCmd builds the MCP serving mode: the read-only catalog and the raw
// query escape hatch exposed as tools over stdio.
func newMCPCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the query catalog as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			srv := server.NewMCPServer(
				"unraid-cli",
				Version,
				server.WithToolCapabilities(false),
			)
			mcptools.RegisterAll(srv, mcptools.CatalogTools(client, opts.audit))

			return server.ServeStdio(srv)
		},
	}
}
