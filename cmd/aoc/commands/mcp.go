package commands

import (
	"github.com/spf13/cobra"

	"aochelper/internal/mcpserver"
)

func mcpCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve puzzle inputs as MCP tools over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := g.inputs()
			if err != nil {
				return err
			}
			g.log.Info().Str("server", mcpserver.Name).Msg("serving MCP on stdio")
			return mcpserver.Serve(cmd.Context(), mcpserver.New(in, g.now, g.log))
		},
	}
}
