package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"aochelper/internal/cache"
)

func fetchCmd(g *globals) *cobra.Command {
	var key cache.Key
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print a day's input, downloading it on first use",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := g.inputs()
			if err != nil {
				return err
			}
			input, err := in.Get(cmd.Context(), key)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), input.Text)
			return err
		},
	}
	addDayFlags(cmd, &key)
	return cmd
}
