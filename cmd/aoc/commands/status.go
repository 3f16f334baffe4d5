package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"aochelper/internal/cache"
	"aochelper/internal/calendar"
)

func statusCmd(g *globals) *cobra.Command {
	var key cache.Key
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a day has unlocked and is cached",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := g.inputs()
			if err != nil {
				return err
			}
			cached, err := in.Cached(key)
			if err != nil {
				return err
			}
			unlocked := calendar.Check(key.Year, key.Day, g.now()) == nil
			release := calendar.ReleaseTime(key.Year, key.Day).Format(time.RFC3339)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s unlocked=%t cached=%t release=%s\n", key, unlocked, cached, release)
			return err
		},
	}
	addDayFlags(cmd, &key)
	return cmd
}
