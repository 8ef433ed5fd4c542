package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/graphcache/internal/app"
)

func (c *CLI) newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Run a scenario against a fresh cache and print lookups and notifications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			jsonLogs, _ := cmd.Flags().GetBool("json-logs")
			logLevel, _ := cmd.Flags().GetString("log-level")

			return c.app.Replay(cmd.Context(), args[0], app.ReplayOptions{
				Watch:    watch,
				LogLevel: logLevel,
				JSONLogs: jsonLogs,
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Replay again whenever the scenario or configuration changes")
	cmd.Flags().Bool("json-logs", false, "Write logs as JSON")
	cmd.Flags().StringP("log-level", "l", "", "Log level: debug, info, warn or error (default from graphcache.yaml)")
	return cmd
}
