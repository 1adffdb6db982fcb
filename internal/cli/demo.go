package cli

import (
	"github.com/spf13/cobra"

	"github.com/t14raptor/go-match/internal/walkthrough"
)

func newDemoCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the pattern matching tour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return walkthrough.Run(cmd.OutOrStdout(), cfg.Logger)
		},
	}
}
