package cli

import (
	"github.com/spf13/cobra"

	"github.com/t14raptor/go-match/internal/server"
)

func newServeCmd(cfg Config) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the greeting routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return server.New(addr, cfg.Logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", cfg.Settings.Server.Addr, "listen address")

	return cmd
}
