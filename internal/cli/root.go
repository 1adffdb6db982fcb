// Package cli provides the gomatch commands.
package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/t14raptor/go-match/internal/config"
)

var (
	rootShort = "Structural pattern matching for Go values"

	rootLong = `gomatch matches values against case/in style patterns.

It can replay the guided tour of the pattern language, match YAML or JSON
input against a pattern and print the bindings, or serve the greeting routes.`
)

// Config holds what the commands need to run.
type Config struct {
	// Logger is used for diagnostics. Required.
	Logger *zap.Logger

	// Settings is the loaded configuration. Required.
	Settings *config.Config
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	var errs error
	if c.Logger == nil {
		errs = errors.Join(errs, errors.New("cli.Config: missing Logger"))
	}
	if c.Settings == nil {
		errs = errors.Join(errs, errors.New("cli.Config: missing Settings"))
	}

	return errs
}

// NewRootCommand creates the gomatch command with all subcommands.
func NewRootCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cmd := &cobra.Command{
		Use:           "gomatch",
		Short:         rootShort,
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newDemoCmd(cfg))
	cmd.AddCommand(newMatchCmd(cfg))
	cmd.AddCommand(newServeCmd(cfg))

	return cmd, nil
}
