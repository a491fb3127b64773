package cli

import (
	"os"

	"github.com/spf13/cobra"

	"pattern-gateway/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var logFormat string
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "patterns",
		Short:        "Composite and proxy examples (shipment weights, access control)",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := logger.Setup(logger.Config{
				Debug:  debug,
				Format: logFormat,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			cleanup = c
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup == nil {
				return nil
			}
			return cleanup()
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(compositeCmd())
	cmd.AddCommand(proxyCmd())
	return cmd
}
