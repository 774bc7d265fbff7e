package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/banshee-data/nsphere/internal/monitoring"
	"github.com/banshee-data/nsphere/internal/version"
)

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		logger  *zap.Logger
		opts    convertOptions
	)

	root := &cobra.Command{
		Use:   "nsphere",
		Short: "Convert n-dimensional Cartesian points to generalized spherical coordinates",
		Long: `nsphere reads named points of any dimension from 1 to 1024, converts each
to a radius and dimension-1 angles, and prints the results.

Without --input it reads interactively: the number of points, then for each
point its name, dimension and coordinates. All points are read and converted
before anything is printed; any invalid point aborts the run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = monitoring.NewLogger(cmd.ErrOrStderr(), verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			monitoring.UseZap(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, &opts)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	addConvertFlags(root, &opts)

	root.AddCommand(newConvertCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
