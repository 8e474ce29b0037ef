package commands

// Root command for Cobra CLI
// Loads ambient config, initialises logging and runs the chart dispatcher on stdin
// Chart output depends only on the JSON request, never on flags

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trendchart/internal/config"
	"trendchart/internal/features/dispatch"
	logging "trendchart/internal/infra/log"
)

const version = "1.0.0"

func newRootCmd(exitCode *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trendchart",
		Short: "Render a scatter or line chart PNG from JSON on stdin",
		Long: `trendchart reads one JSON object from standard input and renders it as a PNG.

With coordinateX/coordinateY it draws a scatter plot with a fitted linear trend.
With measurements/trendline it draws the measurements against their index
together with the supplied trend line. The image is written to output_path
(default chart.png).`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := runChart(cmd)
			if err != nil {
				return err
			}
			*exitCode = code
			return nil
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func runChart(cmd *cobra.Command) (int, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return dispatch.ExitFailure, err
	}

	if err := logging.Init(logging.Options{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}); err != nil {
		return dispatch.ExitFailure, err
	}
	defer logging.Sync()

	code := dispatch.Run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	logging.LogDebug("Exiting", zap.Int("exit_code", code))
	return code, nil
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	exitCode := dispatch.ExitOK
	cmd := newRootCmd(&exitCode)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return dispatch.ExitFailure
	}
	return exitCode
}

// Execute runs the root command against the process streams and returns the exit code.
func Execute() int {
	return execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
