// Package cli implements the cobra command tree for voltscan.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"voltscan/internal/app"
	"voltscan/internal/config"
	"voltscan/internal/dialog"
	apperrors "voltscan/internal/errors"
	"voltscan/internal/infrastructure"
	"voltscan/pkg/contracts"
)

// Exit codes returned by Execute
const (
	ExitOK           = 0
	ExitGeneralError = 1
	ExitConfigError  = 2
)

type rootOptions struct {
	configFile string
	outPath    string
}

// NewRootCommand creates the root command. Positional arguments are CSV
// files, directories or glob patterns; without any the user is prompted.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "voltscan [files...]",
		Short: config.AppTitle + ": list the times at which voltage is within 0-100",
		Long: `voltscan reads measurement CSV files (Shift_JIS by default), finds the rows
whose voltage column (5th) lies between 0 and 100 inclusive, and writes the
matching time values (4th column) per file to a .txt, .csv or .xlsx file.

Without arguments the files and the destination are asked for interactively.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       contracts.GetFullVersionString(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, args)
		},
	}

	rootCmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "destination file (.txt, .csv or .xlsx); prompts when empty")
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "path to a YAML config file")

	rootCmd.AddCommand(NewVersionCommand())
	return rootCmd
}

func runScan(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return apperrors.NewConfigError("failed to load configuration", err)
	}

	var paths *config.Paths
	if cfg.Logging.Output != "console" {
		if paths, err = config.GetPaths(); err != nil {
			return apperrors.NewConfigError("failed to resolve application paths", err)
		}
		if err := paths.EnsureDirectories(); err != nil {
			return apperrors.NewStorageError("failed to create log directory", err)
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return apperrors.NewConfigError("failed to initialize logger", err)
	}
	defer infrastructure.CloseLogFile()
	if paths != nil {
		paths.LogPathResolution()
	}

	dialogs := dialog.NewTerminal(cfg,
		dialog.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()),
		dialog.WithLogger(logger))

	preselected, err := expandArgs(cmd.Context(), dialogs, args)
	if err != nil {
		return err
	}

	application, err := app.New(cfg, dialogs, app.WithLogger(logger))
	if err != nil {
		return err
	}
	defer application.Close(context.WithoutCancel(cmd.Context()))

	return application.Run(cmd.Context(), preselected, opts.outPath)
}

// expandArgs resolves positional arguments the same way the file prompt
// resolves typed entries. Arguments that all turn out unusable leave the
// selection empty, which the pipeline reports as no files selected.
func expandArgs(ctx context.Context, dialogs *dialog.Terminal, args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	return dialogs.Expand(ctx, args)
}

// Execute runs rootCmd with an interrupt-aware context and exits with a
// code derived from the returned error.
func Execute(rootCmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	code := exitCode(err)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	os.Exit(code)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case apperrors.IsType(err, apperrors.ErrTypeConfig):
		return ExitConfigError
	default:
		return ExitGeneralError
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
