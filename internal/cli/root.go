package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/rnkit-labs/rnsetup/internal/branding"
	"github.com/rnkit-labs/rnsetup/internal/config"
	"github.com/rnkit-labs/rnsetup/internal/report"
	"github.com/rnkit-labs/rnsetup/internal/runtime"
	"github.com/rnkit-labs/rnsetup/internal/setup"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose   bool
	targetDir string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every probe and command to stderr")
	rootCmd.PersistentFlags().StringVarP(&targetDir, "dir", "C", "", "Run in this directory instead of the working directory")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` prepares a React or React Native project in the current directory.

It checks the environment (git, Node.js, a package manager), then creates the
configuration files and source skeleton the project is missing: ignore rules,
an example env file, TypeScript, lint and format config, commit hooks, a CI
workflow and a pull request template. Existing files are never modified, so
running it again is safe.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir()
		if err != nil {
			return err
		}
		logger := newLogger(cmd.ErrOrStderr())

		_, err = setup.Run(cmd.Context(), setup.Options{
			Dir:      dir,
			Settings: config.Current(),
			Runner:   &runtime.ExecRunner{Logger: logger},
			Out:      cmd.OutOrStdout(),
			Logger:   logger,
		})
		return err
	},
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the running step.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !reported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// reported is true for errors the command already printed as tagged lines.
func reported(err error) bool {
	return errors.Is(err, setup.ErrAborted) || errors.Is(err, setup.ErrRunFailed) || errors.Is(err, errDoctorFailed)
}

func resolveDir() (string, error) {
	dir := targetDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	return abs, nil
}

func newLogger(w io.Writer) *slog.Logger {
	return report.NewLogger(w, verbose)
}
