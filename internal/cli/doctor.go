package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rnkit-labs/rnsetup/internal/config"
	"github.com/rnkit-labs/rnsetup/internal/manifest"
	"github.com/rnkit-labs/rnsetup/internal/report"
	"github.com/rnkit-labs/rnsetup/internal/runtime"
	"github.com/rnkit-labs/rnsetup/internal/scaffold"
	"github.com/rnkit-labs/rnsetup/internal/setup"
	"github.com/spf13/cobra"
)

var errDoctorFailed = errors.New("doctor found problems")

var (
	checkRuntime  bool
	checkTooling  bool
	checkEnv      bool
	checkConfigs  bool
	checkManifest string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify git, Node.js and the package manager")
	doctorCmd.Flags().BoolVar(&checkTooling, "check-tooling", false, "Verify the commit hook manager")
	doctorCmd.Flags().BoolVar(&checkEnv, "check-env", false, "Compare .env against .env.example")
	doctorCmd.Flags().BoolVar(&checkConfigs, "check-configs", false, "Verify generated files are present and JSON configs parse")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment without changing anything",
	Long: `Run the same probes as setup without creating or installing anything.

With no flags every check runs against the target directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir()
		if err != nil {
			return err
		}
		logger := newLogger(cmd.ErrOrStderr())
		env := setup.NewEnv(setup.Options{
			Dir:      dir,
			Settings: config.Current(),
			Runner:   &runtime.ExecRunner{Logger: logger},
			Out:      cmd.OutOrStdout(),
			Logger:   logger,
		})

		all := !checkRuntime && !checkTooling && !checkEnv && !checkConfigs && checkManifest == ""
		out := cmd.OutOrStdout()
		failed := 0

		if all || checkRuntime {
			failed += printDiagnosis(out, env.Reporter, "Runtime check:", setup.DiagnoseRuntime(cmd.Context(), env))
		}
		if all || checkTooling {
			failed += printDiagnosis(out, env.Reporter, "Tooling check:", setup.DiagnoseTooling(env))
		}
		if all || checkEnv {
			failed += printDiagnosis(out, env.Reporter, "Env check:", setup.DiagnoseEnv(dir))
		}
		if all || checkConfigs {
			c, err := scaffold.LoadCatalog()
			if err != nil {
				return err
			}
			failed += printDiagnosis(out, env.Reporter, "Config check:", setup.DiagnoseConfigs(dir, c))
		}
		path := checkManifest
		if path == "" && all && manifest.Exists(dir) {
			path = manifest.Path(dir)
		}
		if path != "" {
			failed += printDiagnosis(out, env.Reporter, "Manifest check:", setup.DiagnoseManifest(path))
		}

		if failed > 0 {
			return fmt.Errorf("%d check(s) failed: %w", failed, errDoctorFailed)
		}
		return nil
	},
}

func printDiagnosis(w io.Writer, r *report.Reporter, title string, d *setup.Diagnosis) int {
	fmt.Fprintln(w, title)
	d.Print(r)
	return d.Failed()
}
