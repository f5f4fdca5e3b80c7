package cli

import (
	"fmt"
	"path/filepath"

	"github.com/rnkit-labs/rnsetup/internal/envfile"
	"github.com/spf13/cobra"
)

var envShowNoRedact bool

func init() {
	envShowCmd.Flags().BoolVar(&envShowNoRedact, "no-redact", false, "Show values without redaction")

	envCmd.AddCommand(envShowCmd)
	envCmd.AddCommand(envCheckCmd)
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Inspect the project's .env file",
	Long:  `Inspect the project's .env file and compare it with .env.example.`,
}

var envShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print .env with sensitive values redacted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir()
		if err != nil {
			return err
		}
		entries, err := envfile.Parse(filepath.Join(dir, envfile.LocalName))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintf(out, "%s is empty.\n", envfile.LocalName)
			return nil
		}
		for _, e := range entries {
			value := e.Value
			if !envShowNoRedact {
				value = envfile.Redact(e.Key, value)
			}
			fmt.Fprintf(out, "%s=%s\n", e.Key, value)
		}
		return nil
	},
}

var envCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "List keys from .env.example that .env is missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir()
		if err != nil {
			return err
		}
		drift, err := envfile.Compare(dir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, k := range drift.Missing {
			fmt.Fprintf(out, "missing: %s\n", k)
		}
		for _, k := range drift.Empty {
			fmt.Fprintf(out, "empty:   %s\n", k)
		}
		for _, k := range drift.Extra {
			fmt.Fprintf(out, "extra:   %s\n", k)
		}
		if !drift.Clean() {
			return fmt.Errorf("%s is out of date with %s", envfile.LocalName, envfile.ExampleName)
		}
		fmt.Fprintf(out, "%s declares every key from %s\n", envfile.LocalName, envfile.ExampleName)
		return nil
	},
}
