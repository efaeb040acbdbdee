package cli

import (
	"bytes"
	"testing"

	"github.com/rileyhilliard/netmon/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// isolate runs the test in an empty directory with no global config and no
// dotenv file.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	prev := config.EnvFile
	config.EnvFile = ""
	t.Cleanup(func() { config.EnvFile = prev })
	return dir
}

// resetFlags puts every flag in the tree back to its default, since cobra
// commands are package globals shared between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCLI runs the root command with args and returns what it printed.
func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}
