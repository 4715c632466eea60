package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag of cmd and its children to its default,
// so one test's arguments do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// resetContexts drops the context a previous run left on cmd and its
// children. Cobra only hands the root context down to commands whose own
// context is nil, and setupLogging stores one on the command it runs.
func resetContexts(cmd *cobra.Command) {
	cmd.SetContext(nil) //nolint:staticcheck // nil makes cobra inherit the root context again
	for _, c := range cmd.Commands() {
		resetContexts(c)
	}
}

// execute runs ztpl with args in an isolated environment and returns what
// it wrote to stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)
	resetContexts(rootCmd)
	t.Setenv("ZTPL_CONFIG_DIR", t.TempDir())
	t.Setenv("ZTPL_DEBUG", "")
	t.Setenv("ZTPL_TEMPLATES_ROOT", "")
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

// templateTree creates templates under a fresh root. Each value maps file
// names (compose.yml, index.md) to content.
func templateTree(t *testing.T, templates map[string]map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, files := range templates {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		for file, content := range files {
			if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}
	return root
}
