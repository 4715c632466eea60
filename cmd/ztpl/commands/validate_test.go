package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaneops/templates/internal/errors"
)

const (
	validCompose   = "services:\n  web:\n    image: nginx\n"
	noImageCompose = "services:\n  web:\n    ports: [\"80:80\"]\n"
)

func TestValidateCommand_Metadata(t *testing.T) {
	assert.Equal(t, "validate", validateCmd.Use)
	assert.NotEmpty(t, validateCmd.Short)

	for _, name := range []string{"jobs", "format", "report-success", "watch", "debounce"} {
		assert.NotNil(t, validateCmd.Flags().Lookup(name), "flag %s", name)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("root"))
}

func TestValidate_AllGood(t *testing.T) {
	root := templateTree(t, map[string]map[string]string{
		"foo": {"compose.yml": validCompose},
		"bar": {"compose.yml": validCompose},
	})

	out, _, err := execute(t, "validate", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Validated 2 templates, all good.")
}

func TestValidate_Failures(t *testing.T) {
	root := templateTree(t, map[string]map[string]string{
		"foo": {"compose.yml": validCompose},
		"bar": {"compose.yml": noImageCompose},
		"baz": {"compose.yml": "services:\n  web:\n    image: nginx\n    volumes: [\"./data:/data\"]\n"},
		"qux": {"index.md": "---\nname: Qux\n---\n"},
	})

	out, _, err := execute(t, "validate", "--root", root, "-j", "4")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidationFailed))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))

	assert.Contains(t, out, "Validation failed")
	assert.Contains(t, out, "services.web: must have an 'image' field. Build from source is not supported.")
	assert.Contains(t, out, "relative source path './data'")
	assert.Contains(t, out, "missing compose.yml")
	assert.Contains(t, out, filepath.Join(root, "bar", "compose.yml"))
	assert.NotContains(t, out, "[foo]")

	// grouped in name order
	assert.Less(t, strings.Index(out, "bar"), strings.Index(out, "baz"))
	assert.Less(t, strings.Index(out, "baz"), strings.Index(out, "qux"))
}

func TestValidate_JSON(t *testing.T) {
	root := templateTree(t, map[string]map[string]string{
		"foo": {"compose.yml": validCompose},
		"bar": {"compose.yml": noImageCompose},
	})

	out, _, err := execute(t, "validate", "--root", root, "--format", "json")
	require.Error(t, err)

	var got struct {
		Valid     bool `json:"valid"`
		Templates int  `json:"templates"`
		Errors    map[string]struct {
			Path   string   `json:"path"`
			Errors []string `json:"errors"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Valid)
	assert.Equal(t, 2, got.Templates)
	require.Contains(t, got.Errors, "bar")
	assert.Equal(t, []string{"services.web: must have an 'image' field. Build from source is not supported."}, got.Errors["bar"].Errors)
}

func TestValidate_ReportSuccess(t *testing.T) {
	root := templateTree(t, map[string]map[string]string{
		"alpha": {"compose.yml": validCompose},
		"beta":  {"compose.yml": noImageCompose},
	})

	out, _, err := execute(t, "validate", "--root", root, "--report-success")
	require.Error(t, err)
	assert.Contains(t, out, "✓ alpha")
	assert.NotContains(t, out, "✓ beta")
}

func TestValidate_ConfigFile(t *testing.T) {
	root := templateTree(t, map[string]map[string]string{
		"alpha": {"compose.yml": validCompose},
	})
	cfgPath := filepath.Join(t.TempDir(), "ztpl.yaml")
	cfgData := "version: 1\ntemplates_root: " + root + "\nreport_success: true\njobs: 2\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgData), 0o644))

	out, _, err := execute(t, "--config", cfgPath, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ alpha")
	assert.Contains(t, out, "Validated 1 templates, all good.")
}

func TestValidate_MissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	out, _, err := execute(t, "validate", "--root", missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrRootNotFound))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Empty(t, out, "no report is rendered")
}

func TestValidate_BadFormat(t *testing.T) {
	_, _, err := execute(t, "validate", "--root", t.TempDir(), "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestValidate_RepeatedRuns(t *testing.T) {
	root := templateTree(t, map[string]map[string]string{
		"foo": {"compose.yml": validCompose},
	})

	// The subtest's context is cancelled once it returns.
	t.Run("first", func(t *testing.T) {
		out, _, err := execute(t, "validate", "--root", root)
		require.NoError(t, err)
		assert.Contains(t, out, "Validated 1 templates, all good.")
	})

	out, _, err := execute(t, "validate", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Validated 1 templates, all good.")
}
