package commands

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaneops/templates/internal/errors"
)

// fakeEditor installs a shell script as $EDITOR that writes content to the
// file it is given.
func fakeEditor(t *testing.T, content string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}
	src := filepath.Join(t.TempDir(), "content.yml")
	require.NoError(t, os.WriteFile(src, []byte(content), 0o644))
	script := filepath.Join(t.TempDir(), "fake-editor")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\ncp "+src+" \"$1\"\n"), 0o755))
	t.Setenv("EDITOR", script)
	t.Setenv("VISUAL", "")
}

func TestEdit_ValidatesAfterEditing(t *testing.T) {
	root := templateTree(t, map[string]map[string]string{
		"web": {"compose.yml": validCompose},
	})
	fakeEditor(t, noImageCompose)

	out, _, err := execute(t, "edit", "web", "--root", root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidationFailed))
	assert.Contains(t, out, "services.web: must have an 'image' field")
}

func TestEdit_Passes(t *testing.T) {
	root := templateTree(t, map[string]map[string]string{
		"web": {"index.md": "---\nname: Web\n---\n"},
	})
	fakeEditor(t, validCompose)

	out, _, err := execute(t, "edit", "web", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Validated 1 templates, all good.")
}

func TestEdit_UnknownTemplate(t *testing.T) {
	_, _, err := execute(t, "edit", "ghost", "--root", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}
