package editor

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaneops/templates/internal/errors"
)

func found(names ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range names {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		visual string
		path   []string
		want   []string
		err    error
	}{
		{name: "EDITOR wins", editor: "nvim", visual: "code", want: []string{"nvim"}},
		{name: "VISUAL fallback", visual: "code --wait", want: []string{"code", "--wait"}},
		{name: "blank EDITOR treated as unset", editor: "  ", visual: "vscode", want: []string{"vscode"}},
		{name: "nano", path: []string{"nano", "vi"}, want: []string{"nano"}},
		{name: "vi", path: []string{"vi"}, want: []string{"vi"}},
		{name: "nothing", err: ErrNoEditor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)

			e := &Editor{lookPath: found(tt.path...)}
			got, err := e.command()
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen_RunsEditorWithPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"editing $1\"\n"), 0o755))
	t.Setenv("EDITOR", script)

	var out bytes.Buffer
	e := New()
	e.Stdout = &out

	target := filepath.Join(dir, "compose.yml")
	require.NoError(t, e.Open(t.Context(), target))
	assert.Equal(t, "editing "+target+"\n", out.String())
}

func TestOpen_EditorFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}

	script := filepath.Join(t.TempDir(), "failing-editor")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755))
	t.Setenv("EDITOR", script)

	e := New()
	e.Stdout, e.Stderr = &bytes.Buffer{}, &bytes.Buffer{}
	err := e.Open(t.Context(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running editor")
}
