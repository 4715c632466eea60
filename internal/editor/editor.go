// Package editor launches the user's preferred text editor.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/zaneops/templates/internal/errors"
)

// ErrNoEditor indicates no editor could be found.
var ErrNoEditor = errors.New("no editor found; set $EDITOR")

// Editor runs an editor command against a file.
type Editor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// lookPath is exec.LookPath, swapped in tests.
	lookPath func(string) (string, error)
}

// New returns an Editor attached to the process's standard streams.
func New() *Editor {
	return &Editor{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		lookPath: exec.LookPath,
	}
}

// Open edits path and returns when the editor exits.
// $EDITOR and $VISUAL may carry arguments, e.g. "code --wait".
func (e *Editor) Open(ctx context.Context, path string) error {
	argv, err := e.command()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// command returns the editor command line. Fallback chain:
// $EDITOR → $VISUAL → nano → vi
func (e *Editor) command() ([]string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields, nil
		}
	}

	lookPath := e.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, name := range []string{"nano", "vi"} {
		if _, err := lookPath(name); err == nil {
			return []string{name}, nil
		}
	}
	return nil, ErrNoEditor
}
