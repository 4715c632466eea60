package fileutil

import (
	"io"
	"os"

	"github.com/zaneops/templates/internal/errors"
)

// MaxFileSize is the largest template file ztpl will read (1MB).
// Compose documents and metadata files are a few KB; anything near this
// size is not a template.
const MaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded the read limit.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads a file up to MaxFileSize.
func ReadFileWithLimit(path string) ([]byte, error) {
	return ReadFile(path, MaxFileSize)
}

// ReadFile reads at most limit bytes from path and fails with
// ErrFileTooLarge if the file holds more. Errors from opening the file keep
// their identity, so errors.Is(err, fs.ErrNotExist) works on the result.
func ReadFile(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		if info.IsDir() {
			return nil, errors.Newf("%s is a directory", path)
		}
		if info.Size() > limit {
			return nil, ErrFileTooLarge
		}
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if int64(len(data)) > limit {
		return nil, ErrFileTooLarge
	}

	return data, nil
}
