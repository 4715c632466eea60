package compose

import (
	"io/fs"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/zaneops/templates/internal/errors"
	"github.com/zaneops/templates/pkg/fileutil"
)

// Load reads and parses the compose document at path.
//
// It returns ErrMissingFile when there is no file to read, a *ParseError when
// the content is not YAML, and a wrapped I/O error otherwise.
func Load(path string) (any, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		// ENOTDIR: the template "directory" is a plain file.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, ErrMissingFile
		}
		return nil, errors.Wrap(err, "unreadable compose.yml")
	}

	return Parse(data, path)
}

// Parse parses compose document content. The path is used for error
// context only.
func Parse(data []byte, path string) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return raw, nil
}
