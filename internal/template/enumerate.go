package template

import (
	"os"
	"strings"

	"github.com/zaneops/templates/internal/errors"
)

// Enumerate returns the names of the template candidates under root,
// sorted. Hidden entries are ignored.
func Enumerate(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "reading templates root %s", root), errors.ErrRootNotFound)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	// os.ReadDir sorts by file name.
	return names, nil
}
