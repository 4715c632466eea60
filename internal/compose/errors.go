package compose

import (
	"fmt"

	"github.com/zaneops/templates/internal/errors"
)

// ErrMissingFile indicates the template has no compose.yml.
var ErrMissingFile = errors.New("missing compose.yml")

// ParseError represents a compose document that is not valid YAML.
type ParseError struct {
	Path string // Path to the file that failed to parse
	Err  error  // Underlying YAML error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid YAML: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
