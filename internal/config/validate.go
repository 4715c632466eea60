package config

import (
	"strings"

	"github.com/zaneops/templates/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not 1.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidJobs indicates a negative worker count.
	ErrInvalidJobs = errors.New("jobs must be >= 0")

	// ErrInvalidDebounce indicates a negative watch debounce.
	ErrInvalidDebounce = errors.New("watch_debounce must be >= 0")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, errors.Wrapf(ErrUnsupportedVersion, "%d", cfg.Version))
	}

	if cfg.TemplatesRoot == "" || strings.ContainsRune(cfg.TemplatesRoot, '\x00') {
		errs = append(errs, &PathError{
			Field: "templates_root",
			Path:  cfg.TemplatesRoot,
			Err:   ErrInvalidPath,
		})
	}

	if cfg.Jobs < 0 {
		errs = append(errs, ErrInvalidJobs)
	}

	if cfg.WatchDebounce < 0 {
		errs = append(errs, ErrInvalidDebounce)
	}

	return errs
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
