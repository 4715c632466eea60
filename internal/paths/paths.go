package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/zaneops/templates/internal/errors"
)

// AppName names the configuration directory and file.
const AppName = "ztpl"

// Well-known template file names.
const (
	ComposeFileName = "compose.yml"
	IndexFileName   = "index.md"
)

// DefaultTemplatesRoot is the templates root relative to the project root.
const DefaultTemplatesRoot = "src/content/templates"

// ErrInvalidPath indicates the provided path is malformed.
var ErrInvalidPath = errors.New("invalid path")

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory holding ztpl's own configuration file.
// ZTPL_CONFIG_DIR overrides the XDG location.
func ConfigDir() string {
	if dir := os.Getenv("ZTPL_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ResolveRoot returns root as a clean absolute path.
// Relative roots are resolved against the working directory.
func ResolveRoot(root string) (string, error) {
	if root == "" || strings.ContainsRune(root, '\x00') {
		return "", errors.Wrapf(ErrInvalidPath, "templates root %q", root)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrapf(err, "resolving templates root %q", root)
	}
	return abs, nil
}

// TemplateDir returns the directory of template name under root.
func TemplateDir(root, name string) string {
	return filepath.Join(root, name)
}

// ComposeFile returns the compose document path of template name.
func ComposeFile(root, name string) string {
	return filepath.Join(root, name, ComposeFileName)
}

// IndexFile returns the metadata file path of template name.
func IndexFile(root, name string) string {
	return filepath.Join(root, name, IndexFileName)
}
