package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/zaneops/templates/internal/catalog"
	"github.com/zaneops/templates/internal/errors"
)

// loadCatalog reads the catalog under the configured templates root.
func loadCatalog(cmd *cobra.Command) ([]*catalog.Entry, error) {
	root, err := templatesRoot()
	if err != nil {
		return nil, err
	}
	entries, err := catalog.Load(cmd.Context(), root)
	if err != nil {
		if errors.Is(err, errors.ErrRootNotFound) {
			return nil, rootError(err, root)
		}
		return nil, errors.NewUserError(err, "Fix the index.md frontmatter of the template named above")
	}
	return entries, nil
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encoding JSON")
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
