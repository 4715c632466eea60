package commands

import (
	"github.com/spf13/cobra"

	"github.com/zaneops/templates/internal/catalog"
	"github.com/zaneops/templates/internal/errors"
	"github.com/zaneops/templates/internal/logging"
	"github.com/zaneops/templates/pkg/fileutil"
)

var indexOutput string

func init() {
	indexCmd.Flags().StringVarP(&indexOutput, "output", "o", "",
		"write the index to a file instead of stdout")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the search index documents",
	Long: `Build the search index from the index.md frontmatter of every template.

The output is a JSON array with one document per template:
{id, name, description, tags, url, logoUrl}. Templates without an index.md
are left out.`,
	Example: `  # Print the index
  ztpl index

  # Write it for the search seeder
  ztpl index -o dist/search-index.json`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, _ []string) error {
	entries, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	docs := catalog.SearchDocs(entries)

	if indexOutput == "" {
		return writeJSON(cmd.OutOrStdout(), docs)
	}

	if err := fileutil.AtomicWriteJSON(indexOutput, docs); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing search index"), "Check that the output directory exists and is writable")
	}
	logging.FromContext(cmd.Context()).Info("wrote search index", "path", indexOutput, "documents", len(docs))
	return nil
}
