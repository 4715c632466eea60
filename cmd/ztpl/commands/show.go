package commands

import (
	"github.com/spf13/cobra"

	"github.com/zaneops/templates/internal/catalog"
	"github.com/zaneops/templates/internal/errors"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Print a template's detail document",
	Long: `Print the detail document of a template as JSON: its catalog metadata,
page URL and the full text of its compose.yml.`,
	Example: `  ztpl show postgres`,
	Args:    cobra.ExactArgs(1),
	RunE:    runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	entries, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	entry, err := catalog.Find(entries, args[0])
	if err != nil {
		return errors.NewUserError(err, "Run 'ztpl search' to list template slugs")
	}

	detail, err := catalog.NewDetail(entry)
	if err != nil {
		return errors.NewUserError(err, "Run 'ztpl validate' to check the template")
	}
	return writeJSON(cmd.OutOrStdout(), detail)
}
