package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zaneops/templates/internal/catalog"
)

var tagsJSON bool

func init() {
	tagsCmd.Flags().BoolVar(&tagsJSON, "json", false, "output as a JSON array")
	rootCmd.AddCommand(tagsCmd)
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every tag used in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		entries, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		tags := catalog.Tags(entries)

		if tagsJSON {
			return writeJSON(cmd.OutOrStdout(), tags)
		}
		for _, t := range tags {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
		return nil
	},
}
