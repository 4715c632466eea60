package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zaneops/templates/internal/compose"
	"github.com/zaneops/templates/internal/editor"
	"github.com/zaneops/templates/internal/errors"
	"github.com/zaneops/templates/internal/paths"
	"github.com/zaneops/templates/internal/validator"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <template>",
	Short: "Edit a template's compose document and re-check it",
	Long: `Open <root>/<template>/compose.yml in $EDITOR (or $VISUAL, nano, vi) and
validate it once the editor exits.`,
	Example: `  ztpl edit postgres`,
	Args:    cobra.ExactArgs(1),
	RunE:    runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	name := args[0]
	root, err := templatesRoot()
	if err != nil {
		return err
	}

	if info, err := os.Stat(paths.TemplateDir(root, name)); err != nil || !info.IsDir() {
		return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "%s", name),
			"Run 'ztpl search' to list templates")
	}

	path := paths.ComposeFile(root, name)
	ed := editor.New()
	ed.Stdout = cmd.OutOrStdout()
	ed.Stderr = cmd.ErrOrStderr()
	if err := ed.Open(cmd.Context(), path); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to an installed editor")
	}

	report := validator.NewReport()
	report.Add(name, path, compose.Check(path))
	if err := validator.NewReporter(cmd.OutOrStdout(), validator.FormatText).Report(report); err != nil {
		return err
	}
	if !report.Empty() {
		return errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)
	}
	return nil
}
