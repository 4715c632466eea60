package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zaneops/templates/internal/errors"
	"github.com/zaneops/templates/internal/logging"
	"github.com/zaneops/templates/internal/template"
	"github.com/zaneops/templates/internal/validator"
	"github.com/zaneops/templates/internal/watch"
)

var (
	validateJobs          int
	validateFormat        string
	validateReportSuccess bool
	validateWatch         bool
	validateDebounce      time.Duration
)

func init() {
	validateCmd.Flags().IntVarP(&validateJobs, "jobs", "j", 1,
		"templates checked in parallel (0 = one per CPU)")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text",
		"report format: text, json")
	validateCmd.Flags().BoolVar(&validateReportSuccess, "report-success", false,
		"print each template that passes as it is checked")
	validateCmd.Flags().BoolVarP(&validateWatch, "watch", "w", false,
		"re-validate whenever a template changes")
	validateCmd.Flags().DurationVar(&validateDebounce, "debounce", watch.DefaultDelay,
		"quiet period before re-validating in watch mode")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every template's compose document",
	Long: `Validate the compose.yml of every template under the templates root.

Each document must parse as YAML and pass a loose schema: a non-empty
services mapping whose services all name an image. Documents that pass are
then checked for:

  - bind mounts with a relative host path
  - configs of one service mounted on the same target
  - top-level configs using 'file' instead of 'content'
  - malformed zane.http.routes.<N>.* labels

All findings are reported, grouped by template.

Exit codes:
  0 - All templates are valid
  1 - At least one template failed, or the templates root is missing`,
	Example: `  # Validate the default templates root
  ztpl validate

  # Validate another root using four workers
  ztpl validate --root ./templates -j 4

  # Machine-readable report
  ztpl validate --format json

  # Watch for changes
  ztpl validate -w`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	format, err := validator.ParseFormat(validateFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --format text or --format json")
	}

	root, err := templatesRoot()
	if err != nil {
		return err
	}

	reporter := validator.NewReporter(cmd.OutOrStdout(), format)
	runner := &template.Runner{
		Root:   root,
		Jobs:   validateJobs,
		Logger: logger,
	}
	if !cmd.Flags().Changed("jobs") && cfg != nil {
		runner.Jobs = cfg.Jobs
	}
	if validateReportSuccess || (!cmd.Flags().Changed("report-success") && cfg != nil && cfg.ReportSuccess) {
		runner.OnPass = reporter.Pass
	}

	failed, err := validateOnce(ctx, runner, reporter)
	if err != nil {
		return rootError(err, root)
	}

	if !validateWatch {
		if failed {
			return errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)
		}
		return nil
	}

	delay := validateDebounce
	if !cmd.Flags().Changed("debounce") && cfg != nil && cfg.WatchDebounce > 0 {
		delay = cfg.WatchDebounce
	}
	return watchAndValidate(ctx, cmd, runner, reporter, delay)
}

// validateOnce runs the runner and renders its report. It reports whether
// any template failed.
func validateOnce(ctx context.Context, runner *template.Runner, reporter *validator.Reporter) (bool, error) {
	report, _, err := runner.Run(ctx)
	if err != nil {
		return false, err
	}
	if err := reporter.Report(report); err != nil {
		return false, err
	}
	return !report.Empty(), nil
}

func watchAndValidate(ctx context.Context, cmd *cobra.Command, runner *template.Runner, reporter *validator.Reporter, delay time.Duration) error {
	logger := logging.FromContext(ctx)

	w, err := watch.New(runner.Root, delay, logger)
	if err != nil {
		return errors.NewSystemError(err, "Check that the templates root is readable")
	}
	defer w.Close()

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes (Ctrl+C to stop)\n", runner.Root)

	return w.Run(ctx, func(ctx context.Context, events []watch.Event) error {
		logger.Info("re-validating", "changes", len(events))
		_, err := validateOnce(ctx, runner, reporter)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
}
