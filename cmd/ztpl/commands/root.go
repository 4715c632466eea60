// Package commands implements the CLI commands for ztpl.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zaneops/templates/cmd"
	"github.com/zaneops/templates/internal/config"
	"github.com/zaneops/templates/internal/errors"
	"github.com/zaneops/templates/internal/logging"
	"github.com/zaneops/templates/internal/paths"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// rootFlag holds the value of the --root flag.
var rootFlag string

// cfg is the loaded configuration. It is nil when loading failed.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./ztpl.yaml or $XDG_CONFIG_HOME/ztpl/ztpl.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootFlag, "root", "r", "",
		"templates root directory (default: "+paths.DefaultTemplatesRoot+")")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("ztpl version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	cfg, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "ztpl",
	Short: "Validate and index the compose template catalog",
	Long: `ztpl maintains a catalog of deployable compose templates.

Each template is a directory under the templates root holding a compose.yml
and an index.md with the catalog metadata in its frontmatter. ztpl checks
every compose document against the rules the deployment platform relies on,
and builds the search index, tag list and detail documents served by the
catalog site.`,
	Example: `  # Validate every template
  ztpl validate

  # Re-validate on every change
  ztpl validate --watch

  # Build the search index
  ztpl index -o dist/search-index.json

  # Find a template
  ztpl search postgres --tags database`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pass only one of -q and -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("ZTPL_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case logging.FormatText:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	default:
		return errors.NewUserError(errors.Newf("unknown log format %q", logFormat), "Use --log-format text or --log-format json")
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces configuration errors for commands that use it.
func checkConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// templatesRoot resolves the templates root from --root or the config.
func templatesRoot() (string, error) {
	root := rootFlag
	if root == "" && cfg != nil {
		root = cfg.TemplatesRoot
	}
	if root == "" {
		root = paths.DefaultTemplatesRoot
	}

	abs, err := paths.ResolveRoot(root)
	if err != nil {
		return "", errors.NewUserError(err, "Pass a valid directory with --root")
	}
	return abs, nil
}

// rootError adds a suggestion to a missing templates root.
func rootError(err error, root string) error {
	if errors.Is(err, errors.ErrRootNotFound) {
		return errors.NewUserError(err,
			fmt.Sprintf("Create %s or point --root (or templates_root in ztpl.yaml) at the templates directory", root))
	}
	return err
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, which is cancelled on
// interrupt by main.
func ExecuteContext(ctx context.Context) error {
	return errors.Wrap(rootCmd.ExecuteContext(ctx), "executing root command")
}

// PrintError writes err and its suggestion, if any, to w. A failed
// validation has already been reported and prints nothing.
func PrintError(w io.Writer, err error) {
	if err == nil || errors.Is(err, errors.ErrValidationFailed) {
		return
	}

	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), unwrapExecute(err))

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "%s %s\n", color.YellowString("Hint:"), exitErr.Suggestion)
	}
}

// unwrapExecute drops the ExitError layer so the message is not prefixed
// by the root command wrapping.
func unwrapExecute(err error) error {
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Err != nil {
		return exitErr.Err
	}
	return err
}
