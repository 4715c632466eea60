// Package logging provides structured logging for the ztpl CLI using slog.
//
// Diagnostics about templates are NOT logs: they are collected in a
// validation report and rendered by the validator package. Logs describe what
// the tool itself is doing (which root it scans, how long a run took, which
// files triggered a watch re-run) and go to stderr.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("validating", "root", root)
//
// Commands retrieve the configured logger from their context with
// [FromContext]; tests use [ForTest].
package logging
