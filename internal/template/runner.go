package template

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zaneops/templates/internal/compose"
	"github.com/zaneops/templates/internal/logging"
	"github.com/zaneops/templates/internal/paths"
	"github.com/zaneops/templates/internal/validator"
)

// Runner validates every template under Root.
type Runner struct {
	// Root is the templates root directory.
	Root string
	// Jobs bounds how many templates are checked at once. 1 checks them
	// one after another; 0 uses GOMAXPROCS.
	Jobs int
	// Logger receives progress at debug level. Defaults to a discard logger.
	Logger *slog.Logger
	// OnPass, if set, is called with the name of every template that
	// passes, as soon as it has been checked. It may be called from several
	// goroutines but never concurrently.
	OnPass func(name string)

	mu sync.Mutex
}

// Run checks all templates and returns the report and the number of
// templates checked. The error is non-nil only when the root cannot be
// enumerated or ctx is cancelled; template failures live in the report.
func (r *Runner) Run(ctx context.Context) (*validator.Report, int, error) {
	logger := r.Logger
	if logger == nil {
		logger = logging.NewDiscard()
	}

	names, err := Enumerate(r.Root)
	if err != nil {
		return nil, 0, err
	}

	start := time.Now()
	report := validator.NewReport()
	workers := r.workers(len(names))
	logger.Debug("validating templates", "root", r.Root, "count", len(names), "workers", workers)

	if workers <= 1 {
		for _, name := range names {
			if err := ctx.Err(); err != nil {
				return report, report.Checked(), err
			}
			r.check(logger, report, name)
		}
	} else if err := r.runPool(ctx, logger, report, names, workers); err != nil {
		return report, report.Checked(), err
	}

	logger.Debug("validation finished",
		"checked", report.Checked(),
		"failed", report.Len(),
		"duration", time.Since(start))
	return report, report.Checked(), nil
}

func (r *Runner) workers(n int) int {
	workers := r.Jobs
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return min(workers, n)
}

func (r *Runner) runPool(ctx context.Context, logger *slog.Logger, report *validator.Report, names []string, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, name := range names {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			r.check(logger, report, name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// check validates a single template. Its issues are collected locally and
// handed to the report in one call.
func (r *Runner) check(logger *slog.Logger, report *validator.Report, name string) {
	path := paths.ComposeFile(r.Root, name)
	result := compose.Check(path)

	if report.Add(name, path, result) {
		logger.Debug("template failed", "template", name, "errors", len(result.Errors()))
		return
	}

	logger.Log(context.Background(), logging.LevelTrace, "template passed", "template", name)
	if r.OnPass != nil {
		r.mu.Lock()
		r.OnPass(name)
		r.mu.Unlock()
	}
}
