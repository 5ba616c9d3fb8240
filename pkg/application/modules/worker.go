package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Worker runs a long-lived loop that stops together with ctx. A loop that
// returns context.Canceled after ctx is done counts as a clean stop.
type Worker struct {
	Name string
}

func (w Worker) Run(
	ctx context.Context,
	g *errgroup.Group,
	run func(context.Context) error,
) {
	g.Go(func() error {
		logger(ctx).Info("worker started", slog.String("worker", w.Name))

		if err := run(ctx); err != nil && !(errors.Is(err, context.Canceled) && ctx.Err() != nil) {
			return fmt.Errorf("%s.Run: %w", w.Name, err)
		}

		logger(ctx).Info("worker stopped", slog.String("worker", w.Name))

		return nil
	})
}
