package modules_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"bargain/pkg/application/modules"
)

func TestWorker(t *testing.T) {
	rq := require.New(t)

	t.Run("Canceled is a clean stop", func(*testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		g, ctx := errgroup.WithContext(ctx)

		modules.Worker{Name: "bot"}.Run(ctx, g, func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})

		cancel()

		rq.NoError(g.Wait())
	})

	t.Run("Failure is reported", func(*testing.T) {
		g, ctx := errgroup.WithContext(context.Background())

		modules.Worker{Name: "bot"}.Run(ctx, g, func(context.Context) error {
			return errors.New("unauthorized")
		})

		err := g.Wait()
		rq.Error(err)
		rq.ErrorContains(err, "bot.Run: unauthorized")
	})
}
