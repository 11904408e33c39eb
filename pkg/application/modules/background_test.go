package modules_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"re_deals/pkg/application/modules"
)

func TestBackground(t *testing.T) {
	rq := require.New(t)

	errPortBusy := errors.New("address already in use")

	g, ctx := errgroup.WithContext(context.Background())

	modules.Background{Name: "probeServer"}.Run(ctx, g, func(context.Context) error {
		return errPortBusy
	})
	modules.Background{Name: "commandBot"}.Run(ctx, g, func(ctx context.Context) error {
		<-ctx.Done()

		return nil
	})

	err := g.Wait()
	rq.ErrorIs(err, errPortBusy)
	rq.EqualError(err, "probeServer.Run: address already in use")
}
