package contextx_test

import (
	"context"
	"testing"

	"github.com/rs/xid"
	"github.com/stretchr/testify/require"

	"re_deals/pkg/contextx"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	traceID, err := contextx.TraceIDFromContext(ctx)
	rq.Empty(traceID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "trace id: no value in context")

	ctx = contextx.WithTraceID(ctx, "deal-trace")

	traceID, err = contextx.TraceIDFromContext(ctx)
	rq.Equal(contextx.TraceID("deal-trace"), traceID)
	rq.NoError(err)
}

func TestNewTraceID(t *testing.T) {
	rq := require.New(t)

	first, second := contextx.NewTraceID(), contextx.NewTraceID()

	rq.Len(first.String(), 20)
	rq.NotEqual(first, second)

	_, err := xid.FromString(first.String())
	rq.NoError(err)
}
