package handler

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"re_deals/internal/domain/dealtest"
	service "re_deals/internal/domain/service/deal"
	"re_deals/internal/domain/value"
	"re_deals/internal/transport/bot/view"
)

func newTestHandler(t *testing.T, published int) (*Handler, []value.DealID) {
	t.Helper()

	rq := require.New(t)
	ctx := context.Background()

	svc := service.NewDealService(
		dealtest.NewMemoryRepository(),
		dealtest.NewMemoryCache(),
		&dealtest.RecordingNotifier{},
		&dealtest.RecordingEnqueuer{},
	)

	ids := make([]value.DealID, 0, published)

	for i := range published {
		deal, err := svc.CreateDeal(ctx, "alice", fmt.Sprintf("deal %d", i), dealtest.RentalWithExit())
		rq.NoError(err)

		_, err = svc.PublishDeal(ctx, "alice", deal.ID)
		rq.NoError(err)

		ids = append(ids, deal.ID)
	}

	return New(svc, "USD").WithPageSize(2), ids
}

func TestPublishedPage(t *testing.T) {
	testCases := []struct {
		name        string
		published   int
		page        int
		wantLen     int
		wantHasNext bool
	}{
		{name: "empty", published: 0, page: 1, wantLen: 0},
		{name: "exact page", published: 2, page: 1, wantLen: 2},
		{name: "first of two", published: 3, page: 1, wantLen: 2, wantHasNext: true},
		{name: "second of two", published: 3, page: 2, wantLen: 1},
		{name: "past the end", published: 3, page: 5, wantLen: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			h, _ := newTestHandler(t, tc.published)

			deals, hasNext, err := h.publishedPage(context.Background(), tc.page)
			rq.NoError(err)
			rq.Len(deals, tc.wantLen)
			rq.Equal(tc.wantHasNext, hasNext)
		})
	}
}

func TestWithPageSize(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name string
		size int
		want int
	}{
		{name: "default on zero", size: 0, want: defaultPageSize},
		{name: "default on negative", size: -3, want: defaultPageSize},
		{name: "custom", size: 10, want: 10},
		{name: "service limit", size: service.MaxLimit, want: service.MaxLimit - 1},
		{name: "above service limit", size: 500, want: service.MaxLimit - 1},
	}

	for _, tc := range testCases {
		h := New(nil, "USD").WithPageSize(tc.size)
		rq.Equal(tc.want, h.pageSize, tc.name)
	}
}

func TestPublishedPageAtServiceLimit(t *testing.T) {
	rq := require.New(t)

	h, _ := newTestHandler(t, service.MaxLimit+1)
	h.WithPageSize(service.MaxLimit)

	deals, hasNext, err := h.publishedPage(context.Background(), 1)
	rq.NoError(err)
	rq.Len(deals, service.MaxLimit-1)
	rq.True(hasNext)
}

func TestDealCard(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	h, ids := newTestHandler(t, 1)

	card := h.dealCard(ctx, ids[0].String())
	rq.Contains(card, "deal 0")
	rq.Contains(card, "IRR 15.01%")

	rq.Equal(view.DealInvalidID, h.dealCard(ctx, "nope"))
	rq.Equal(view.DealNotFound, h.dealCard(ctx, value.NewDealID().String()))
}
