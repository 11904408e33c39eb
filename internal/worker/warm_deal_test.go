package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"re_deals/internal/domain"
	"re_deals/internal/domain/value"
	"re_deals/internal/worker"
)

type warmerFunc func(ctx context.Context, id value.DealID) error

func (f warmerFunc) WarmDeal(ctx context.Context, id value.DealID) error {
	return f(ctx, id)
}

type recordingClient struct {
	tasks []*asynq.Task
	err   error
}

func (c *recordingClient) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if c.err != nil {
		return nil, c.err
	}

	c.tasks = append(c.tasks, task)

	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}

func TestAnalysisWarmerHandle(t *testing.T) {
	rq := require.New(t)

	id := value.NewDealID()
	errBoom := errors.New("redis unavailable")

	testCases := []struct {
		name      string
		task      *asynq.Task
		warmErr   error
		wantErr   error
		skipRetry bool
	}{
		{
			name: "Warmed",
			task: mustTask(t, id),
		},
		{
			name:      "Broken payload",
			task:      asynq.NewTask(worker.TypeWarmDeal, []byte("{")),
			skipRetry: true,
		},
		{
			name:      "Bad deal id",
			task:      asynq.NewTask(worker.TypeWarmDeal, []byte(`{"deal_id":"nope"}`)),
			skipRetry: true,
		},
		{
			name:      "Deal deleted",
			task:      mustTask(t, id),
			warmErr:   domain.ErrDealNotFound,
			skipRetry: true,
		},
		{
			name:    "Transient failure",
			task:    mustTask(t, id),
			warmErr: errBoom,
			wantErr: errBoom,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var warmed []value.DealID

			w := worker.NewAnalysisWarmer(warmerFunc(func(_ context.Context, got value.DealID) error {
				warmed = append(warmed, got)
				return tc.warmErr
			}))

			err := w.Handle(context.Background(), tc.task)

			switch {
			case tc.skipRetry:
				rq.ErrorIs(err, asynq.SkipRetry)
			case tc.wantErr != nil:
				rq.ErrorIs(err, tc.wantErr)
				rq.NotErrorIs(err, asynq.SkipRetry)
			default:
				rq.NoError(err)
				rq.Equal([]value.DealID{id}, warmed)
			}
		})
	}
}

func TestAnalysisWarmerHandler(t *testing.T) {
	rq := require.New(t)

	h := worker.NewAnalysisWarmer(nil).Handler()
	rq.Equal(worker.TypeWarmDeal, h.Pattern)
	rq.NotNil(h.Handle)
}

func TestEnqueuer(t *testing.T) {
	rq := require.New(t)

	client := &recordingClient{}
	e := worker.NewEnqueuer(client, "default")

	id := value.NewDealID()
	rq.NoError(e.EnqueueWarmDeal(context.Background(), id))
	rq.Len(client.tasks, 1)
	rq.Equal(worker.TypeWarmDeal, client.tasks[0].Type())
	rq.JSONEq(`{"deal_id":"`+id.String()+`"}`, string(client.tasks[0].Payload()))

	client.err = errors.New("redis unavailable")
	rq.Error(e.EnqueueWarmDeal(context.Background(), id))
}

func mustTask(t *testing.T, id value.DealID) *asynq.Task {
	t.Helper()

	task, err := worker.NewWarmDealTask(id)
	require.NoError(t, err)

	return task
}
