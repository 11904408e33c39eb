package modules

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"re_deals/pkg/logx"
	"re_deals/pkg/metrics"
)

type AsynqQueues map[string]int

type AsynqHandler struct {
	Pattern string
	Handle  func(context.Context, *asynq.Task) error
}

type AsynqServer struct {
	Redis           asynq.RedisClientOpt
	Concurrency     int
	ShutdownTimeout time.Duration
}

func (s AsynqServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	queues AsynqQueues,
	handlers ...AsynqHandler,
) {
	g.Go(func() error {
		worker := asynq.NewServer(s.Redis, asynq.Config{
			BaseContext:     func() context.Context { return ctx },
			Queues:          queues,
			Concurrency:     s.Concurrency,
			ShutdownTimeout: s.ShutdownTimeout,
			Logger:          asynqLogger{logger: logger(ctx)},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				metrics.TasksFailedTotal.WithLabelValues(task.Type()).Inc()

				logger(ctx).Error("asynq task failed", slog.String(logx.FieldTaskType, task.Type()), logx.Error(err))
			}),
		})

		mux := asynq.NewServeMux()

		for _, h := range handlers {
			mux.HandleFunc(h.Pattern, h.Handle)
		}

		if err := worker.Start(mux); err != nil {
			return fmt.Errorf("asynqServer.Start: %w", err)
		}

		logger(ctx).Info("asynq server started", slog.String(logx.FieldAddress, s.Redis.Addr), slog.Int("redis-db", s.Redis.DB))

		<-ctx.Done()

		worker.Shutdown()

		logger(ctx).Info("asynq server stopped", slog.String(logx.FieldAddress, s.Redis.Addr), slog.Int("redis-db", s.Redis.DB))

		return nil
	})
}

// asynqLogger направляет внутренние сообщения asynq в slog.
type asynqLogger struct {
	logger *slog.Logger
}

func (l asynqLogger) Debug(args ...any) { l.logger.Debug(fmt.Sprint(args...)) }
func (l asynqLogger) Info(args ...any)  { l.logger.Info(fmt.Sprint(args...)) }
func (l asynqLogger) Warn(args ...any)  { l.logger.Warn(fmt.Sprint(args...)) }
func (l asynqLogger) Error(args ...any) { l.logger.Error(fmt.Sprint(args...)) }
func (l asynqLogger) Fatal(args ...any) { l.logger.Error(fmt.Sprint(args...)) }
