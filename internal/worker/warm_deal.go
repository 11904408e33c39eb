package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"re_deals/internal/domain"
	"re_deals/internal/domain/value"
	"re_deals/pkg/application/modules"
	"re_deals/pkg/contextx"
	"re_deals/pkg/logx"
)

const (
	TypeWarmDeal = "deal:warm"

	warmTimeout  = time.Minute
	warmMaxRetry = 3
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

type warmDealPayload struct {
	DealID string `json:"deal_id"`
}

func NewWarmDealTask(id value.DealID) (*asynq.Task, error) {
	payload, err := json.Marshal(warmDealPayload{DealID: id.String()})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TypeWarmDeal, payload), nil
}

type dealWarmer interface {
	WarmDeal(ctx context.Context, id value.DealID) error
}

// AnalysisWarmer считает расчёт и стандартную сетку сделки после сохранения.
type AnalysisWarmer struct {
	warmer dealWarmer
}

func NewAnalysisWarmer(warmer dealWarmer) AnalysisWarmer {
	return AnalysisWarmer{warmer: warmer}
}

func (w AnalysisWarmer) Handler() modules.AsynqHandler {
	return modules.AsynqHandler{
		Pattern: TypeWarmDeal,
		Handle:  w.Handle,
	}
}

// Handle не повторяет задачу, если сделку уже удалили или payload битый.
func (w AnalysisWarmer) Handle(ctx context.Context, task *asynq.Task) error {
	var payload warmDealPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal: %v: %w", err, asynq.SkipRetry)
	}

	id, err := value.ParseDealID(payload.DealID)
	if err != nil {
		return fmt.Errorf("value.ParseDealID: %v: %w", err, asynq.SkipRetry)
	}

	if err = w.warmer.WarmDeal(ctx, id); err != nil {
		if errors.Is(err, domain.ErrDealNotFound) {
			logger(ctx).Info("deal gone before warm-up", logx.DealID(id))
			return fmt.Errorf("WarmDeal: %v: %w", err, asynq.SkipRetry)
		}

		return fmt.Errorf("WarmDeal: %w", err)
	}

	return nil
}

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Enqueuer struct {
	client taskEnqueuer
	queue  string
}

func NewEnqueuer(client taskEnqueuer, queue string) Enqueuer {
	return Enqueuer{
		client: client,
		queue:  queue,
	}
}

func (e Enqueuer) EnqueueWarmDeal(ctx context.Context, id value.DealID) error {
	task, err := NewWarmDealTask(id)
	if err != nil {
		return err
	}

	info, err := e.client.EnqueueContext(ctx, task,
		asynq.Queue(e.queue),
		asynq.MaxRetry(warmMaxRetry),
		asynq.Timeout(warmTimeout),
	)
	if err != nil {
		return fmt.Errorf("asynq.EnqueueContext: %w", err)
	}

	logger(ctx).Debug("warm-up enqueued", logx.DealID(id), slog.String(logx.FieldTaskID, info.ID))

	return nil
}
