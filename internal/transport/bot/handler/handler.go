package handler

import (
	"context"
	"log/slog"

	"re_deals/internal/domain/entity"
	service "re_deals/internal/domain/service/deal"
	"re_deals/internal/domain/value"
	"re_deals/internal/transport/bot/view"
	"re_deals/pkg/contextx"
	"re_deals/pkg/logx"
)

const (
	defaultPageSize  = 5
	defaultCardYears = 5
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type dealService interface {
	ListPublished(ctx context.Context, limit, offset int) ([]entity.Deal, error)
	GetDeal(ctx context.Context, viewerID string, id value.DealID) (entity.Deal, error)
	DealAnalysis(ctx context.Context, viewerID string, id value.DealID) (entity.Analysis, error)
}

// Handler команды бота работают от имени анонимного зрителя:
// видны только опубликованные сделки.
type Handler struct {
	svc      dealService
	currency string
	pageSize int
}

func New(svc dealService, currency string) *Handler {
	return &Handler{
		svc:      svc,
		currency: currency,
		pageSize: defaultPageSize,
	}
}

// WithPageSize размер страницы /published. Сервис отдаёт не больше MaxLimit записей,
// а странице нужна одна лишняя, поэтому размер ограничен MaxLimit-1.
func (h *Handler) WithPageSize(n int) *Handler {
	if n > 0 {
		h.pageSize = min(n, service.MaxLimit-1)
	}
	return h
}

// publishedPage лишняя запись в выборке говорит о следующей странице.
func (h *Handler) publishedPage(ctx context.Context, page int) ([]entity.Deal, bool, error) {
	deals, err := h.svc.ListPublished(ctx, h.pageSize+1, (page-1)*h.pageSize)
	if err != nil {
		return nil, false, err
	}

	if len(deals) > h.pageSize {
		return deals[:h.pageSize], true, nil
	}

	return deals, false, nil
}

// dealCard текст карточки либо сообщение об ошибке для пользователя.
func (h *Handler) dealCard(ctx context.Context, arg string) string {
	id, err := value.ParseDealID(arg)
	if err != nil {
		return view.DealInvalidID
	}

	deal, err := h.svc.GetDeal(ctx, "", id)
	if err != nil {
		logger(ctx).Debug("svc.GetDeal", slog.String(logx.FieldDealID, arg), logx.Error(err))
		return view.DealNotFound
	}

	analysis, err := h.svc.DealAnalysis(ctx, "", id)
	if err != nil {
		logger(ctx).Error("svc.DealAnalysis", slog.String(logx.FieldDealID, arg), logx.Error(err))
		return view.DealNotFound
	}

	return view.DealCard(deal, analysis, h.currency, defaultCardYears)
}
