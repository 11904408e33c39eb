package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"re_deals/internal/domain"
	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/service/proforma"
	"re_deals/internal/domain/service/returns"
	"re_deals/internal/domain/service/sensitivity"
	"re_deals/internal/domain/value"
	"re_deals/pkg/contextx"
	"re_deals/pkg/errcodes"
	"re_deals/pkg/logx"
	"re_deals/pkg/metrics"
)

const (
	defaultLocalTTL = 5 * time.Minute
	defaultLimit    = 20
)

// MaxLimit верхняя граница размера страницы в списках сделок.
const MaxLimit = 100

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type DealRepository interface {
	Create(ctx context.Context, deal entity.Deal) error
	GetByID(ctx context.Context, id value.DealID) (entity.Deal, error)
	Update(ctx context.Context, deal entity.Deal) error
	Delete(ctx context.Context, id value.DealID) error
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]entity.Deal, error)
	ListPublished(ctx context.Context, limit, offset int) ([]entity.Deal, error)
}

// AnalysisCache общий кэш расчётов между репликами.
type AnalysisCache interface {
	GetAnalysis(ctx context.Context, key string) (entity.Analysis, bool, error)
	SetAnalysis(ctx context.Context, key string, analysis entity.Analysis) error
	GetGrid(ctx context.Context, key string) (entity.SensitivityGrid, bool, error)
	SetGrid(ctx context.Context, key string, grid entity.SensitivityGrid) error
}

type Notifier interface {
	DealPublished(ctx context.Context, deal entity.Deal) error
}

type TaskEnqueuer interface {
	EnqueueWarmDeal(ctx context.Context, id value.DealID) error
}

type DealService struct {
	repo      DealRepository
	shared    AnalysisCache
	notifier  Notifier
	enqueuer  TaskEnqueuer
	local     *cache.Cache
	years     int
	gridLimit int
	now       func() time.Time
}

func NewDealService(
	repo DealRepository,
	shared AnalysisCache,
	notifier Notifier,
	enqueuer TaskEnqueuer,
) *DealService {
	return &DealService{
		repo:      repo,
		shared:    shared,
		notifier:  notifier,
		enqueuer:  enqueuer,
		local:     cache.New(defaultLocalTTL, 2*defaultLocalTTL),
		years:     proforma.DefaultYears,
		gridLimit: 1,
		now:       time.Now,
	}
}

func (s *DealService) WithProjectionYears(years int) *DealService {
	if years > 0 {
		s.years = years
	}
	return s
}

func (s *DealService) WithGridConcurrency(n int) *DealService {
	if n > 0 {
		s.gridLimit = n
	}
	return s
}

func (s *DealService) WithLocalCacheTTL(ttl time.Duration) *DealService {
	s.local = cache.New(ttl, 2*ttl)
	return s
}

func (s *DealService) WithClock(now func() time.Time) *DealService {
	s.now = now
	return s
}

// Analyze считает проекцию и показатели без сохранения.
func (s *DealService) Analyze(ctx context.Context, in entity.DealInputs) entity.Analysis {
	analysis := returns.Analyze(in, proforma.WithYears(s.years))

	metrics.ProjectionsTotal.
		WithLabelValues(in.Kind().String(), strconv.FormatBool(analysis.Computable)).
		Inc()

	if exit := analysis.Metrics.Exit; exit != nil && exit.UnleveredIRRPct == nil {
		metrics.IRRUndefinedTotal.Inc()
		logger(ctx).Debug("irr undefined", "holding_period_years", exit.HoldingPeriodYears)
	}

	return analysis
}

// Sensitivity сетка для несохранённых входных данных.
func (s *DealService) Sensitivity(
	ctx context.Context,
	in entity.DealInputs,
	varA, varB value.SweepVariable,
	metric value.Metric,
) (entity.SensitivityGrid, error) {
	start := time.Now()
	defer func() {
		metrics.SensitivityDuration.WithLabelValues(metric.String()).Observe(time.Since(start).Seconds())
	}()

	grid, err := sensitivity.Build(in, varA, varB, metric,
		sensitivity.WithConcurrency(s.gridLimit),
		sensitivity.WithYears(s.years),
	)
	if err != nil {
		return entity.SensitivityGrid{}, sensitivityError(err)
	}

	logger(ctx).Debug("sensitivity grid built",
		logx.Stringer(logx.FieldVariableA, varA),
		logx.Stringer(logx.FieldVariableB, varB),
		logx.Stringer(logx.FieldMetric, metric),
		slog.Int(logx.FieldCells, len(grid.RangeA)*len(grid.RangeB)),
	)

	return grid, nil
}

func (s *DealService) CreateDeal(ctx context.Context, ownerID, title string, in entity.DealInputs) (entity.Deal, error) {
	if ownerID == "" {
		return entity.Deal{}, domain.ErrUserRequired
	}

	now := s.now().UTC()
	deal := entity.Deal{
		ID:        value.NewDealID(),
		OwnerID:   ownerID,
		Title:     title,
		Status:    value.DealStatusDraft,
		Inputs:    in,
		Snapshot:  s.Analyze(ctx, in).Metrics,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, deal); err != nil {
		return entity.Deal{}, fmt.Errorf("repo.Create: %w", err)
	}

	s.enqueueWarm(ctx, deal.ID)

	logger(ctx).Info("deal created", logx.DealID(deal.ID), logx.Stringer(logx.FieldDealKind, in.Kind()))

	return deal, nil
}

// GetDeal владелец видит свои сделки, остальные только опубликованные.
func (s *DealService) GetDeal(ctx context.Context, viewerID string, id value.DealID) (entity.Deal, error) {
	deal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Deal{}, fmt.Errorf("repo.GetByID: %w", err)
	}

	if !deal.VisibleTo(viewerID) {
		return entity.Deal{}, domain.ErrDealNotFound
	}

	return deal, nil
}

func (s *DealService) UpdateDeal(
	ctx context.Context,
	ownerID string,
	id value.DealID,
	title string,
	in entity.DealInputs,
) (entity.Deal, error) {
	deal, err := s.ownedDeal(ctx, ownerID, id)
	if err != nil {
		return entity.Deal{}, err
	}

	deal.Title = title
	deal.Inputs = in
	deal.Snapshot = s.Analyze(ctx, in).Metrics
	deal.UpdatedAt = s.now().UTC()

	if err = s.repo.Update(ctx, deal); err != nil {
		return entity.Deal{}, fmt.Errorf("repo.Update: %w", err)
	}

	s.enqueueWarm(ctx, deal.ID)

	return deal, nil
}

func (s *DealService) DeleteDeal(ctx context.Context, ownerID string, id value.DealID) error {
	if _, err := s.ownedDeal(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("repo.Delete: %w", err)
	}

	logger(ctx).Info("deal deleted", logx.DealID(id))

	return nil
}

func (s *DealService) ListDeals(ctx context.Context, ownerID string, limit, offset int) ([]entity.Deal, error) {
	if ownerID == "" {
		return nil, domain.ErrUserRequired
	}

	limit, offset, err := paging(limit, offset)
	if err != nil {
		return nil, err
	}

	deals, err := s.repo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("repo.ListByOwner: %w", err)
	}

	return deals, nil
}

func (s *DealService) ListPublished(ctx context.Context, limit, offset int) ([]entity.Deal, error) {
	limit, offset, err := paging(limit, offset)
	if err != nil {
		return nil, err
	}

	deals, err := s.repo.ListPublished(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("repo.ListPublished: %w", err)
	}

	return deals, nil
}

// PublishDeal делает сделку видимой всем и рассылает уведомление.
// Сбой уведомления не откатывает публикацию.
func (s *DealService) PublishDeal(ctx context.Context, ownerID string, id value.DealID) (entity.Deal, error) {
	deal, err := s.ownedDeal(ctx, ownerID, id)
	if err != nil {
		return entity.Deal{}, err
	}

	if deal.Status == value.DealStatusPublished {
		return entity.Deal{}, domain.ErrDealAlreadyPublished
	}

	deal.Status = value.DealStatusPublished
	deal.UpdatedAt = s.now().UTC()

	if err = s.repo.Update(ctx, deal); err != nil {
		return entity.Deal{}, fmt.Errorf("repo.Update: %w", err)
	}

	if err = s.notifier.DealPublished(ctx, deal); err != nil {
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		logger(ctx).Error("notifier.DealPublished", logx.DealID(deal.ID), logx.Error(err))
	} else {
		metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	}

	logger(ctx).Info("deal published", logx.DealID(deal.ID))

	return deal, nil
}

// DealAnalysis расчёт сохранённой сделки: локальный кэш, затем общий, затем пересчёт.
func (s *DealService) DealAnalysis(ctx context.Context, viewerID string, id value.DealID) (entity.Analysis, error) {
	deal, err := s.GetDeal(ctx, viewerID, id)
	if err != nil {
		return entity.Analysis{}, err
	}

	key := analysisKey(deal)

	if cached, found := s.local.Get(key); found {
		metrics.AnalysisCacheTotal.WithLabelValues("local").Inc()
		return cached.(entity.Analysis), nil //nolint:forcetypeassert
	}

	analysis, found, err := s.shared.GetAnalysis(ctx, key)
	if err != nil {
		logger(ctx).Warn("shared.GetAnalysis", "key", key, logx.Error(err))
	}

	if found {
		metrics.AnalysisCacheTotal.WithLabelValues("shared").Inc()
		s.local.SetDefault(key, analysis)
		return analysis, nil
	}

	metrics.AnalysisCacheTotal.WithLabelValues("miss").Inc()

	analysis = s.Analyze(ctx, deal.Inputs)
	s.storeAnalysis(ctx, key, analysis)

	return analysis, nil
}

// DealSensitivity сетка сохранённой сделки.
func (s *DealService) DealSensitivity(
	ctx context.Context,
	viewerID string,
	id value.DealID,
	varA, varB value.SweepVariable,
	metric value.Metric,
) (entity.SensitivityGrid, error) {
	deal, err := s.GetDeal(ctx, viewerID, id)
	if err != nil {
		return entity.SensitivityGrid{}, err
	}

	key := gridKey(deal, varA, varB, metric)

	grid, found, err := s.shared.GetGrid(ctx, key)
	if err != nil {
		logger(ctx).Warn("shared.GetGrid", "key", key, logx.Error(err))
	}

	if found {
		return grid, nil
	}

	grid, err = s.Sensitivity(ctx, deal.Inputs, varA, varB, metric)
	if err != nil {
		return entity.SensitivityGrid{}, err
	}

	if err = s.shared.SetGrid(ctx, key, grid); err != nil {
		logger(ctx).Warn("shared.SetGrid", "key", key, logx.Error(err))
	}

	return grid, nil
}

// WarmDeal заранее кладёт в общий кэш расчёт и стандартную сетку сделки.
func (s *DealService) WarmDeal(ctx context.Context, id value.DealID) error {
	deal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("repo.GetByID: %w", err)
	}

	analysis := s.Analyze(ctx, deal.Inputs)
	if err = s.shared.SetAnalysis(ctx, analysisKey(deal), analysis); err != nil {
		return fmt.Errorf("shared.SetAnalysis: %w", err)
	}

	if !analysis.Computable {
		return nil
	}

	varA, varB, metric := DefaultGrid(deal.Inputs)

	grid, err := s.Sensitivity(ctx, deal.Inputs, varA, varB, metric)
	if err != nil {
		return fmt.Errorf("Sensitivity: %w", err)
	}

	if err = s.shared.SetGrid(ctx, gridKey(deal, varA, varB, metric), grid); err != nil {
		return fmt.Errorf("shared.SetGrid: %w", err)
	}

	logger(ctx).Info("deal warmed", logx.DealID(id))

	return nil
}

// DefaultGrid сетка, которую показывают первой: IRR по ставке выхода и проценту,
// без сценария продажи CoC по цене и проценту.
func DefaultGrid(in entity.DealInputs) (value.SweepVariable, value.SweepVariable, value.Metric) {
	if in.Exit != nil {
		return value.SweepExitCapRatePct, value.SweepInterestRatePct, value.MetricIRR
	}

	return value.SweepPurchasePrice, value.SweepInterestRatePct, value.MetricCoCReturn
}

func (s *DealService) ownedDeal(ctx context.Context, ownerID string, id value.DealID) (entity.Deal, error) {
	deal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Deal{}, fmt.Errorf("repo.GetByID: %w", err)
	}

	if deal.OwnerID == ownerID && ownerID != "" {
		return deal, nil
	}

	if deal.Status == value.DealStatusPublished {
		return entity.Deal{}, domain.ErrNotDealOwner
	}

	return entity.Deal{}, domain.ErrDealNotFound
}

func (s *DealService) storeAnalysis(ctx context.Context, key string, analysis entity.Analysis) {
	s.local.SetDefault(key, analysis)

	if err := s.shared.SetAnalysis(ctx, key, analysis); err != nil {
		logger(ctx).Warn("shared.SetAnalysis", "key", key, logx.Error(err))
	}
}

func (s *DealService) enqueueWarm(ctx context.Context, id value.DealID) {
	if err := s.enqueuer.EnqueueWarmDeal(ctx, id); err != nil {
		logger(ctx).Warn("enqueuer.EnqueueWarmDeal", logx.DealID(id), logx.Error(err))
	}
}

// analysisKey меняется при каждом изменении сделки, старые записи просто истекают.
func analysisKey(deal entity.Deal) string {
	return fmt.Sprintf("analysis:%s:%d", deal.ID, deal.UpdatedAt.UnixNano())
}

func gridKey(deal entity.Deal, varA, varB value.SweepVariable, metric value.Metric) string {
	return fmt.Sprintf("grid:%s:%d:%s:%s:%s", deal.ID, deal.UpdatedAt.UnixNano(), varA, varB, metric)
}

func paging(limit, offset int) (int, int, error) {
	if offset < 0 || limit < 0 {
		return 0, 0, domain.NewError(errcodes.InvalidPaging, "limit and offset must not be negative")
	}

	if limit == 0 {
		limit = defaultLimit
	}

	return min(limit, MaxLimit), offset, nil
}

func sensitivityError(err error) error {
	switch {
	case errors.Is(err, sensitivity.ErrUnknownMetric):
		return domain.WrapError(err, errcodes.InvalidMetric, "unknown metric")
	default:
		return domain.WrapError(err, errcodes.InvalidSweepVariable, "invalid sweep variables")
	}
}
