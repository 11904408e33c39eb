package dealtest

import (
	"context"
	"errors"
	"sort"
	"sync"

	"re_deals/internal/domain"
	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/value"
)

var ErrCacheDown = errors.New("cache down")

// MemoryRepository хранилище сделок в памяти, порядок как у postgres репозитория.
type MemoryRepository struct {
	mu    sync.Mutex
	deals map[value.DealID]entity.Deal
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{deals: make(map[value.DealID]entity.Deal)}
}

func (r *MemoryRepository) Create(_ context.Context, deal entity.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deals[deal.ID] = deal

	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id value.DealID) (entity.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deal, ok := r.deals[id]
	if !ok {
		return entity.Deal{}, domain.ErrDealNotFound
	}

	return deal, nil
}

func (r *MemoryRepository) Update(_ context.Context, deal entity.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.deals[deal.ID]; !ok {
		return domain.ErrDealNotFound
	}

	r.deals[deal.ID] = deal

	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id value.DealID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.deals[id]; !ok {
		return domain.ErrDealNotFound
	}

	delete(r.deals, id)

	return nil
}

func (r *MemoryRepository) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]entity.Deal, error) {
	deals := r.filter(func(d entity.Deal) bool { return d.OwnerID == ownerID })
	sort.SliceStable(deals, func(i, j int) bool { return deals[i].CreatedAt.After(deals[j].CreatedAt) })

	return page(deals, limit, offset), nil
}

func (r *MemoryRepository) ListPublished(_ context.Context, limit, offset int) ([]entity.Deal, error) {
	deals := r.filter(func(d entity.Deal) bool { return d.Status == value.DealStatusPublished })
	sort.SliceStable(deals, func(i, j int) bool { return deals[i].UpdatedAt.After(deals[j].UpdatedAt) })

	return page(deals, limit, offset), nil
}

func (r *MemoryRepository) filter(match func(entity.Deal) bool) []entity.Deal {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Deal, 0, len(r.deals))
	for _, d := range r.deals {
		if match(d) {
			out = append(out, d)
		}
	}

	return out
}

func page(deals []entity.Deal, limit, offset int) []entity.Deal {
	if offset >= len(deals) {
		return []entity.Deal{}
	}

	deals = deals[offset:]
	if len(deals) > limit {
		deals = deals[:limit]
	}

	return deals
}

// MemoryCache общий кэш в памяти. Fail имитирует недоступный redis.
type MemoryCache struct {
	mu       sync.Mutex
	Analyses map[string]entity.Analysis
	Grids    map[string]entity.SensitivityGrid
	Fail     bool
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		Analyses: make(map[string]entity.Analysis),
		Grids:    make(map[string]entity.SensitivityGrid),
	}
}

func (c *MemoryCache) GetAnalysis(_ context.Context, key string) (entity.Analysis, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Fail {
		return entity.Analysis{}, false, ErrCacheDown
	}

	a, ok := c.Analyses[key]

	return a, ok, nil
}

func (c *MemoryCache) SetAnalysis(_ context.Context, key string, analysis entity.Analysis) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Fail {
		return ErrCacheDown
	}

	c.Analyses[key] = analysis

	return nil
}

func (c *MemoryCache) GetGrid(_ context.Context, key string) (entity.SensitivityGrid, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Fail {
		return entity.SensitivityGrid{}, false, ErrCacheDown
	}

	g, ok := c.Grids[key]

	return g, ok, nil
}

func (c *MemoryCache) SetGrid(_ context.Context, key string, grid entity.SensitivityGrid) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Fail {
		return ErrCacheDown
	}

	c.Grids[key] = grid

	return nil
}

type RecordingNotifier struct {
	Published []value.DealID
	Err       error
}

func (n *RecordingNotifier) DealPublished(_ context.Context, deal entity.Deal) error {
	n.Published = append(n.Published, deal.ID)
	return n.Err
}

type RecordingEnqueuer struct {
	IDs []value.DealID
}

func (e *RecordingEnqueuer) EnqueueWarmDeal(_ context.Context, id value.DealID) error {
	e.IDs = append(e.IDs, id)
	return nil
}
