// Package cache хранит готовые расчёты сделок в redis, общий для всех реплик.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"re_deals/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const keyPrefix = "re_deals:"

type AnalysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnalysisCache(client *redis.Client, ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *AnalysisCache) GetAnalysis(ctx context.Context, key string) (entity.Analysis, bool, error) {
	var analysis entity.Analysis

	found, err := c.get(ctx, key, &analysis)

	return analysis, found, err
}

func (c *AnalysisCache) SetAnalysis(ctx context.Context, key string, analysis entity.Analysis) error {
	return c.set(ctx, key, analysis)
}

func (c *AnalysisCache) GetGrid(ctx context.Context, key string) (entity.SensitivityGrid, bool, error) {
	var grid entity.SensitivityGrid

	found, err := c.get(ctx, key, &grid)

	return grid, found, err
}

func (c *AnalysisCache) SetGrid(ctx context.Context, key string, grid entity.SensitivityGrid) error {
	return c.set(ctx, key, grid)
}

func (c *AnalysisCache) get(ctx context.Context, key string, dest any) (bool, error) {
	b, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("redis.Get: %w", err)
	}

	if err = json.Unmarshal(b, dest); err != nil {
		return false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return true, nil
}

func (c *AnalysisCache) set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err = c.client.Set(ctx, keyPrefix+key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}
