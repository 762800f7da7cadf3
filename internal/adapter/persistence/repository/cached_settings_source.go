package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"
)

const settingsCacheTTL = 5 * time.Minute

// CachedSettingsSource decorates a settings source with a short Redis TTL
// cache. Settings change rarely and every transition reads them, so a few
// minutes of staleness buys a round trip per commit. Cache failures degrade
// to the underlying source, never to an error.

type CachedSettingsSource struct {
	source interfaces.ISettingsSource
	rdb    *redis.Client
	logger *zap.Logger
}

var _ interfaces.ISettingsSource = (*CachedSettingsSource)(nil)

func NewCachedSettingsSource(source interfaces.ISettingsSource, rdb *redis.Client, logger *zap.Logger) *CachedSettingsSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSettingsSource{source: source, rdb: rdb, logger: logger}
}

func (c *CachedSettingsSource) Get(ctx context.Context, companyID string) (entities.Settings, error) {
	key := "settings:" + companyID

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var s entities.Settings
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, nil
		}
		// Corrupt cache entry: fall through and overwrite it.
	} else if err != redis.Nil {
		c.logger.Warn("settings cache read failed", zap.String("company_id", companyID), zap.Error(err))
	}

	s, err := c.source.Get(ctx, companyID)
	if err != nil {
		return entities.Settings{}, err
	}

	if raw, err := json.Marshal(s); err == nil {
		if err := c.rdb.Set(ctx, key, raw, settingsCacheTTL).Err(); err != nil {
			c.logger.Warn("settings cache write failed", zap.String("company_id", companyID), zap.Error(err))
		}
	}
	return s, nil
}
