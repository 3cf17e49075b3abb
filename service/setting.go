package service

import (
	"context"
	"time"

	"sideb/dao"
	"sideb/dao/cache"
	"sideb/models"
	"sideb/pkg/log"
	"sideb/pkg/snowflake"
	"sideb/types"

	"go.uber.org/zap"
)

var _ ISettingService = (*SettingService)(nil)

type ISettingService interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, req *types.UpdateSettingRequest) error
}

type SettingService struct {
	SettingDAO *dao.SettingDAO
	Cache      *cache.SettingsCache
}

// GetAll serves the settings map from redis when possible, falling back to
// MySQL and repopulating the cache.
func (s *SettingService) GetAll(ctx context.Context) (map[string]string, error) {
	if cached, err := s.Cache.Get(ctx); err == nil {
		return cached, nil
	}

	rows, err := s.SettingDAO.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}

	if err := s.Cache.Set(ctx, settings); err != nil {
		log.L.Warn("cache site settings", zap.Error(err))
	}
	return settings, nil
}

func (s *SettingService) Update(ctx context.Context, req *types.UpdateSettingRequest) error {
	now := time.Now()
	setting := &models.SiteSetting{
		ID:        snowflake.GenID(),
		Key:       req.Key,
		Value:     req.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.SettingDAO.Upsert(ctx, setting); err != nil {
		return err
	}

	if err := s.Cache.Invalidate(ctx); err != nil {
		log.L.Warn("invalidate settings cache", zap.Error(err))
	}
	return nil
}
