package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/anandamid/presensi-backend-go/internal/domain/settings"
	"github.com/anandamid/presensi-backend-go/internal/pkg/cache"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
	cache    *cache.SettingsCache
	timezone *time.Location
}

func NewSettingsService(repo settings.SettingsRepository, c *cache.SettingsCache, tz *time.Location) settings.SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: repo,
		cache:              c,
		timezone:           tz,
	}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (*settings.SettingsResponse, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return settings.ToSettingsResponse(snap), nil
}

// Snapshot implements settings.SettingsService. The returned entity is a
// point-in-time copy; callers decide a whole request against it.
func (s *SettingsServiceImpl) Snapshot(ctx context.Context) (*settings.Settings, error) {
	var cached settings.Settings
	if s.cache.Get(ctx, &cached) {
		return &cached, nil
	}

	snap, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, snap)
	return snap, nil
}

// Update implements settings.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, adminID int64, req *settings.UpdateSettingsRequest) (*settings.SettingsResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return nil, err
	}

	current.AreaName = req.AreaName
	current.Latitude = req.Latitude
	current.Longitude = req.Longitude
	current.RadiusM = req.RadiusM
	current.EnabledShifts = req.EnabledShifts
	current.ForceHolidayDate = req.ForceHolidayTime(s.timezone)
	current.UpdatedBy = &adminID

	if err := s.SettingsRepository.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	s.cache.Invalidate(ctx)

	return settings.ToSettingsResponse(current), nil
}
