package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/anandamid/presensi-backend-go/internal/domain/settings"
	"github.com/anandamid/presensi-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (*settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, area_name, area_lat, area_lng, area_radius_m,
			   enabled_shifts, force_holiday_date, updated_by, updated_at
		FROM settings
		ORDER BY id ASC
		LIMIT 1`

	var s settings.Settings
	var rawShifts []byte
	err := q.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.AreaName,
		&s.Latitude,
		&s.Longitude,
		&s.RadiusM,
		&rawShifts,
		&s.ForceHolidayDate,
		&s.UpdatedBy,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settings.ErrSettingsNotFound
		}
		return nil, err
	}

	s.EnabledShifts = settings.UnmarshalEnabledShifts(rawShifts)

	return &s, nil
}

// Update implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Update(ctx context.Context, s *settings.Settings) error {
	q := GetQuerier(ctx, r.db)

	rawShifts, err := settings.MarshalEnabledShifts(s.EnabledShifts)
	if err != nil {
		return err
	}

	query := `
		UPDATE settings
		SET area_name = $1, area_lat = $2, area_lng = $3, area_radius_m = $4,
			enabled_shifts = $5, force_holiday_date = $6, updated_by = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at`

	err = q.QueryRow(ctx, query,
		s.AreaName,
		s.Latitude,
		s.Longitude,
		s.RadiusM,
		rawShifts,
		s.ForceHolidayDate,
		s.UpdatedBy,
		s.ID,
	).Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.ErrSettingsNotFound
		}
		return err
	}

	return nil
}
