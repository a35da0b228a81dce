package settings

import "context"

type SettingsRepository interface {
	// Get returns the single settings row, or ErrSettingsNotFound when the
	// database was never seeded.
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, s *Settings) error
}
