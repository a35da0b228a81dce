package settings

import "context"

type SettingsService interface {
	Get(ctx context.Context) (*SettingsResponse, error)
	Update(ctx context.Context, adminID int64, req *UpdateSettingsRequest) (*SettingsResponse, error)

	// Snapshot returns the settings entity attendance reads from. It may be
	// served from cache; Update invalidates it.
	Snapshot(ctx context.Context) (*Settings, error)
}
