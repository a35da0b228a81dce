package settings

import "errors"

// ErrSettingsNotFound means the settings row was never seeded.
var ErrSettingsNotFound = errors.New("office settings not configured")
