package settingsRepo

import (
	"context"

	"helperhub/models"
)

// SettingsRepository defines methods for per-user preferences.
type SettingsRepository interface {
	// GetSettings returns stored values overlaid on models.DefaultSettings.
	GetSettings(ctx context.Context, userID string) (*models.UserSettings, error)
	// MergeSettings sets the given fields, leaving the rest untouched.
	MergeSettings(ctx context.Context, userID string, fields map[string]interface{}) error
	// GetPushToken returns the registered FCM token, or "" when none.
	GetPushToken(ctx context.Context, userID string) (string, error)
	SetPushToken(ctx context.Context, userID, token string) error
}

func NewSettingsRepo(useMongo bool) SettingsRepository {
	if useMongo {
		return NewMongoSettingsRepo()
	}
	return NewRTDBSettingsRepo()
}
