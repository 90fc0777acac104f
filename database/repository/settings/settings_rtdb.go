package settingsRepo

import (
	"context"
	"fmt"

	"helperhub/database"
	"helperhub/models"

	"firebase.google.com/go/v4/db"
)

// RTDBSettingsRepo stores users/{uid}/settings and users/{uid}/pushToken.
type RTDBSettingsRepo struct {
	client *db.Client
}

func NewRTDBSettingsRepo() SettingsRepository {
	return &RTDBSettingsRepo{client: database.RTDB}
}

func (r *RTDBSettingsRepo) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	// Decoding into the defaults keeps every key the user never saved.
	settings := models.DefaultSettings()
	if err := r.client.NewRef("users/"+userID+"/settings").Get(ctx, &settings); err != nil {
		return nil, fmt.Errorf("failed to read settings of %s: %w", userID, err)
	}
	return &settings, nil
}

func (r *RTDBSettingsRepo) MergeSettings(ctx context.Context, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	if err := r.client.NewRef("users/"+userID+"/settings").Update(ctx, fields); err != nil {
		return fmt.Errorf("failed to update settings of %s: %w", userID, err)
	}
	return nil
}

func (r *RTDBSettingsRepo) GetPushToken(ctx context.Context, userID string) (string, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var token string
	if err := r.client.NewRef("users/"+userID+"/pushToken").Get(ctx, &token); err != nil {
		return "", fmt.Errorf("failed to read push token of %s: %w", userID, err)
	}
	return token, nil
}

func (r *RTDBSettingsRepo) SetPushToken(ctx context.Context, userID, token string) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	if err := r.client.NewRef("users/"+userID+"/pushToken").Set(ctx, token); err != nil {
		return fmt.Errorf("failed to save push token of %s: %w", userID, err)
	}
	return nil
}
