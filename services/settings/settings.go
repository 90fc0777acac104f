package settings

import (
	"context"
	"strings"

	settingsRepo "helperhub/database/repository/settings"
	"helperhub/models"
	"helperhub/utils"
)

type SettingsService interface {
	GetSettings(ctx context.Context, userID string) (*models.UserSettings, error)
	UpdateSettings(ctx context.Context, userID string, req models.SettingsUpdateRequest) (*models.UserSettings, error)
	RegisterPushToken(ctx context.Context, userID, token string) error
}

type DefaultSettingsService struct {
	Repo settingsRepo.SettingsRepository
}

var (
	themes       = map[string]bool{"light": true, "dark": true, "system": true}
	fontSizes    = map[string]bool{"small": true, "medium": true, "large": true}
	visibilities = map[string]bool{"public": true, "private": true}
)

func (s *DefaultSettingsService) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings, err := s.Repo.GetSettings(ctx, userID)
	if err != nil {
		return nil, utils.NewRemoteError("Failed to load settings", err)
	}
	return settings, nil
}

func (s *DefaultSettingsService) UpdateSettings(ctx context.Context, userID string, req models.SettingsUpdateRequest) (*models.UserSettings, error) {
	fields, err := settingsFields(req)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, utils.NewValidationError("No settings to update.")
	}
	if err := s.Repo.MergeSettings(ctx, userID, fields); err != nil {
		return nil, utils.NewRemoteError("Failed to save settings", err)
	}
	return s.GetSettings(ctx, userID)
}

func (s *DefaultSettingsService) RegisterPushToken(ctx context.Context, userID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return utils.NewValidationError("Push token is required.")
	}
	if err := s.Repo.SetPushToken(ctx, userID, token); err != nil {
		return utils.NewRemoteError("Failed to register device", err)
	}
	return nil
}

func settingsFields(req models.SettingsUpdateRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	choice := func(key string, v *string, allowed map[string]bool) error {
		if v == nil {
			return nil
		}
		if !allowed[*v] {
			return utils.NewValidationError("Invalid value for " + key + ".")
		}
		fields[key] = *v
		return nil
	}
	flag := func(key string, v *bool) {
		if v != nil {
			fields[key] = *v
		}
	}

	if err := choice("theme", req.Theme, themes); err != nil {
		return nil, err
	}
	if err := choice("fontSize", req.FontSize, fontSizes); err != nil {
		return nil, err
	}
	if err := choice("profileVisibility", req.ProfileVisibility, visibilities); err != nil {
		return nil, err
	}
	flag("animations", req.Animations)
	flag("emailNotifications", req.EmailNotifications)
	flag("pushNotifications", req.PushNotifications)
	flag("requestNotifications", req.RequestNotifications)
	flag("marketingEmails", req.MarketingEmails)
	flag("showEmail", req.ShowEmail)
	flag("showPhone", req.ShowPhone)
	flag("allowMessages", req.AllowMessages)
	flag("twoFactorAuth", req.TwoFactorAuth)
	flag("loginAlerts", req.LoginAlerts)
	if req.SessionTimeout != nil {
		if *req.SessionTimeout <= 0 {
			return nil, utils.NewValidationError("Session timeout must be positive.")
		}
		fields["sessionTimeout"] = *req.SessionTimeout
	}
	return fields, nil
}
