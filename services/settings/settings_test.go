package settings

import (
	"context"
	"testing"

	"helperhub/models"
	"helperhub/utils"
)

type memSettingsRepo struct {
	fields map[string]interface{}
	token  string
}

func (m *memSettingsRepo) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	s := models.DefaultSettings()
	if v, ok := m.fields["theme"].(string); ok {
		s.Theme = v
	}
	if v, ok := m.fields["sessionTimeout"].(int); ok {
		s.SessionTimeout = v
	}
	if v, ok := m.fields["pushNotifications"].(bool); ok {
		s.PushNotifications = v
	}
	return &s, nil
}

func (m *memSettingsRepo) MergeSettings(ctx context.Context, userID string, fields map[string]interface{}) error {
	if m.fields == nil {
		m.fields = map[string]interface{}{}
	}
	for k, v := range fields {
		m.fields[k] = v
	}
	return nil
}

func (m *memSettingsRepo) GetPushToken(ctx context.Context, userID string) (string, error) {
	return m.token, nil
}

func (m *memSettingsRepo) SetPushToken(ctx context.Context, userID, token string) error {
	m.token = token
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

func TestGetSettingsDefaults(t *testing.T) {
	svc := &DefaultSettingsService{Repo: &memSettingsRepo{}}
	got, err := svc.GetSettings(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != models.DefaultSettings() {
		t.Errorf("expected defaults, got %+v", got)
	}
}

func TestUpdateSettingsMergesFields(t *testing.T) {
	repo := &memSettingsRepo{}
	svc := &DefaultSettingsService{Repo: repo}

	got, err := svc.UpdateSettings(context.Background(), "u1", models.SettingsUpdateRequest{
		Theme:             strPtr("dark"),
		PushNotifications: boolPtr(false),
		SessionTimeout:    intPtr(60),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Theme != "dark" || got.PushNotifications || got.SessionTimeout != 60 {
		t.Errorf("unexpected settings %+v", got)
	}
	if len(repo.fields) != 3 {
		t.Errorf("expected only named fields written, got %v", repo.fields)
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.SettingsUpdateRequest
	}{
		{"empty update", models.SettingsUpdateRequest{}},
		{"unknown theme", models.SettingsUpdateRequest{Theme: strPtr("neon")}},
		{"unknown font size", models.SettingsUpdateRequest{FontSize: strPtr("huge")}},
		{"unknown visibility", models.SettingsUpdateRequest{ProfileVisibility: strPtr("friends")}},
		{"zero session timeout", models.SettingsUpdateRequest{SessionTimeout: intPtr(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memSettingsRepo{}
			svc := &DefaultSettingsService{Repo: repo}
			_, err := svc.UpdateSettings(context.Background(), "u1", tt.req)
			if !utils.IsKind(err, utils.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(repo.fields) != 0 {
				t.Errorf("expected no writes, got %v", repo.fields)
			}
		})
	}
}

func TestRegisterPushToken(t *testing.T) {
	repo := &memSettingsRepo{}
	svc := &DefaultSettingsService{Repo: repo}

	if err := svc.RegisterPushToken(context.Background(), "u1", "   "); !utils.IsKind(err, utils.KindValidation) {
		t.Fatalf("expected validation error for blank token, got %v", err)
	}
	if err := svc.RegisterPushToken(context.Background(), "u1", " tok-1 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.token != "tok-1" {
		t.Errorf("expected trimmed token, got %q", repo.token)
	}
}
