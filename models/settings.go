package models

// UserSettings mirrors users/{uid}/settings.
type UserSettings struct {
	// Appearance
	Theme      string `bson:"theme" json:"theme"`
	FontSize   string `bson:"fontSize" json:"fontSize"`
	Animations bool   `bson:"animations" json:"animations"`

	// Notifications
	EmailNotifications   bool `bson:"emailNotifications" json:"emailNotifications"`
	PushNotifications    bool `bson:"pushNotifications" json:"pushNotifications"`
	RequestNotifications bool `bson:"requestNotifications" json:"requestNotifications"`
	MarketingEmails      bool `bson:"marketingEmails" json:"marketingEmails"`

	// Privacy
	ProfileVisibility string `bson:"profileVisibility" json:"profileVisibility"`
	ShowEmail         bool   `bson:"showEmail" json:"showEmail"`
	ShowPhone         bool   `bson:"showPhone" json:"showPhone"`
	AllowMessages     bool   `bson:"allowMessages" json:"allowMessages"`

	// Account
	TwoFactorAuth  bool `bson:"twoFactorAuth" json:"twoFactorAuth"`
	LoginAlerts    bool `bson:"loginAlerts" json:"loginAlerts"`
	SessionTimeout int  `bson:"sessionTimeout" json:"sessionTimeout"` // minutes
}

// DefaultSettings are shown until the user saves their own.
func DefaultSettings() UserSettings {
	return UserSettings{
		Theme:                "system",
		FontSize:             "medium",
		Animations:           true,
		EmailNotifications:   true,
		PushNotifications:    true,
		RequestNotifications: true,
		MarketingEmails:      false,
		ProfileVisibility:    "public",
		ShowEmail:            false,
		ShowPhone:            true,
		AllowMessages:        true,
		TwoFactorAuth:        false,
		LoginAlerts:          true,
		SessionTimeout:       30,
	}
}

// SettingsUpdateRequest is a partial settings update; nil fields are kept.
type SettingsUpdateRequest struct {
	Theme                *string `json:"theme,omitempty"`
	FontSize             *string `json:"fontSize,omitempty"`
	Animations           *bool   `json:"animations,omitempty"`
	EmailNotifications   *bool   `json:"emailNotifications,omitempty"`
	PushNotifications    *bool   `json:"pushNotifications,omitempty"`
	RequestNotifications *bool   `json:"requestNotifications,omitempty"`
	MarketingEmails      *bool   `json:"marketingEmails,omitempty"`
	ProfileVisibility    *string `json:"profileVisibility,omitempty"`
	ShowEmail            *bool   `json:"showEmail,omitempty"`
	ShowPhone            *bool   `json:"showPhone,omitempty"`
	AllowMessages        *bool   `json:"allowMessages,omitempty"`
	TwoFactorAuth        *bool   `json:"twoFactorAuth,omitempty"`
	LoginAlerts          *bool   `json:"loginAlerts,omitempty"`
	SessionTimeout       *int    `json:"sessionTimeout,omitempty"`
}

// PasswordChangeRequest is the payload of the password endpoint.
type PasswordChangeRequest struct {
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// AccountDeletionRequest must carry the literal confirmation "DELETE".
type AccountDeletionRequest struct {
	Confirm string `json:"confirm"`
}
