package handlers

import (
	"helperhub/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Verifier  middleware.TokenVerifier
	AuthCache *redis.Client // may be nil

	// Profile endpoints
	SignupHandler          gin.HandlerFunc
	GetUserTypeHandler     gin.HandlerFunc
	GetProfileHandler      gin.HandlerFunc
	UpdateProfileHandler   gin.HandlerFunc
	GetCompletenessHandler gin.HandlerFunc

	// Provider listing and requests
	ListProvidersHandler gin.HandlerFunc
	SendRequestHandler   gin.HandlerFunc
	ListRequestsHandler  gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler gin.HandlerFunc
	MarkAllReadHandler       gin.HandlerFunc

	// Settings and account endpoints
	GetSettingsHandler       gin.HandlerFunc
	UpdateSettingsHandler    gin.HandlerFunc
	RegisterPushTokenHandler gin.HandlerFunc
	ChangePasswordHandler    gin.HandlerFunc
	DeleteAccountHandler     gin.HandlerFunc
}

// NewHandlerBundle wires handler structs into a bundle.
func NewHandlerBundle(
	verifier middleware.TokenVerifier,
	authCache *redis.Client,
	ph *ProfileHandler,
	pv *ProviderHandler,
	rh *RequestHandler,
	nh *NotificationHandler,
	sh *SettingsHandler,
) *HandlerBundle {
	return &HandlerBundle{
		Verifier:  verifier,
		AuthCache: authCache,

		SignupHandler:          ph.SignupHandler,
		GetUserTypeHandler:     ph.GetUserTypeHandler,
		GetProfileHandler:      ph.GetProfileHandler,
		UpdateProfileHandler:   ph.UpdateProfileHandler,
		GetCompletenessHandler: ph.GetCompletenessHandler,

		ListProvidersHandler: pv.ListProvidersHandler,
		SendRequestHandler:   rh.SendRequestHandler,
		ListRequestsHandler:  rh.ListRequestsHandler,

		ListNotificationsHandler: nh.ListNotificationsHandler,
		MarkAllReadHandler:       nh.MarkAllReadHandler,

		GetSettingsHandler:       sh.GetSettingsHandler,
		UpdateSettingsHandler:    sh.UpdateSettingsHandler,
		RegisterPushTokenHandler: sh.RegisterPushTokenHandler,
		ChangePasswordHandler:    sh.ChangePasswordHandler,
		DeleteAccountHandler:     sh.DeleteAccountHandler,
	}
}
