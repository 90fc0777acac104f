package routes

import (
	"net/http"
	"time"

	"helperhub/handlers"
	"helperhub/middleware"
	"helperhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers signup, profile and account endpoints.
func RegisterAccountRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.POST("/signup", hb.SignupHandler)
	api.GET("/me/type", hb.GetUserTypeHandler)

	profile := api.Group("/profile")
	{
		profile.GET("", hb.GetProfileHandler)
		profile.PATCH("", hb.UpdateProfileHandler)
		profile.GET("/completeness", hb.GetCompletenessHandler)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", hb.GetSettingsHandler)
		settings.PATCH("", hb.UpdateSettingsHandler)
		settings.PUT("/push-token", hb.RegisterPushTokenHandler)
	}

	account := api.Group("/account")
	{
		account.PUT("/password", hb.ChangePasswordHandler)
		account.DELETE("", hb.DeleteAccountHandler)
	}
}

// RegisterMarketplaceRoutes registers provider listing and request endpoints.
func RegisterMarketplaceRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/providers", hb.ListProvidersHandler)
	api.POST("/requests", hb.SendRequestHandler)
	api.GET("/requests", hb.ListRequestsHandler)
}

// RegisterNotificationRoutes registers inbox endpoints.
func RegisterNotificationRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/notifications", hb.ListNotificationsHandler)
	api.POST("/notifications/read", hb.MarkAllReadHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.CheckedAt.IsZero() && !status.Store {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "message": "Hi, I'm HelperHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	api := r.Group("/api")
	api.Use(middleware.FirebaseAuthMiddleware(hb.Verifier, hb.AuthCache))
	RegisterAccountRoutes(api, hb)
	RegisterMarketplaceRoutes(api, hb)
	RegisterNotificationRoutes(api, hb)
}
