// File: helperhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"helperhub/config"
	"helperhub/cron"
	"helperhub/database"
	notificationRepo "helperhub/database/repository/notification"
	profileRepo "helperhub/database/repository/profile"
	requestRepo "helperhub/database/repository/request"
	settingsRepo "helperhub/database/repository/settings"
	"helperhub/handlers"
	"helperhub/middleware"
	"helperhub/routes"
	"helperhub/services/account"
	"helperhub/services/identity"
	"helperhub/services/matching"
	"helperhub/services/notification"
	"helperhub/services/profile"
	"helperhub/services/request"
	"helperhub/services/settings"
	"helperhub/services/storage"
	"helperhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := utils.FirebaseInit(rootCtx); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if err := database.InitDB(rootCtx, utils.FirebaseApp); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	utils.InitCache()

	assets, err := storage.NewAssetStore(rootCtx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize asset store: %v", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	useMongo := config.UsesMongo()
	profiles := profileRepo.NewProfileRepo(useMongo)
	requests := requestRepo.NewRequestRepo(useMongo)
	inbox := notificationRepo.NewNotificationRepo(useMongo)
	prefs := settingsRepo.NewSettingsRepo(useMongo)

	// services.
	identitySvc, err := identity.NewFirebaseIdentityService(utils.AuthClient)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	matchingSvc := &matching.DefaultMatchingService{
		ProfileRepo: profiles,
		SnapshotTTL: config.AppConfig.ProviderSnapshotTTL,
		Logger:      logger.Named("matching"),
	}
	if cache := utils.GetCacheClient(); cache != nil {
		matchingSvc.CacheClient = cache
	}

	profileSvc := &profile.DefaultProfileService{
		Repo:     profiles,
		Assets:   assets,
		Snapshot: matchingSvc,
		Logger:   logger.Named("profile"),
	}

	notificationSvc := &notification.DefaultNotificationService{
		Repo:     inbox,
		Settings: prefs,
		Pusher:   &notification.FCMPusher{Client: utils.FCMClient},
		Logger:   logger.Named("notification"),
	}

	// Request fan-out goes through the queue when redis is reachable.
	var notifier request.Notifier = &notification.InlineDispatcher{Service: notificationSvc}
	var worker *cron.NotificationWorker
	if utils.GetCacheClient() != nil {
		queue := asynq.NewClient(cron.QueueRedisOpt())
		defer queue.Close()
		notifier = &notification.QueueDispatcher{Client: queue}

		worker = cron.NewNotificationWorker(notificationSvc, logger.Named("worker"))
		worker.Start()
	}

	requestSvc := &request.DefaultRequestService{
		Requests:    requests,
		Profiles:    profiles,
		Notifier:    notifier,
		ServiceType: config.AppConfig.ServiceType,
		Logger:      logger.Named("request"),
	}

	settingsSvc := &settings.DefaultSettingsService{Repo: prefs}
	accountSvc := &account.DefaultAccountService{
		Identity: identitySvc,
		Profiles: profiles,
		Assets:   assets,
		Snapshot: matchingSvc,
		Logger:   logger.Named("account"),
	}

	warmer, err := cron.StartSnapshotWarmer(rootCtx, matchingSvc, logger.Named("cron"))
	if err != nil {
		logger.Sugar().Fatalf("main: invalid SNAPSHOT_REFRESH_SPEC: %v", err)
	}
	utils.StartHealthMonitor(rootCtx, utils.RedisClients(), database.Ping)

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		identitySvc,
		utils.GetAuthCacheClient(),
		&handlers.ProfileHandler{ProfileSvc: profileSvc, IdentitySvc: identitySvc},
		&handlers.ProviderHandler{MatchingSvc: matchingSvc, RequestSvc: requestSvc},
		&handlers.RequestHandler{RequestSvc: requestSvc, ProfileSvc: profileSvc, IdentitySvc: identitySvc},
		&handlers.NotificationHandler{NotificationSvc: notificationSvc},
		&handlers.SettingsHandler{SettingsSvc: settingsSvc, AccountSvc: accountSvc},
	)

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	stop()
	<-warmer.Stop().Done()
	if worker != nil {
		worker.Shutdown()
	}
	database.Close(ctx)

	logger.Sugar().Info("main: server stopped gracefully")
}
