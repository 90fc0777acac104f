package cron

import (
	"context"

	"helperhub/config"
	"helperhub/services/matching"

	robfigcron "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartSnapshotWarmer rebuilds the provider snapshot on SNAPSHOT_REFRESH_SPEC
// so listing requests rarely hit the store. The returned scheduler must be
// stopped on shutdown.
func StartSnapshotWarmer(ctx context.Context, svc matching.MatchingService, logger *zap.Logger) (*robfigcron.Cron, error) {
	spec := config.AppConfig.SnapshotRefreshSpec
	if spec == "" {
		spec = "@every 5m"
	}
	c := robfigcron.New(robfigcron.WithChain(robfigcron.SkipIfStillRunning(robfigcron.DiscardLogger)))
	_, err := c.AddFunc(spec, func() {
		if err := svc.RefreshSnapshot(ctx); err != nil {
			logger.Warn("[SnapshotWarmer] refresh failed", zap.Error(err))
			return
		}
		logger.Debug("[SnapshotWarmer] provider snapshot refreshed")
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
