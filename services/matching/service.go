package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	profileRepo "helperhub/database/repository/profile"
	"helperhub/models"
	"helperhub/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// MatchingService finds providers for an employer's query.
type MatchingService interface {
	FindProviders(ctx context.Context, q Query) ([]models.UserProfile, error)
	// RefreshSnapshot reloads every profile and replaces the cached snapshot.
	RefreshSnapshot(ctx context.Context) error
	// Invalidate drops the cached snapshot so the next query reloads it.
	Invalidate(ctx context.Context)
}

// SnapshotCache is the subset of *redis.Client the snapshot needs.
type SnapshotCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// DefaultMatchingService runs Match over a snapshot of all profiles. The
// snapshot is cached in redis when a client is configured.
type DefaultMatchingService struct {
	ProfileRepo profileRepo.ProfileRepository
	CacheClient SnapshotCache // nil disables caching
	SnapshotTTL time.Duration
	Logger      *zap.Logger
}

func (s *DefaultMatchingService) FindProviders(ctx context.Context, q Query) ([]models.UserProfile, error) {
	profiles, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Match(profiles, q), nil
}

func (s *DefaultMatchingService) RefreshSnapshot(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

func (s *DefaultMatchingService) snapshot(ctx context.Context) ([]models.UserProfile, error) {
	if s.CacheClient != nil {
		cached, err := s.CacheClient.Get(ctx, utils.ProviderSnapshotKey).Bytes()
		if err == nil {
			var profiles []models.UserProfile
			if err := json.Unmarshal(cached, &profiles); err == nil {
				return profiles, nil
			}
			// A corrupt entry falls through to a reload.
		} else if err != redis.Nil {
			s.logger().Warn("provider snapshot cache read failed", zap.Error(err))
		}
	}
	return s.load(ctx)
}

func (s *DefaultMatchingService) load(ctx context.Context) ([]models.UserProfile, error) {
	profiles, err := s.ProfileRepo.ListProfiles(ctx)
	if err != nil {
		return nil, utils.NewRemoteError("Failed to load providers", err)
	}

	if s.CacheClient != nil {
		data, err := json.Marshal(profiles)
		if err != nil {
			return nil, fmt.Errorf("failed to encode provider snapshot: %w", err)
		}
		if err := s.CacheClient.Set(ctx, utils.ProviderSnapshotKey, data, s.ttl()).Err(); err != nil {
			s.logger().Warn("provider snapshot cache write failed", zap.Error(err))
		}
	}
	return profiles, nil
}

func (s *DefaultMatchingService) Invalidate(ctx context.Context) {
	if s.CacheClient == nil {
		return
	}
	if err := s.CacheClient.Del(ctx, utils.ProviderSnapshotKey).Err(); err != nil {
		s.logger().Warn("provider snapshot invalidation failed", zap.Error(err))
	}
}

func (s *DefaultMatchingService) ttl() time.Duration {
	if s.SnapshotTTL <= 0 {
		return 5 * time.Minute
	}
	return s.SnapshotTTL
}

func (s *DefaultMatchingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
