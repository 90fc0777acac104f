package matching

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	profileRepo "helperhub/database/repository/profile"
	"helperhub/models"
	"helperhub/utils"

	"github.com/go-redis/redis/v8"
)

type listOnlyRepo struct {
	profileRepo.ProfileRepository
	profiles []models.UserProfile
	err      error
	calls    int
}

func (r *listOnlyRepo) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	r.calls++
	return r.profiles, r.err
}

func TestFindProvidersWithoutCache(t *testing.T) {
	repo := &listOnlyRepo{profiles: []models.UserProfile{
		seeker("a", []string{models.CategoryElectrician}, "Pune", "Fan Install"),
		{UserID: "b", UserType: models.UserTypeEmployer},
	}}
	svc := &DefaultMatchingService{ProfileRepo: repo}

	got, err := svc.FindProviders(context.Background(), Query{Category: CategoryAll})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].UserID != "a" {
		t.Errorf("unexpected providers %v", ids(got))
	}

	svc.Invalidate(context.Background())
	if err := svc.RefreshSnapshot(context.Background()); err != nil {
		t.Fatalf("unexpected refresh error: %v", err)
	}
	if repo.calls != 2 {
		t.Errorf("expected every call to reload without a cache, got %d loads", repo.calls)
	}
}

func TestFindProvidersStoreFailure(t *testing.T) {
	svc := &DefaultMatchingService{ProfileRepo: &listOnlyRepo{err: errors.New("store down")}}
	_, err := svc.FindProviders(context.Background(), Query{})
	if !utils.IsKind(err, utils.KindRemote) {
		t.Fatalf("expected remote error, got %v", err)
	}
}

type memCache struct {
	entries map[string]string
	ttls    map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memCache) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.entries[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		m.entries[key] = string(v)
	case string:
		m.entries[key] = v
	}
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *memCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.entries[k]; ok {
			delete(m.entries, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestFindProvidersServesCachedSnapshot(t *testing.T) {
	cache := newMemCache()
	cached := []models.UserProfile{seeker("cached", []string{models.CategoryElectrician}, "Pune", "Fan Install")}
	data, _ := json.Marshal(cached)
	cache.entries[utils.ProviderSnapshotKey] = string(data)

	repo := &listOnlyRepo{profiles: []models.UserProfile{seeker("fresh", []string{models.CategoryElectrician}, "Pune")}}
	svc := &DefaultMatchingService{ProfileRepo: repo, CacheClient: cache}

	got, err := svc.FindProviders(context.Background(), Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].UserID != "cached" {
		t.Errorf("expected cached snapshot, got %v", ids(got))
	}
	if repo.calls != 0 {
		t.Errorf("cache hit must not reach the store, got %d loads", repo.calls)
	}
}

func TestFindProvidersReloadsCorruptSnapshot(t *testing.T) {
	cache := newMemCache()
	cache.entries[utils.ProviderSnapshotKey] = "{not json"

	repo := &listOnlyRepo{profiles: []models.UserProfile{seeker("fresh", []string{models.CategoryElectrician}, "Pune")}}
	svc := &DefaultMatchingService{ProfileRepo: repo, CacheClient: cache, SnapshotTTL: time.Minute}

	got, err := svc.FindProviders(context.Background(), Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].UserID != "fresh" || repo.calls != 1 {
		t.Fatalf("expected one reload returning fresh, got %v after %d loads", ids(got), repo.calls)
	}

	var stored []models.UserProfile
	if err := json.Unmarshal([]byte(cache.entries[utils.ProviderSnapshotKey]), &stored); err != nil {
		t.Fatalf("reload should rewrite the cache entry: %v", err)
	}
	if len(stored) != 1 || stored[0].UserID != "fresh" {
		t.Errorf("unexpected cached snapshot %v", ids(stored))
	}
	if cache.ttls[utils.ProviderSnapshotKey] != time.Minute {
		t.Errorf("expected snapshot TTL to be applied, got %v", cache.ttls[utils.ProviderSnapshotKey])
	}
}

func TestInvalidateForcesReload(t *testing.T) {
	cache := newMemCache()
	repo := &listOnlyRepo{profiles: []models.UserProfile{seeker("a", []string{models.CategoryElectrician}, "Pune")}}
	svc := &DefaultMatchingService{ProfileRepo: repo, CacheClient: cache}

	for i := 0; i < 2; i++ {
		if _, err := svc.FindProviders(context.Background(), Query{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if repo.calls != 1 {
		t.Fatalf("expected second query to hit the cache, got %d loads", repo.calls)
	}

	svc.Invalidate(context.Background())
	if _, ok := cache.entries[utils.ProviderSnapshotKey]; ok {
		t.Fatalf("snapshot should be dropped")
	}
	if _, err := svc.FindProviders(context.Background(), Query{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 2 {
		t.Errorf("expected a reload after invalidation, got %d loads", repo.calls)
	}
}
