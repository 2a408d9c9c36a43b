package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/bigstack/internal/logger"
	"github.com/sbilibin2017/bigstack/internal/models"
)

// profileTombstone marks a recently evicted username. Fills do not overwrite it.
const (
	profileTombstone    = "-"
	profileTombstoneTTL = 10 * time.Second
)

// ProfileCacheRepository caches public profiles by username in Redis.
type ProfileCacheRepository struct {
	client       *redis.Client
	exp          time.Duration // expiration duration for cached profiles
	tombstoneTTL time.Duration
}

// NewProfileCacheRepository creates a new cache repository with the given TTL.
func NewProfileCacheRepository(client *redis.Client, expiration time.Duration) *ProfileCacheRepository {
	return &ProfileCacheRepository{
		client:       client,
		exp:          expiration,
		tombstoneTTL: profileTombstoneTTL,
	}
}

func profileCacheKey(username string) string {
	return fmt.Sprintf("profile:username:%s", username)
}

// Get returns the cached profile or ErrNotFound on a miss.
func (r *ProfileCacheRepository) Get(ctx context.Context, username string) (*models.PublicProfile, error) {
	key := profileCacheKey(username)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow("redis",
		"op", "get",
		"key", key,
		"error", err,
	)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if string(val) == profileTombstone {
		return nil, ErrNotFound
	}

	var profile models.PublicProfile
	if err := json.Unmarshal(val, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Set caches the profile under its username unless the key is already
// present, either as a cached profile or as an eviction tombstone.
func (r *ProfileCacheRepository) Set(ctx context.Context, profile *models.PublicProfile) error {
	key := profileCacheKey(profile.Username)

	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	stored, err := r.client.SetNX(ctx, key, data, r.exp).Result()
	logger.Log.Infow("redis",
		"op", "setnx",
		"key", key,
		"ttl", r.exp,
		"stored", stored,
		"error", err,
	)
	return err
}

// Delete evicts the cached profile by replacing it with a short-lived
// tombstone. Missing keys are not an error.
func (r *ProfileCacheRepository) Delete(ctx context.Context, username string) error {
	key := profileCacheKey(username)

	err := r.client.Set(ctx, key, profileTombstone, r.tombstoneTTL).Err()
	logger.Log.Infow("redis",
		"op", "tombstone",
		"key", key,
		"ttl", r.tombstoneTTL,
		"error", err,
	)
	return err
}
