package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"wecomment/internal/model"
)

const (
	// VideoCachePrefix is the key prefix for hydrated video rows
	VideoCachePrefix = "video:meta:"

	// VideoCacheTTL bounds staleness; rows are immutable once hydrated so
	// the TTL mostly limits memory, not correctness
	VideoCacheTTL = 24 * time.Hour
)

// VideoCache is a read-through cache of hydrated video rows keyed by the
// YouTube video ID. Postgres stays the source of truth; a miss or a cache
// failure always falls back to the store.
type VideoCache interface {
	// Get returns the cached row, or found=false on miss or error.
	Get(ctx context.Context, youtubeVideoID string) (video *model.Video, found bool)

	// Set stores the row with a TTL. Best effort; failures are logged only.
	Set(ctx context.Context, video *model.Video)
}

// RedisVideoCache implements VideoCache on the shared Redis client.
type RedisVideoCache struct {
	client *redis.Client
}

// NewVideoCache creates a VideoCache backed by Redis.
func NewVideoCache(client *redis.Client) VideoCache {
	return &RedisVideoCache{client: client}
}

// videoKey returns the Redis key for one YouTube video ID.
func videoKey(youtubeVideoID string) string {
	return VideoCachePrefix + youtubeVideoID
}

func (c *RedisVideoCache) Get(ctx context.Context, youtubeVideoID string) (*model.Video, bool) {
	raw, err := c.client.Get(ctx, videoKey(youtubeVideoID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("[VideoCache] Get FAILED: video=%s err=%v", youtubeVideoID, err)
		return nil, false
	}

	var video model.Video
	if err := json.Unmarshal(raw, &video); err != nil {
		log.Printf("[VideoCache] Get decode FAILED: video=%s err=%v", youtubeVideoID, err)
		return nil, false
	}
	return &video, true
}

func (c *RedisVideoCache) Set(ctx context.Context, video *model.Video) {
	raw, err := json.Marshal(video)
	if err != nil {
		log.Printf("[VideoCache] Set encode FAILED: video=%s err=%v", video.YouTubeVideoID, err)
		return
	}
	if err := c.client.Set(ctx, videoKey(video.YouTubeVideoID), raw, VideoCacheTTL).Err(); err != nil {
		log.Printf("[VideoCache] Set FAILED: video=%s err=%v", video.YouTubeVideoID, err)
	}
}
