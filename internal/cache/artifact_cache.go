package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ArtifactCache stores normalized artifact JSON keyed by note so a
// note whose raw content has not changed is parsed at most once per
// TTL window across all server instances.
type ArtifactCache interface {
	Set(ctx context.Context, noteID string, artifact interface{}) error
	Get(ctx context.Context, noteID string, out interface{}) (bool, error)
	Delete(ctx context.Context, noteID string) error
}

type artifactCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewArtifactCache creates a new artifact cache
func NewArtifactCache(client *redis.Client) ArtifactCache {
	return &artifactCache{
		client: client,
		ttl:    12 * time.Hour,
	}
}

func (c *artifactCache) artifactKey(noteID string) string {
	return fmt.Sprintf("artifact:%s", noteID)
}

func (c *artifactCache) Set(ctx context.Context, noteID string, artifact interface{}) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.artifactKey(noteID), data, c.ttl).Err()
}

func (c *artifactCache) Get(ctx context.Context, noteID string, out interface{}) (bool, error) {
	data, err := c.client.Get(ctx, c.artifactKey(noteID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *artifactCache) Delete(ctx context.Context, noteID string) error {
	return c.client.Del(ctx, c.artifactKey(noteID)).Err()
}
