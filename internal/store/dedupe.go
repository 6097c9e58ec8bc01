package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// dedupeTTL bounds how long a job_id stays marked as seen. Job boards recycle
// IDs rarely; thirty days comfortably covers a posting's lifetime.
const dedupeTTL = 30 * 24 * time.Hour

// Deduper tracks already-ingested job IDs in Redis so repeated scrapes skip
// records the catalog has seen recently.
type Deduper struct {
	client *redis.Client
	prefix string
}

// NewDeduper connects to Redis at the given URL.
func NewDeduper(redisURL string) (*Deduper, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return &Deduper{client: redis.NewClient(opts), prefix: "ingest:seen:"}, nil
}

// MarkSeen records a job ID, returning true if this is the first sighting
// within the dedupe window.
func (d *Deduper) MarkSeen(ctx context.Context, jobID string) (bool, error) {
	first, err := d.client.SetNX(ctx, d.prefix+jobID, 1, dedupeTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark job %s seen: %w", jobID, err)
	}
	return first, nil
}

// Forget drops a job ID from the dedupe window, forcing the next scrape to
// re-ingest it.
func (d *Deduper) Forget(ctx context.Context, jobID string) error {
	if err := d.client.Del(ctx, d.prefix+jobID).Err(); err != nil {
		return fmt.Errorf("failed to forget job %s: %w", jobID, err)
	}
	return nil
}

// Close releases the Redis connection.
func (d *Deduper) Close() error {
	return d.client.Close()
}
