package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis builds the client backing the reports cache. An empty URL means the
// cache is disabled: callers get a nil client and must treat it as such. With a
// URL configured, connectivity is verified at startup so a bad REDIS_URL fails
// fast instead of surfacing as cache warnings on the first report.
func NewRedis(redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
