package repository

import "context"

type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
	Ping(ctx context.Context) error
}
