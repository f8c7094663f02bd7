package repository

import "context"

// CacheRepository stores serialized values by key. A miss and a failed
// lookup are both reported as ok == false.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
