package repository

import (
	"context"
	"time"

	"github.com/diillson/lease-exit-go/internal/domain/entity"
)

// CacheRepository stores built reports by lease fingerprint.
type CacheRepository interface {
	// Get returns the cached report, or found == false on a miss.
	Get(ctx context.Context, key string) (report *entity.Report, found bool, err error)
	Set(ctx context.Context, key string, report entity.Report, ttl time.Duration) error
}
