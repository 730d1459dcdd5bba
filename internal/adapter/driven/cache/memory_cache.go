package cache

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/internal/domain/repository"
	gocache "github.com/patrickmn/go-cache"
)

const cleanupInterval = 30 * time.Minute

func init() {
	// Itens persistidos são decodificados como interface{}
	gob.Register(entity.Report{})
}

// MemoryCache keeps reports in a go-cache store. When created with a path the
// store is loaded from that file and written back on Close, so reports
// survive between runs of the CLI.
type MemoryCache struct {
	items *gocache.Cache
	path  string
}

var _ repository.CacheRepository = (*MemoryCache)(nil)

// NewMemoryCache returns a process-local cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

// NewFileCache returns a cache backed by the snapshot at path. A missing file
// starts an empty cache.
func NewFileCache(path string) (*MemoryCache, error) {
	c := &MemoryCache{items: gocache.New(gocache.NoExpiration, cleanupInterval), path: path}
	if err := c.items.LoadFile(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load report cache %s: %w", path, err)
	}
	return c, nil
}

// DefaultCachePath is the snapshot location under the user's cache directory.
func DefaultCachePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lease-exit", "reports.gob"), nil
}

func (m *MemoryCache) Get(_ context.Context, key string) (*entity.Report, bool, error) {
	v, found := m.items.Get(key)
	if !found {
		return nil, false, nil
	}
	report, ok := v.(entity.Report)
	if !ok {
		m.items.Delete(key)
		return nil, false, nil
	}
	return &report, true, nil
}

// Set stores the report. A zero ttl never expires.
func (m *MemoryCache) Set(_ context.Context, key string, report entity.Report, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.items.Set(key, report, ttl)
	return nil
}

// Close writes the live entries back to the snapshot file, if there is one.
func (m *MemoryCache) Close() error {
	if m.path == "" {
		return nil
	}
	m.items.DeleteExpired()
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create report cache dir: %w", err)
	}
	if err := m.items.SaveFile(m.path); err != nil {
		return fmt.Errorf("save report cache %s: %w", m.path, err)
	}
	return nil
}
