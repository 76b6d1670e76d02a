// Package capabilities caches what optional extensions and engine version
// each monitored server provides.
package capabilities

//go:generate mockgen -source=cache.go -destination=cache_mock.go -package=capabilities

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/sbilibin2017/gophpowa/internal/models"
)

// Detector reads the capabilities of a server from the snapshot store.
type Detector interface {
	DetectCapabilities(ctx context.Context, serverID int) (models.CapabilitySet, error)
}

// DefaultCacheSize bounds the number of servers kept in the cache.
const DefaultCacheSize = 1024

// DefaultDetectTimeout bounds a shared detection once it no longer follows
// the context of the caller that started it.
const DefaultDetectTimeout = 10 * time.Second

// Observer is notified of every detection.
type Observer interface {
	ObserveDetection(err error)
}

// Cache serves CapabilitySets, re-detecting entries older than the refresh
// window. Concurrent lookups of one server share a single detection.
type Cache struct {
	detector Detector
	logger   *zap.Logger
	observer Observer
	refresh  time.Duration
	size     int
	timeout  time.Duration

	entries *expirable.LRU[int, models.CapabilitySet]
	group   singleflight.Group
}

// CacheOpt configures a Cache.
type CacheOpt func(*Cache)

// WithRefreshWindow sets how long a detection is served. The first
// non-negative value wins; zero re-detects on every lookup.
func WithRefreshWindow(windows ...time.Duration) CacheOpt {
	return func(c *Cache) {
		for _, w := range windows {
			if w >= 0 {
				c.refresh = w
				return
			}
		}
	}
}

// WithObserver attaches an Observer.
func WithObserver(o Observer) CacheOpt {
	return func(c *Cache) {
		c.observer = o
	}
}

// WithCacheSize bounds the number of cached servers. Values below one
// keep a single entry.
func WithCacheSize(size int) CacheOpt {
	return func(c *Cache) {
		c.size = size
	}
}

// WithDetectTimeout bounds a single detection.
func WithDetectTimeout(d time.Duration) CacheOpt {
	return func(c *Cache) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewCache creates a Cache in front of detector.
func NewCache(detector Detector, logger *zap.Logger, opts ...CacheOpt) *Cache {
	c := &Cache{
		detector: detector,
		logger:   logger,
		size:     DefaultCacheSize,
		timeout:  DefaultDetectTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.refresh > 0 {
		if c.size <= 0 {
			c.size = 1
		}
		c.entries = expirable.NewLRU[int, models.CapabilitySet](c.size, nil, c.refresh)
	}
	return c
}

// Capabilities returns the CapabilitySet of a server.
func (c *Cache) Capabilities(ctx context.Context, serverID int) (models.CapabilitySet, error) {
	scope := scopeFrom(ctx)
	if scope != nil {
		scope.mu.Lock()
		caps, ok := scope.sets[serverID]
		scope.mu.Unlock()
		if ok {
			return caps, nil
		}
	}
	if caps, ok := c.fresh(serverID); ok {
		return caps, nil
	}

	ch := c.group.DoChan(strconv.Itoa(serverID), func() (any, error) {
		return c.detect(ctx, serverID)
	})
	var res singleflight.Result
	select {
	case <-ctx.Done():
		return models.CapabilitySet{}, fmt.Errorf("detect capabilities of server %d: %w", serverID, ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		c.logger.Error("capability detection failed", zap.Int("srvid", serverID), zap.Error(res.Err))
		return models.CapabilitySet{}, fmt.Errorf("detect capabilities of server %d: %w", serverID, res.Err)
	}

	caps := res.Val.(models.CapabilitySet)
	if scope != nil {
		scope.mu.Lock()
		scope.sets[serverID] = caps
		scope.mu.Unlock()
	}
	c.logger.Debug("capabilities detected",
		zap.Int("srvid", serverID),
		zap.Int("version_num", caps.VersionNum),
		zap.Bool("shared", res.Shared),
	)
	return caps, nil
}

// detect is shared by every caller that joined it and ignores the
// cancellation of the one that started it.
func (c *Cache) detect(ctx context.Context, serverID int) (models.CapabilitySet, error) {
	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	caps, err := c.detector.DetectCapabilities(dctx, serverID)
	if c.observer != nil {
		c.observer.ObserveDetection(err)
	}
	if err != nil {
		return models.CapabilitySet{}, err
	}
	caps.ServerID = serverID
	caps.DetectedAt = time.Now()
	if c.entries != nil {
		c.entries.Add(serverID, caps)
	}
	return caps, nil
}

// HasCapability reports whether a server provides the named extension.
func (c *Cache) HasCapability(ctx context.Context, serverID int, name string) (bool, error) {
	caps, err := c.Capabilities(ctx, serverID)
	if err != nil {
		return false, err
	}
	return caps.Has(name), nil
}

// EngineVersion returns the server's engine version and whether it is known.
func (c *Cache) EngineVersion(ctx context.Context, serverID int) (int, bool, error) {
	caps, err := c.Capabilities(ctx, serverID)
	if err != nil {
		return 0, false, err
	}
	v, ok := caps.Version()
	return v, ok, nil
}

// Invalidate drops the cached entry of a server.
func (c *Cache) Invalidate(serverID int) {
	if c.entries != nil {
		c.entries.Remove(serverID)
	}
}

func (c *Cache) fresh(serverID int) (models.CapabilitySet, bool) {
	if c.entries == nil {
		return models.CapabilitySet{}, false
	}
	return c.entries.Get(serverID)
}

type scopeKey struct{}

type requestScope struct {
	mu   sync.Mutex
	sets map[int]models.CapabilitySet
}

// WithRequestScope returns a context under which every server is detected
// at most once, whatever the refresh window.
func WithRequestScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeKey{}, &requestScope{sets: make(map[int]models.CapabilitySet)})
}

func scopeFrom(ctx context.Context) *requestScope {
	s, _ := ctx.Value(scopeKey{}).(*requestScope)
	return s
}
