// Package sizecache caches probed image sizes in a key-value store.
package sizecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/db"
	"github.com/kailas-cloud/cardex/internal/imagesize"
)

const keySpace = "img_size:"

// Prober resolves the size of an image URL.
type Prober interface {
	Probe(ctx context.Context, url string) (imagesize.Size, error)
}

// store is the consumer interface for the size cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// CachedProber caches image sizes keyed by URL hash.
type CachedProber struct {
	inner      Prober
	store      store
	prefix     string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner Prober,
	s store,
	prefix string,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedProber {
	return &CachedProber{
		inner:      inner,
		store:      s,
		prefix:     prefix,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Probe returns a cached size or calls the inner prober.
// Failed probes are not cached.
func (c *CachedProber) Probe(ctx context.Context, url string) (imagesize.Size, error) {
	key := c.cacheKey(url)

	if size, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return size, nil
	}

	c.incCache("miss")

	size, err := c.inner.Probe(ctx, url)
	if err != nil {
		return imagesize.Size{}, fmt.Errorf("probe image: %w", err)
	}

	c.putToCache(ctx, key, size)
	return size, nil
}

func (c *CachedProber) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedProber) cacheKey(url string) string {
	h := sha256.Sum256([]byte(url))
	return c.prefix + keySpace + hex.EncodeToString(h[:])
}

func (c *CachedProber) getFromCache(ctx context.Context, key string) (imagesize.Size, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached image size", zap.String("key", key), zap.Error(err))
		}
		return imagesize.Size{}, false
	}

	var size imagesize.Size
	if err := json.Unmarshal(data, &size); err != nil || !size.Known() {
		c.logger.Warn("Dropping corrupt cached image size", zap.String("key", key), zap.Error(err))
		if err := c.store.Del(ctx, key); err != nil {
			c.logger.Warn("Failed to drop cached image size", zap.String("key", key), zap.Error(err))
		}
		return imagesize.Size{}, false
	}
	return size, true
}

func (c *CachedProber) putToCache(ctx context.Context, key string, size imagesize.Size) {
	data, err := json.Marshal(size)
	if err != nil {
		c.logger.Warn("Failed to encode image size", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache image size", zap.String("key", key), zap.Error(err))
	}
}
