// Package viewcache keeps rendered dashboard read responses in Redis and
// purges them when a mutation makes a view stale.
package viewcache

import (
	"context"
	"crypto/sha256"
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/utils"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	viewCacheInstance contracts.ViewCache
	onceViewCache     sync.Once
)

type viewCache struct {
	Redis     contracts.RedisRepository
	Publisher contracts.InvalidationPublisher
	Log       *zap.Logger
	TTL       time.Duration
	Enabled   bool
	now       func() time.Time
}

// NewViewCache returns the process-wide cache. publisher may be nil, in which
// case purges stay local.
func NewViewCache(redisRepository contracts.RedisRepository, publisher contracts.InvalidationPublisher, logger *zap.Logger, ttl time.Duration, enabled bool) contracts.ViewCache {
	onceViewCache.Do(func() {
		viewCacheInstance = &viewCache{
			Redis:     redisRepository,
			Publisher: publisher,
			Log:       logger,
			TTL:       ttl,
			Enabled:   enabled,
			now:       time.Now,
		}
	})
	return viewCacheInstance
}

// Lookup never fails: any Redis problem is logged and reported as a miss.
func (c *viewCache) Lookup(ctx context.Context, view models.CachedView) models.ViewLookup {
	if !c.Enabled || view.Route == "" {
		return models.ViewLookup{}
	}

	requestID := utils.GetRequestID(ctx)
	generation, err := c.generation(ctx, view.Route)
	if err != nil {
		c.Log.Warn("viewCache.Lookup error reading generation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRouteKey, view.Route),
			zap.Error(err),
		)
		return models.ViewLookup{}
	}

	key := CacheKey(view)
	body, err := c.Redis.Get(ctx, key)
	if err != nil {
		c.Log.Warn("viewCache.Lookup error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return models.ViewLookup{Generation: generation}
	}
	if body == "" {
		return models.ViewLookup{Generation: generation}
	}
	return models.ViewLookup{Body: []byte(body), Hit: true, Generation: generation}
}

// Store skips renders that raced an invalidation of the route or of any view
// covering it. The generation is checked again after writing, so a purge
// that ran between the first check and the write still wins.
func (c *viewCache) Store(ctx context.Context, view models.CachedView, generation string, body []byte) {
	if !c.Enabled || view.Route == "" || len(body) == 0 || generation == "" {
		return
	}

	requestID := utils.GetRequestID(ctx)
	key := CacheKey(view)
	if !c.unchanged(ctx, view.Route, generation) {
		c.Log.Debug("viewCache.Store skipped stale render",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
		)
		return
	}

	if err := c.Redis.Set(ctx, key, body, c.TTL); err != nil {
		c.Log.Warn("viewCache.Store error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return
	}

	if err := c.index(ctx, view.Route, key); err != nil {
		c.Log.Warn("viewCache.Store failed to index key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}

	if !c.unchanged(ctx, view.Route, generation) {
		if err := c.Redis.Delete(ctx, key); err != nil {
			c.Log.Warn("viewCache.Store failed to drop stale render",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, key),
				zap.Error(err),
			)
		}
	}
}

// index records key under its route and the route in the registry. The
// route index lives as long as the views it lists.
func (c *viewCache) index(ctx context.Context, route, key string) error {
	indexKey := routeKeysKey(route)
	if err := c.Redis.AddToSet(ctx, indexKey, key); err != nil {
		return err
	}
	if c.TTL > 0 {
		if err := c.Redis.Expire(ctx, indexKey, c.TTL); err != nil {
			return err
		}
	}
	return c.Redis.AddToSortedSet(ctx, constvars.ViewCacheRouteSetKey, float64(c.now().Unix()), route)
}

// Invalidate rotates the generation of every route of resources, purges the
// cached views they cover and then announces the routes on the invalidation
// exchange. The first error is returned after all routes were attempted.
func (c *viewCache) Invalidate(ctx context.Context, resources models.InvalidationSet) error {
	requestID := utils.GetRequestID(ctx)
	routes := RoutesFor(resources)
	if len(routes) == 0 {
		return nil
	}

	c.Log.Info("viewCache.Invalidate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingRoutesKey, routes),
	)

	var firstErr error
	if c.Enabled {
		firstErr = c.rotateGenerations(ctx, routes)
		if err := c.purge(ctx, routes); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.Publisher != nil {
		event := &models.InvalidationEvent{
			RequestID: requestID,
			Routes:    routes,
			Resources: resources,
			IssuedAt:  c.now().UTC(),
		}
		if err := c.Publisher.Publish(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if firstErr != nil {
		c.Log.Error("viewCache.Invalidate error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings(constvars.LoggingRoutesKey, routes),
			zap.Error(firstErr),
		)
		return firstErr
	}

	c.Log.Info("viewCache.Invalidate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingRoutesKey, routes),
	)
	return nil
}

// rotateGenerations gives every target a fresh random marker. Random values
// never repeat, so an expired marker cannot be mistaken for an old one.
func (c *viewCache) rotateGenerations(ctx context.Context, targets []string) error {
	var firstErr error
	for _, target := range targets {
		if err := c.Redis.Set(ctx, generationKey(target), uuid.NewString(), c.TTL); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// generation concatenates the markers of route and of every route covering
// it, the same ancestors Covers matches.
func (c *viewCache) generation(ctx context.Context, route string) (string, error) {
	prefixes := coveringRoutes(route)
	keys := make([]string, len(prefixes))
	for i, prefix := range prefixes {
		keys[i] = generationKey(prefix)
	}
	markers, err := c.Redis.GetMany(ctx, keys...)
	if err != nil {
		return "", err
	}
	return "gen:" + strings.Join(markers, ","), nil
}

func (c *viewCache) unchanged(ctx context.Context, route, generation string) bool {
	current, err := c.generation(ctx, route)
	return err == nil && current == generation
}

// purge drops registry entries whose views have all expired, then deletes
// the views of every registered route the targets cover.
func (c *viewCache) purge(ctx context.Context, targets []string) error {
	var firstErr error
	if c.TTL > 0 {
		cutoff := c.now().Add(-c.TTL).Unix()
		if err := c.Redis.RemoveFromSortedSetByScore(ctx, constvars.ViewCacheRouteSetKey, float64(cutoff)); err != nil {
			firstErr = err
		}
	}

	cachedRoutes, err := c.Redis.GetSortedSetMembers(ctx, constvars.ViewCacheRouteSetKey)
	if err != nil {
		return err
	}

	for _, route := range cachedRoutes {
		if !coveredByAny(targets, route) {
			continue
		}

		indexKey := routeKeysKey(route)
		keys, err := c.Redis.GetSetMembers(ctx, indexKey)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := c.Redis.Delete(ctx, append(keys, indexKey)...); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := c.Redis.RemoveFromSortedSet(ctx, constvars.ViewCacheRouteSetKey, route); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func coveredByAny(targets []string, route string) bool {
	for _, target := range targets {
		if Covers(target, route) {
			return true
		}
	}
	return false
}

// CacheKey is scoped to the route and hashes everything that makes two
// renders of the route differ, so tokens never reach Redis in clear text.
func CacheKey(view models.CachedView) string {
	hash := sha256.New()
	hash.Write([]byte(view.Session.AccessToken))
	hash.Write([]byte{0})
	hash.Write([]byte(view.Session.Locale))
	hash.Write([]byte{0})
	hash.Write([]byte(view.Query))
	return fmt.Sprintf("%s:%s:%s", constvars.ViewCacheKeyPrefix, view.Route, hex.EncodeToString(hash.Sum(nil)))
}

func routeKeysKey(route string) string {
	return fmt.Sprintf("%s:keys:%s", constvars.ViewCacheKeyPrefix, route)
}

func generationKey(route string) string {
	return fmt.Sprintf("%s:generation:%s", constvars.ViewCacheKeyPrefix, strings.TrimRight(route, "/"))
}

// coveringRoutes lists the root, every ancestor of route and route itself:
// "/dashboard/users/U1" yields "", "/dashboard", "/dashboard/users" and
// "/dashboard/users/U1".
func coveringRoutes(route string) []string {
	segments := strings.Split(strings.TrimRight(route, "/"), "/")
	prefixes := make([]string, len(segments))
	for i := range segments {
		prefixes[i] = strings.Join(segments[:i+1], "/")
	}
	return prefixes
}
