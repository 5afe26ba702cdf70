package contracts

import (
	"context"
	"dashboard-service/internal/app/models"
)

// ViewInvalidator marks rendered dashboard views as stale.
type ViewInvalidator interface {
	Invalidate(ctx context.Context, resources models.InvalidationSet) error
}

type ViewCache interface {
	ViewInvalidator
	Lookup(ctx context.Context, view models.CachedView) models.ViewLookup
	// Store caches body unless the view was invalidated after the lookup
	// that returned generation.
	Store(ctx context.Context, view models.CachedView, generation string, body []byte)
}

type InvalidationPublisher interface {
	Publish(ctx context.Context, event *models.InvalidationEvent) error
}
