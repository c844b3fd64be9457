package kafka

import (
	"context"

	"github.com/tair/price-list/pkg/logger"
)

// Refresher reloads local state after a remote change
type Refresher interface {
	Refresh(ctx context.Context) error
}

// NewRefreshHandler returns a handler that refreshes target for changes made
// by other replicas. Events from selfOrigin are ignored.
func NewRefreshHandler(target Refresher, selfOrigin string) EventHandler {
	return func(ctx context.Context, event CatalogChangedEvent) error {
		if event.Origin != "" && event.Origin == selfOrigin {
			return nil
		}

		logger.Info(ctx).
			Str("origin", event.Origin).
			Str("entity", string(event.Entity)).
			Str("action", string(event.Action)).
			Str("entity_id", event.EntityID).
			Msg("Refreshing catalog after remote change")
		return target.Refresh(ctx)
	}
}
