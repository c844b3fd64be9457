package kafka

import (
	"time"

	"github.com/tair/price-list/internal/catalog/domain"
)

// CatalogChangedEvent is published after every committed catalog mutation
type CatalogChangedEvent struct {
	EventID   string              `json:"event_id"`
	EventType string              `json:"event_type"`
	Entity    domain.ChangeEntity `json:"entity"`
	Action    domain.ChangeAction `json:"action"`
	EntityID  string              `json:"entity_id"`
	Origin    string              `json:"origin"`
	Timestamp time.Time           `json:"timestamp"`
}

// Event types
const (
	EventTypeCatalogChanged = "catalog.changed"
)

// Kafka topics
const (
	TopicCatalogChanged = "catalog-changed"
)

// Message headers
const (
	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"
	HeaderOrigin    = "origin"
)

// EventFromChange converts a committed change into its wire form
func EventFromChange(change domain.Change) CatalogChangedEvent {
	return CatalogChangedEvent{
		EventType: EventTypeCatalogChanged,
		Entity:    change.Entity,
		Action:    change.Action,
		EntityID:  change.ID,
		Origin:    change.Origin,
		Timestamp: change.At,
	}
}
