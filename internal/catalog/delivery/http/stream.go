package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/pkg/logger"
)

// StreamPath serves server-sent events with the derived view after every catalog change
const StreamPath = "/api/products/stream"

// StreamProducts handles GET /api/products/stream
func (h *CatalogHandler) StreamProducts(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r.URL.Query())
	if err != nil {
		respondFailure(w, r, err, loadFailure)
		return
	}

	ctx := r.Context()
	rc := http.NewResponseController(w)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	h.streamClients.Inc()
	defer h.streamClients.Dec()

	logger.Info(ctx).
		Str("filter_key", filters.Key()).
		Msg("Product stream opened")

	seq := 0
	send := func(event string, payload interface{}) error {
		seq++
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", seq, event, data); err != nil {
			return err
		}
		return rc.Flush()
	}

	// Loads the catalog so the subscription starts with a value
	if _, err := h.catalog.Snapshot(ctx); err != nil {
		logger.Warn(ctx).Err(err).Msg("Initial catalog load failed")
		if err := send("error", Response{Success: false, Error: loadFailure}); err != nil {
			return
		}
	}

	updates := h.catalog.Subscribe(ctx)
	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug(ctx).Int("events", seq).Msg("Product stream closed")
			return

		case snap, ok := <-updates:
			if !ok {
				return
			}
			if err := send("view", h.streamPayload(snap, filters)); err != nil {
				logger.Debug(ctx).Err(err).Msg("Product stream write failed")
				return
			}

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func (h *CatalogHandler) streamPayload(snap domain.Snapshot, filters domain.FilterState) Response {
	v := h.queries.ListProducts.Derive(snap, filters)
	return Response{
		Success: true,
		Data: map[string]interface{}{
			"products": v.Products,
			"stats":    v.Stats,
			"filters":  filters,
		},
	}
}
