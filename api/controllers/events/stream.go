package events

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/minjaeyoo/shopcore-backend/internal/promo"
	"github.com/minjaeyoo/shopcore-backend/pkg/logger"
)

// Stream serves promotion notifications as server-sent events. The
// connection stays open until the client disconnects or the session is
// torn down.
func Stream(hub *promo.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}
		if hub == nil {
			http.Error(w, "event hub unavailable", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		clientID := uuid.NewString()
		client := hub.Register(clientID)
		defer hub.Unregister(clientID)

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-client.Events:
				if !ok {
					return
				}
				payload, err := json.Marshal(event)
				if err != nil {
					if logg != nil {
						logg.Error(ctx, "failed to encode promo event", err)
					}
					continue
				}
				fmt.Fprintf(w, "event: promo.%s\ndata: %s\n\n", event.Kind, payload)
				flusher.Flush()
			}
		}
	}
}
