package httpapi

import "net/http"

type HealthHandler struct{}

// Health is the liveness probe the UI polls to find a running engine.
func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"ok": true})
}
