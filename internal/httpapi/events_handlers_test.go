package httpapi

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"enrich-engine/internal/events"
)

// The stream must survive the full middleware chain; a wrapper that hides
// http.Flusher kills SSE silently.
func TestServeSSEThroughMiddlewareChain(t *testing.T) {
	log := zap.NewNop()
	hub := events.NewHub()
	mux := NewMux(Deps{Log: log, Hub: hub, Enricher: &fakeEnricher{}})
	srv := httptest.NewServer(Chain(mux, Cors, RequestID, Recover(log), AccessLog(log)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readData := func() string {
		t.Helper()
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "data: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "data: "))
			}
		}
	}

	assert.Contains(t, readData(), events.TypePing)

	hub.PublishEvent("", events.TypeEnrichCompleted, map[string]string{"kind": "contact"})
	assert.Contains(t, readData(), events.TypeEnrichCompleted)
}

func TestStatusWriterFlushDelegates(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec}

	var w http.ResponseWriter = sw
	f, ok := w.(http.Flusher)
	require.True(t, ok)

	f.Flush()
	assert.True(t, rec.Flushed)
}
