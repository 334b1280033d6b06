package events

import (
	"encoding/json"
	"time"
)

// Enrichment lifecycle event types pushed to the UI over SSE.
const (
	TypePing            = "ping"
	TypeEnrichStarted   = "enrich_started"
	TypeEnrichCompleted = "enrich_completed"
	TypeEnrichFailed    = "enrich_failed"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
