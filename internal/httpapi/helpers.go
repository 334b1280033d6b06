package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"enrich-engine/internal/enrich"
)

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}

// The UI expects every enrichment response in the same envelope:
// {"success":true,"data":...} or {"success":false,"error":"..."}.

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type failureEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(successEnvelope{Success: true, Data: data})
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(failureEnvelope{Success: false, Error: msg})
}

// writeEnrichError maps a service error onto the envelope. Anything that is
// not an *enrich.Error is reported as a plain 500.
func writeEnrichError(w http.ResponseWriter, err error) {
	var ee *enrich.Error
	if !errors.As(err, &ee) {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeFailure(w, statusForKind(ee.Kind), ee.Message)
}

func statusForKind(k enrich.Kind) int {
	switch k {
	case enrich.KindValidation:
		return http.StatusBadRequest
	case enrich.KindAuth:
		return http.StatusUnauthorized
	case enrich.KindNotFound:
		return http.StatusNotFound
	case enrich.KindRateLimited:
		return http.StatusTooManyRequests
	}
	return http.StatusBadGateway
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return false
	}
	return true
}

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// APIError is the structured error for infrastructure failures (panics,
// unsupported streaming); enrichment failures use the envelope above.
type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(e)
}
