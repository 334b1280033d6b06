package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Enrichment
	enh := EnrichHandler{
		Enricher:  d.Enricher,
		Hub:       d.Hub,
		Log:       d.Log,
		GetAPIKey: d.GetAPIKey,
	}
	mux.HandleFunc("/enrich/contact", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: enh.Contact,
	}))
	mux.HandleFunc("/enrich/company", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: enh.Company,
	}))
	mux.HandleFunc("/api/test", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: enh.TestKey,
	}))

	// Page extraction (no API calls, pure local heuristics)
	exh := ExtractHandler{}
	mux.HandleFunc("/extract/company", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: exh.Company,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Secrets
	sh := SecretsHandler{SetAPIKey: d.SetAPIKey}
	mux.HandleFunc("/api/secrets/lusha", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetLushaKey,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
