package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"enrich-engine/internal/enrich"
	"enrich-engine/internal/events"
	"enrich-engine/internal/extract"
)

type EnrichHandler struct {
	Enricher  Enricher
	Hub       *events.Hub
	Log       *zap.Logger
	GetAPIKey func() (string, error)
}

// resolveKey prefers the key in the request, then the keychain. The key is
// never echoed back or written anywhere.
func (h EnrichHandler) resolveKey(reqKey string) (string, *enrich.Error) {
	if k := strings.TrimSpace(reqKey); k != "" {
		return k, nil
	}
	k, err := h.GetAPIKey()
	if err != nil {
		return "", enrich.ErrMissingKey
	}
	return k, nil
}

func (h EnrichHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req enrichContactReq
	if !decodeJSON(w, r, &req) {
		return
	}
	key, kerr := h.resolveKey(req.APIKey)
	if kerr != nil {
		writeEnrichError(w, kerr)
		return
	}

	// When the UI ships the page along, run extraction here so the parser
	// gets a company hint.
	hint := strings.TrimSpace(req.Company)
	if hint == "" && req.HTML != "" {
		hint = h.extractHint(req)
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.PublishEvent(reqID, events.TypeEnrichStarted, map[string]string{"kind": "contact", "text": req.Text})

	contact, err := h.Enricher.Contact(r.Context(), req.Text, key, hint)
	if err != nil {
		h.Hub.PublishEvent(reqID, events.TypeEnrichFailed, map[string]string{"kind": "contact", "error": err.Error()})
		writeEnrichError(w, err)
		return
	}
	h.Hub.PublishEvent(reqID, events.TypeEnrichCompleted, map[string]string{"kind": "contact", "name": contact.Name})
	writeSuccess(w, contact)
}

func (h EnrichHandler) extractHint(req enrichContactReq) string {
	page, err := extract.PageFromHTML(req.HTML, req.PageURL)
	if err != nil {
		h.Log.Debug("page parse failed", zap.Error(err))
		return ""
	}
	return extract.CompanyFromPage(req.Text, page.ContextNode(req.Selector), page)
}

func (h EnrichHandler) Company(w http.ResponseWriter, r *http.Request) {
	var req enrichCompanyReq
	if !decodeJSON(w, r, &req) {
		return
	}
	key, kerr := h.resolveKey(req.APIKey)
	if kerr != nil {
		writeEnrichError(w, kerr)
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.PublishEvent(reqID, events.TypeEnrichStarted, map[string]string{"kind": "company", "text": req.Company})

	company, err := h.Enricher.Company(r.Context(), req.Company, key)
	if err != nil {
		h.Hub.PublishEvent(reqID, events.TypeEnrichFailed, map[string]string{"kind": "company", "error": err.Error()})
		writeEnrichError(w, err)
		return
	}
	h.Hub.PublishEvent(reqID, events.TypeEnrichCompleted, map[string]string{"kind": "company", "name": company.Name})
	writeSuccess(w, company)
}

// TestKey reports whether a key works without exposing anything about it.
func (h EnrichHandler) TestKey(w http.ResponseWriter, r *http.Request) {
	var req testKeyReq
	if !decodeJSON(w, r, &req) {
		return
	}
	key, kerr := h.resolveKey(req.APIKey)
	if kerr != nil {
		writeEnrichError(w, kerr)
		return
	}

	status, err := h.Enricher.TestKey(r.Context(), key)
	if err != nil {
		writeEnrichError(w, err)
		return
	}
	// 404 means the probe person does not exist, which still proves the key
	// was accepted.
	valid := (status >= 200 && status <= 299) || status == 404
	writeSuccess(w, map[string]any{"valid": valid, "status": status})
}
