package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"enrich-engine/internal/domain"
	"enrich-engine/internal/enrich"
	"enrich-engine/internal/events"
)

type fakeEnricher struct {
	contact    *domain.Contact
	company    *domain.Company
	testStatus int
	err        error

	gotText   string
	gotHinted string
	gotKey    string
}

func (f *fakeEnricher) Contact(_ context.Context, fullText, apiKey, hintedCompany string) (*domain.Contact, error) {
	f.gotText, f.gotKey, f.gotHinted = fullText, apiKey, hintedCompany
	return f.contact, f.err
}

func (f *fakeEnricher) Company(_ context.Context, nameOrDomain, apiKey string) (*domain.Company, error) {
	f.gotText, f.gotKey = nameOrDomain, apiKey
	return f.company, f.err
}

func (f *fakeEnricher) TestKey(_ context.Context, apiKey string) (int, error) {
	f.gotKey = apiKey
	return f.testStatus, f.err
}

func newTestHandler(f *fakeEnricher, keychainKey string) EnrichHandler {
	return EnrichHandler{
		Enricher: f,
		Hub:      events.NewHub(),
		Log:      zap.NewNop(),
		GetAPIKey: func() (string, error) {
			if keychainKey == "" {
				return "", errors.New("not found")
			}
			return keychainKey, nil
		},
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (bool, json.RawMessage, string) {
	t.Helper()
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Success, env.Data, env.Error
}

func TestContactSuccessEnvelope(t *testing.T) {
	f := &fakeEnricher{contact: &domain.Contact{Name: "Jane Doe", Company: "Acme"}}
	h := newTestHandler(f, "")

	rec := postJSON(t, h.Contact, `{"text":"Jane Doe","company":"Acme","apiKey":"k-123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	ok, data, _ := decodeEnvelope(t, rec)
	assert.True(t, ok)

	var c domain.Contact
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, "Jane Doe", c.Name)

	assert.Equal(t, "Jane Doe", f.gotText)
	assert.Equal(t, "Acme", f.gotHinted)
	assert.Equal(t, "k-123", f.gotKey)
}

func TestContactMissingKey(t *testing.T) {
	h := newTestHandler(&fakeEnricher{}, "")

	rec := postJSON(t, h.Contact, `{"text":"Jane Doe"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	ok, _, msg := decodeEnvelope(t, rec)
	assert.False(t, ok)
	assert.Contains(t, msg, "No API Key configured")
}

func TestContactKeyFromKeychain(t *testing.T) {
	f := &fakeEnricher{contact: &domain.Contact{Name: "Jane Doe"}}
	h := newTestHandler(f, "stored-key")

	rec := postJSON(t, h.Contact, `{"text":"Jane Doe"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "stored-key", f.gotKey)
}

func TestContactExtractsHintFromHTML(t *testing.T) {
	f := &fakeEnricher{contact: &domain.Contact{Name: "Jane Doe"}}
	h := newTestHandler(f, "k")

	body := `{"text":"Jane Doe","html":"<html><body><ul><li id=\"row\">Jane Doe at Acme</li></ul></body></html>","selector":"#row"}`
	rec := postJSON(t, h.Contact, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Acme", f.gotHinted)
}

func TestContactErrorMapping(t *testing.T) {
	tests := []struct {
		kind   enrich.Kind
		status int
	}{
		{enrich.KindValidation, http.StatusBadRequest},
		{enrich.KindAuth, http.StatusUnauthorized},
		{enrich.KindNotFound, http.StatusNotFound},
		{enrich.KindRateLimited, http.StatusTooManyRequests},
		{enrich.KindNetwork, http.StatusBadGateway},
	}
	for _, tt := range tests {
		f := &fakeEnricher{err: &enrich.Error{Kind: tt.kind, Message: "nope"}}
		h := newTestHandler(f, "k")

		rec := postJSON(t, h.Contact, `{"text":"Jane Doe"}`)

		assert.Equal(t, tt.status, rec.Code)
		ok, _, msg := decodeEnvelope(t, rec)
		assert.False(t, ok)
		assert.Equal(t, "nope", msg)
	}
}

func TestContactPublishesLifecycleEvents(t *testing.T) {
	f := &fakeEnricher{contact: &domain.Contact{Name: "Jane Doe"}}
	h := newTestHandler(f, "k")
	ch := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(ch)

	postJSON(t, h.Contact, `{"text":"Jane Doe"}`)

	first := <-ch
	second := <-ch
	assert.Contains(t, first, events.TypeEnrichStarted)
	assert.Contains(t, second, events.TypeEnrichCompleted)
}

func TestCompanyEnvelope(t *testing.T) {
	f := &fakeEnricher{company: &domain.Company{Name: "Acme"}}
	h := newTestHandler(f, "k")

	rec := postJSON(t, h.Company, `{"company":"acme.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	ok, data, _ := decodeEnvelope(t, rec)
	assert.True(t, ok)

	var c domain.Company
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, "acme.com", f.gotText)
}

func TestTestKeyValidity(t *testing.T) {
	tests := []struct {
		status int
		valid  bool
	}{
		{200, true},
		{404, true}, // probe person missing, key still accepted
		{401, false},
	}
	for _, tt := range tests {
		f := &fakeEnricher{testStatus: tt.status}
		h := newTestHandler(f, "k")

		rec := postJSON(t, h.TestKey, `{}`)

		require.Equal(t, http.StatusOK, rec.Code)
		_, data, _ := decodeEnvelope(t, rec)
		var res struct {
			Valid  bool `json:"valid"`
			Status int  `json:"status"`
		}
		require.NoError(t, json.Unmarshal(data, &res))
		assert.Equal(t, tt.valid, res.Valid, "status %d", tt.status)
	}
}

func TestInvalidJSON(t *testing.T) {
	h := newTestHandler(&fakeEnricher{}, "k")
	rec := postJSON(t, h.Contact, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
