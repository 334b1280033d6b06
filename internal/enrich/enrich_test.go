package enrich

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrich-engine/internal/lusha"
)

// fake upstream: route responses per path, record requests.
type upstream struct {
	person         http.HandlerFunc
	company        http.HandlerFunc
	contactSignals http.HandlerFunc
	companySignals http.HandlerFunc

	personQueries  []map[string]string
	signalRequests [][]byte
}

func (u *upstream) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/person", func(w http.ResponseWriter, r *http.Request) {
		q := map[string]string{}
		for k := range r.URL.Query() {
			q[k] = r.URL.Query().Get(k)
		}
		u.personQueries = append(u.personQueries, q)
		u.person(w, r)
	})
	mux.HandleFunc("/v2/company", func(w http.ResponseWriter, r *http.Request) {
		u.company(w, r)
	})
	mux.HandleFunc("/api/signals/contacts/search", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		u.signalRequests = append(u.signalRequests, b)
		u.contactSignals(w, r)
	})
	mux.HandleFunc("/api/signals/companies/search", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		u.signalRequests = append(u.signalRequests, b)
		u.companySignals(w, r)
	})
	return mux
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func newTestService(t *testing.T, u *upstream) *Service {
	t.Helper()
	srv := httptest.NewServer(u.handler())
	t.Cleanup(srv.Close)

	client := lusha.New(lusha.Config{
		BaseURL:           srv.URL,
		RequestsPerSecond: 1000,
		Burst:             100,
	}, nil)
	return NewService(client, nil)
}

func TestContactNeedsFullName(t *testing.T) {
	svc := newTestService(t, &upstream{})
	_, err := svc.Contact(context.Background(), "Prince", "key", "")

	var ee *Error
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, KindValidation, ee.Kind)
	assert.Contains(t, ee.Message, "full name")
}

func TestContactInvalidKey(t *testing.T) {
	u := &upstream{person: respond(400, `{"message":"Invalid API key provided"}`)}
	svc := newTestService(t, u)

	_, err := svc.Contact(context.Background(), "Jane Doe", "bad-key", "")

	var ee *Error
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, KindAuth, ee.Kind)
	assert.Contains(t, ee.Message, "Invalid API Key")
}

func TestContactBadRequestWithoutKeyMarkers(t *testing.T) {
	u := &upstream{person: respond(400, `{"message":"missing parameters"}`)}
	svc := newTestService(t, u)

	_, err := svc.Contact(context.Background(), "Jane Doe", "key", "")

	var ee *Error
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, KindValidation, ee.Kind)
}

func TestContactStatusTaxonomy(t *testing.T) {
	tests := []struct {
		status int
		kind   Kind
	}{
		{401, KindAuth},
		{403, KindAuth},
		{404, KindNotFound},
		{429, KindRateLimited},
		{503, KindNetwork},
	}
	for _, tt := range tests {
		u := &upstream{person: respond(tt.status, `{}`)}
		svc := newTestService(t, u)

		_, err := svc.Contact(context.Background(), "Jane Doe", "key", "")

		var ee *Error
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, tt.kind, ee.Kind, "status %d", tt.status)
	}
}

func TestContactEmptyData(t *testing.T) {
	u := &upstream{person: respond(200, `{"contact":{"error":{"code":3,"name":"EMPTY_DATA"}}}`)}
	svc := newTestService(t, u)

	_, err := svc.Contact(context.Background(), "Jane Doe", "key", "")

	var ee *Error
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, KindNotFound, ee.Kind)
	assert.Contains(t, ee.Message, "No data found")
}

func TestContactCompliance(t *testing.T) {
	u := &upstream{person: respond(200, `{"contact":{"error":{"code":5,"name":"COMPLIANCE_CONTACT_ERROR"}}}`)}
	svc := newTestService(t, u)

	_, err := svc.Contact(context.Background(), "Jane Doe", "key", "")

	var ee *Error
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, KindValidation, ee.Kind)
	assert.Contains(t, ee.Message, "compliance")
}

func TestContactSuccessWithSignals(t *testing.T) {
	personBody := `{"contact":{"data":{
		"personId": 42,
		"fullName": "Jane Doe",
		"company": {"name": "Acme"},
		"socialLinks": {"linkedin": "https://linkedin.com/in/janedoe"}
	}}}`
	signalsBody := `{"contacts":{"signal-request-1":{
		"promotion":[{"previousTitle":"Engineer","currentTitle":"CTO","signalDate":"2024-01-01"}]
	}}}`

	u := &upstream{
		person:         respond(200, personBody),
		contactSignals: respond(200, signalsBody),
	}
	svc := newTestService(t, u)

	contact, err := svc.Contact(context.Background(), "Jane Doe", "key", "")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", contact.Name)
	assert.Equal(t, "Acme", contact.Company)
	require.Len(t, contact.Signals, 1)
	assert.Equal(t, "Got Promoted", contact.Signals[0].Title)

	// LinkedIn URL outranks name+company as the signals identifier.
	require.Len(t, u.signalRequests, 1)
	var req struct {
		Contacts []map[string]any `json:"contacts"`
	}
	require.NoError(t, json.Unmarshal(u.signalRequests[0], &req))
	require.Len(t, req.Contacts, 1)
	assert.Equal(t, "https://linkedin.com/in/janedoe", req.Contacts[0]["social_link"])
	assert.Equal(t, "signal-request-1", req.Contacts[0]["id"])
}

func TestContactSignalsFailureIsSwallowed(t *testing.T) {
	u := &upstream{
		person:         respond(200, `{"contact":{"data":{"personId": 42, "fullName": "Jane Doe"}}}`),
		contactSignals: respond(500, `boom`),
	}
	svc := newTestService(t, u)

	contact, err := svc.Contact(context.Background(), "Jane Doe", "key", "")
	require.NoError(t, err)
	assert.Nil(t, contact.Signals)
}

func TestContactWithoutIDSkipsSignals(t *testing.T) {
	u := &upstream{
		person: respond(200, `{"contact":{"data":{"fullName": "Jane Doe"}}}`),
	}
	svc := newTestService(t, u)

	contact, err := svc.Contact(context.Background(), "Jane Doe", "key", "")
	require.NoError(t, err)
	assert.Nil(t, contact.Signals)
	assert.Empty(t, u.signalRequests)
}

func TestContactCompanyParams(t *testing.T) {
	u := &upstream{person: respond(404, `{}`)}
	svc := newTestService(t, u)

	_, _ = svc.Contact(context.Background(), "Jane Doe", "key", "acme.com")
	_, _ = svc.Contact(context.Background(), "Jane Doe at Acme", "key", "")

	require.Len(t, u.personQueries, 2)
	assert.Equal(t, "acme.com", u.personQueries[0]["companyDomain"])
	assert.Equal(t, "Acme", u.personQueries[1]["companyName"])
}

func TestCompanyDomainSniffing(t *testing.T) {
	var gotQuery map[string]string
	u := &upstream{}
	u.company = func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		respond(404, `{}`)(w, r)
	}
	svc := newTestService(t, u)

	_, _ = svc.Company(context.Background(), "acme.com", "key")
	assert.Equal(t, "acme.com", gotQuery["domain"])

	_, _ = svc.Company(context.Background(), "Acme Inc.", "key")
	assert.Equal(t, "Acme Inc.", gotQuery["company"])
}

func TestCompanySuccess(t *testing.T) {
	u := &upstream{
		company: respond(200, `{"data":{
			"companyId": 7,
			"name": "Acme",
			"domain": "acme.com",
			"revenueRange": ["10000000","50000000"]
		}}`),
		companySignals: respond(200, `{"companies":{"signal-request-1":{
			"funding":[{"amount":"$5M","signalDate":"2024-01-01"}]
		}}}`),
	}
	svc := newTestService(t, u)

	company, err := svc.Company(context.Background(), "Acme", "key")
	require.NoError(t, err)

	assert.Equal(t, "Acme", company.Name)
	assert.Equal(t, "$10M to $50M", company.Revenue)
	require.Len(t, company.Signals, 1)
	assert.Equal(t, "Funding Event", company.Signals[0].Title)

	// Domain outranks name as the signals identifier.
	require.Len(t, u.signalRequests, 1)
	var req struct {
		Companies []map[string]any `json:"companies"`
	}
	require.NoError(t, json.Unmarshal(u.signalRequests[0], &req))
	require.Len(t, req.Companies, 1)
	assert.Equal(t, "acme.com", req.Companies[0]["domain"])
}

func TestCompanyNeedsInput(t *testing.T) {
	svc := newTestService(t, &upstream{})
	_, err := svc.Company(context.Background(), "   ", "key")

	var ee *Error
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, KindValidation, ee.Kind)
}

func TestTestKeyReportsUpstreamStatus(t *testing.T) {
	u := &upstream{person: respond(404, `{}`)}
	svc := newTestService(t, u)

	status, err := svc.TestKey(context.Background(), "key")
	require.NoError(t, err)
	assert.Equal(t, 404, status)
}
