// Package enrich orchestrates a lookup: parse the selection, build the
// query, call the API, classify the status, normalize the payload, and
// best-effort attach signals. One primary request per call, then at most one
// signals request, sequentially; a signals failure never reaches the caller.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"enrich-engine/internal/domain"
	"enrich-engine/internal/lusha"
	"enrich-engine/internal/nameparse"
	"enrich-engine/internal/normalize"
)

// The signals search endpoints echo results back under a caller-chosen ID.
const signalRequestID = "signal-request-1"

type Service struct {
	client *lusha.Client
	log    *zap.Logger
}

func NewService(client *lusha.Client, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{client: client, log: log}
}

// Contact enriches a selected person name. hintedCompany is what the page
// extractor found (may be empty); the parser then falls back to in-selection
// patterns. Returns *Error on every failure path.
func (s *Service) Contact(ctx context.Context, fullText, apiKey, hintedCompany string) (*domain.Contact, error) {
	parsed := nameparse.Parse(fullText, hintedCompany)
	if parsed.FirstName == "" || parsed.LastName == "" {
		return nil, errf(KindValidation, msgNeedFullName)
	}

	params := url.Values{}
	params.Set("firstName", parsed.FirstName)
	params.Set("lastName", parsed.LastName)
	if parsed.Company != "" {
		// A dot means the extractor handed us a domain.
		if strings.Contains(parsed.Company, ".") {
			params.Set("companyDomain", parsed.Company)
		} else {
			params.Set("companyName", parsed.Company)
		}
	}

	res, err := s.client.Person(ctx, apiKey, params)
	if err != nil {
		s.log.Warn("person lookup transport failure", zap.Error(err))
		return nil, errf(KindNetwork, msgNetwork)
	}
	if cerr := classify(res, msgPersonBadRequest, msgPersonNotFound); cerr != nil {
		return nil, cerr
	}

	var body normalize.Raw
	if err := json.Unmarshal(res.Body, &body); err != nil {
		return nil, errf(KindNetwork, fmt.Sprintf("API Error: %d", res.Status))
	}

	payload := body
	if wrapper := body.Object("contact"); wrapper != nil {
		if eerr := entityError(wrapper); eerr != nil {
			return nil, eerr
		}
		if data := wrapper.Object("data"); data != nil {
			payload = data
		}
	}

	contact := normalize.Contact(payload, parsed.FirstName, parsed.LastName)

	// Signals only make sense for an identified entity, and they must never
	// fail the lookup.
	if id := entityID(payload, "personId"); id != "" {
		contact.Signals = s.contactSignals(ctx, apiKey, contact)
	}
	return &contact, nil
}

// Company enriches a company by name or domain.
func (s *Service) Company(ctx context.Context, nameOrDomain, apiKey string) (*domain.Company, error) {
	query := strings.TrimSpace(nameOrDomain)
	if query == "" {
		return nil, errf(KindValidation, msgNeedCompany)
	}

	params := url.Values{}
	if strings.Contains(query, ".") && !strings.Contains(query, " ") {
		params.Set("domain", query)
	} else {
		params.Set("company", query)
	}

	res, err := s.client.Company(ctx, apiKey, params)
	if err != nil {
		s.log.Warn("company lookup transport failure", zap.Error(err))
		return nil, errf(KindNetwork, msgNetwork)
	}
	if cerr := classify(res, msgCompanyBadRequest, msgCompanyNotFound); cerr != nil {
		return nil, cerr
	}

	var body normalize.Raw
	if err := json.Unmarshal(res.Body, &body); err != nil {
		return nil, errf(KindNetwork, fmt.Sprintf("API Error: %d", res.Status))
	}

	payload := body
	if data := body.Object("data"); data != nil {
		payload = data
	}

	company := normalize.Company(payload, query)

	if id := entityID(payload, "companyId"); id != "" {
		domainName := firstNonEmpty(
			payloadString(payload, "domain"),
			nestedString(payload, "domains", "homepage"),
			company.Website,
		)
		company.Signals = s.companySignals(ctx, apiKey, domainName, company.Name)
	}
	return &company, nil
}

// TestKey fires a probe person lookup so the settings form can report
// whether a key works. The upstream status is returned as-is.
func (s *Service) TestKey(ctx context.Context, apiKey string) (int, error) {
	params := url.Values{}
	params.Set("firstName", "Test")
	params.Set("lastName", "User")
	params.Set("companyName", "TestCompany")

	res, err := s.client.Person(ctx, apiKey, params)
	if err != nil {
		return 0, errf(KindNetwork, msgNetwork)
	}
	return res.Status, nil
}

// classify applies the shared status-code policy. badRequestMsg and
// notFoundMsg differ between person and company lookups.
func classify(res *lusha.Response, badRequestMsg, notFoundMsg string) *Error {
	switch {
	case res.Status == 400:
		// A 400 can mean either a key problem or a bad query; the body text
		// is the only way to tell them apart.
		var errBody struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.Unmarshal(res.Body, &errBody)
		text := strings.ToLower(errBody.Message)
		if text == "" {
			text = strings.ToLower(errBody.Error)
		}
		for _, marker := range []string{"api", "key", "unauthorized", "authentication"} {
			if strings.Contains(text, marker) {
				return errf(KindAuth, msgInvalidKey)
			}
		}
		return errf(KindValidation, badRequestMsg)
	case res.Status == 401 || res.Status == 403:
		return errf(KindAuth, msgInvalidKey)
	case res.Status == 404:
		return errf(KindNotFound, notFoundMsg)
	case res.Status == 429:
		return errf(KindRateLimited, msgRateLimited)
	case res.Status < 200 || res.Status > 299:
		return errf(KindNetwork, fmt.Sprintf("API Error: %d", res.Status))
	}
	return nil
}

// entityError sniffs entity-level errors the API embeds in 200 responses.
func entityError(wrapper normalize.Raw) *Error {
	e := wrapper.Object("error")
	if e == nil {
		return nil
	}
	code, _ := e["code"].(float64)
	name, _ := e["name"].(string)
	switch {
	case code == 3 || name == "EMPTY_DATA":
		return errf(KindNotFound, msgEmptyData)
	case code == 5 || name == "COMPLIANCE_CONTACT_ERROR":
		return errf(KindValidation, msgCompliance)
	}
	if name == "" {
		name = "Unknown"
	}
	return errf(KindNotFound, "Lusha Error: "+name)
}

func entityID(payload normalize.Raw, altKey string) string {
	if id := payloadString(payload, "id"); id != "" {
		return id
	}
	return payloadString(payload, altKey)
}

func payloadString(r normalize.Raw, key string) string {
	switch v := r[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func nestedString(r normalize.Raw, keys ...string) string {
	cur := r
	for _, k := range keys[:len(keys)-1] {
		cur = cur.Object(k)
		if cur == nil {
			return ""
		}
	}
	return payloadString(cur, keys[len(keys)-1])
}

func firstNonEmpty(xs ...string) string {
	for _, x := range xs {
		if x != "" {
			return x
		}
	}
	return ""
}
