package enrich

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"enrich-engine/internal/domain"
	"enrich-engine/internal/lusha"
	"enrich-engine/internal/normalize"
	"enrich-engine/internal/signalfmt"
)

// Signal search payloads. Identifier precedence is deliberately asymmetric
// and matches the upstream API: contacts by LinkedIn URL first, then
// name+company; companies by domain first, then name.

type signalContact struct {
	ID         string          `json:"id"`
	SocialLink string          `json:"social_link,omitempty"`
	FullName   string          `json:"full_name,omitempty"`
	Companies  []signalCompany `json:"companies,omitempty"`
}

type signalCompany struct {
	ID     string `json:"id,omitempty"`
	Domain string `json:"domain,omitempty"`
	Name   string `json:"name,omitempty"`
}

type contactSignalsReq struct {
	Contacts []signalContact `json:"contacts"`
	Signals  []string        `json:"signals"`
}

type companySignalsReq struct {
	Companies []signalCompany `json:"companies"`
	Signals   []string        `json:"signals"`
}

// contactSignals fetches signals for an enriched contact. Best-effort: any
// failure is logged and nil returned, never an error.
func (s *Service) contactSignals(ctx context.Context, apiKey string, c domain.Contact) []domain.Signal {
	req := signalContact{ID: signalRequestID}
	switch {
	case c.LinkedInURL != "":
		req.SocialLink = c.LinkedInURL
	case c.Name != "" && c.Company != "":
		req.FullName = c.Name
		req.Companies = []signalCompany{{Name: c.Company}}
	default:
		// No usable identifier; skip the call entirely.
		return nil
	}

	res, err := s.client.ContactSignals(ctx, apiKey, contactSignalsReq{
		Contacts: []signalContact{req},
		Signals:  []string{"allSignals"},
	})
	return s.parseSignals(res, err, "contacts")
}

func (s *Service) companySignals(ctx context.Context, apiKey, domainName, name string) []domain.Signal {
	req := signalCompany{ID: signalRequestID}
	switch {
	case domainName != "":
		req.Domain = domainName
	case name != "":
		req.Name = name
	default:
		return nil
	}

	res, err := s.client.CompanySignals(ctx, apiKey, companySignalsReq{
		Companies: []signalCompany{req},
		Signals:   []string{"allSignals"},
	})
	return s.parseSignals(res, err, "companies")
}

func (s *Service) parseSignals(res *lusha.Response, err error, entityKey string) []domain.Signal {
	if err != nil {
		s.log.Debug("signals fetch failed", zap.Error(err))
		return nil
	}
	if res.Status < 200 || res.Status > 299 {
		s.log.Debug("signals fetch failed", zap.Int("status", res.Status))
		return nil
	}

	var body normalize.Raw
	if err := json.Unmarshal(res.Body, &body); err != nil {
		s.log.Debug("signals decode failed", zap.Error(err))
		return nil
	}
	bucket := body.Object(entityKey).Object(signalRequestID)
	if bucket == nil {
		return nil
	}
	return signalfmt.Format(bucket)
}
