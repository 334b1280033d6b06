// Package extract guesses the company a selected name belongs to from the
// page around it. Strategies run in a fixed order, most reliable first:
// text near the selection, then site-specific selectors, structured data,
// meta tags, the page title, and finally the hostname. The first candidate
// that survives cleaning wins. Everything here is best-effort; a strategy
// that blows up on a weird document just yields nothing.
package extract

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is the parsed document a selection came from. URL may be nil when the
// caller could not supply one (the domain strategy is skipped then).
type Page struct {
	Doc *goquery.Document
	URL *url.URL
}

// Strategy produces a raw company candidate or "" from the selection and its
// page. Candidates still go through CleanCompanyName before acceptance.
type Strategy struct {
	Name string
	Run  func(selectedName string, ctx *goquery.Selection, p Page) string
}

// Strategies returns the extraction chain in priority order.
func Strategies() []Strategy {
	return []Strategy{
		{Name: "context", Run: fromContext},
		{Name: "profile_site", Run: fromProfileSite},
		{Name: "structured_data", Run: fromStructuredData},
		{Name: "meta_tags", Run: fromMetaTags},
		{Name: "page_title", Run: fromPageTitle},
		{Name: "domain", Run: fromDomain},
	}
}

// CompanyFromPage runs the chain and returns the cleaned company name, or ""
// when no strategy produced a usable candidate.
func CompanyFromPage(selectedName string, ctx *goquery.Selection, p Page) string {
	if p.Doc == nil {
		return ""
	}
	for _, s := range Strategies() {
		raw := runSafe(s, selectedName, ctx, p)
		if raw == "" {
			continue
		}
		if cleaned := CleanCompanyName(raw); cleaned != "" {
			return cleaned
		}
	}
	return ""
}

// runSafe isolates strategy failures: a panic on one malformed document must
// not kill the rest of the chain.
func runSafe(s Strategy, selectedName string, ctx *goquery.Selection, p Page) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	return s.Run(selectedName, ctx, p)
}

// Professional-network profile pages keep the current employer in a handful
// of known slots; probe them in order.
var profileSiteSelectors = []string{
	".pv-text-details__right-panel-item-text",
	".pv-entity__secondary-title",
	".experience-group-header__company",
	`[data-field="experience_company_logo"] a`,
	".org-top-card-summary__title",
	"h1.org-top-card-summary__info-item",
}

func fromProfileSite(_ string, _ *goquery.Selection, p Page) string {
	if p.URL == nil || !strings.Contains(p.URL.Hostname(), "linkedin.com") {
		return ""
	}
	for _, sel := range profileSiteSelectors {
		if t := cleanText(p.Doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

func fromStructuredData(_ string, _ *goquery.Selection, p Page) string {
	var found string
	p.Doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data map[string]any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true // invalid JSON, next block
		}
		typ, _ := data["@type"].(string)
		switch typ {
		case "Organization", "Corporation", "LocalBusiness":
			if name, _ := data["name"].(string); name != "" {
				found = name
				return false
			}
		case "Person":
			switch wf := data["worksFor"].(type) {
			case string:
				if wf != "" {
					found = wf
					return false
				}
			case map[string]any:
				if name, _ := wf["name"].(string); name != "" {
					found = name
					return false
				}
			}
		}
		return true
	})
	return found
}

func fromMetaTags(_ string, _ *goquery.Selection, p Page) string {
	if c, ok := p.Doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok && c != "" {
		return c
	}
	if c, ok := p.Doc.Find(`meta[name="application-name"]`).Attr("content"); ok && c != "" {
		return c
	}
	if c, ok := p.Doc.Find(`meta[name="twitter:site"]`).Attr("content"); ok && c != "" {
		return strings.TrimPrefix(c, "@")
	}
	return ""
}

// "Company - Page", "Page | Company", "About Company".
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([A-Z][A-Za-z0-9&.\s]{2,30})\s*[-|]`),
	regexp.MustCompile(`[-|]\s*([A-Z][A-Za-z0-9&.\s]{2,30})$`),
	regexp.MustCompile(`(?i)^About\s+([A-Z][A-Za-z0-9&.\s]{2,30})`),
}

func fromPageTitle(_ string, _ *goquery.Selection, p Page) string {
	title := strings.TrimSpace(p.Doc.Find("title").First().Text())
	if title == "" {
		return ""
	}
	for _, re := range titlePatterns {
		m := re.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		company := strings.TrimSpace(m[1])
		if !isGenericWord(company) {
			return company
		}
	}
	return ""
}

// Hosts that are platforms, not companies worth reporting.
var skipDomains = map[string]struct{}{
	"google":        {},
	"linkedin":      {},
	"facebook":      {},
	"twitter":       {},
	"github":        {},
	"stackoverflow": {},
	"wikipedia":     {},
	"youtube":       {},
	"medium":        {},
}

func fromDomain(_ string, _ *goquery.Selection, p Page) string {
	if p.URL == nil {
		return ""
	}
	host := strings.ToLower(p.URL.Hostname())
	for _, prefix := range []string{"www.", "blog.", "about."} {
		host = strings.TrimPrefix(host, prefix)
	}
	parts := strings.Split(host, ".")
	if len(parts) < 2 {
		return ""
	}
	label := parts[0]
	if _, blocked := skipDomains[label]; blocked || label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
