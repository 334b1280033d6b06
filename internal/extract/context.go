package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Structural markers for the row/card the selection sits in. Walking up to
// one of these keeps the scanned text block tight around the person.
const containerSelector = `tr, li, article, section, div[class*="card"], div[class*="profile"], div[class*="person"], div[class*="member"]`

const maxAncestorLevels = 5

// Job-title keywords anchoring the "name, title, company" pattern.
const titleKeywords = `CEO|CTO|CFO|COO|CDO|CMO|CRO|EVP|SVP|VP|Vice President|President|Director|Manager|Engineer|Head|Chief|Lead|Architect|Specialist|Analyst|Coordinator|Field|Senior|Principal|Staff|Consultant|Founder|Co-Founder`

const shortTitleKeywords = `CEO|CTO|CFO|COO|CDO|CMO|CRO|EVP|SVP|VP|Vice President|President|Director|Manager|Head|Chief|Lead|Co-Founder|Founder`

// fromContext scans the text block around the selection for
// name/title/company shapes. Patterns run in order; each hit is rejected if
// the selected name already contains it (picking a piece of the name back up
// as the "company" is the most common false positive).
func fromContext(selectedName string, ctx *goquery.Selection, p Page) string {
	if ctx == nil || ctx.Length() == 0 {
		return ""
	}

	container := findContainer(ctx)
	text := container.Text()
	name := regexp.QuoteMeta(selectedName)

	// "Hodaya Hanya, R&D Director, eToro"
	titleCompany := regexp.MustCompile(`(?i)` + name +
		`[,\s\n]+(?:[\p{L}\s-]+)?(?:` + titleKeywords + `)[^\n]*?[,\s-]+(?:at|with|of|for|@)?[\s|•-]*([A-Za-z\p{L}][\p{L}0-9&.,'\s()-]{1,60})`)
	if m := titleCompany.FindStringSubmatch(text); m != nil {
		company := strings.TrimSpace(m[1])
		if !nameContains(selectedName, company) {
			if cleaned := CleanCompanyName(company); cleaned != "" {
				return cleaned
			}
		}
	}

	// "Jane Doe at Acme"
	atCompany := regexp.MustCompile(`(?i)` + name +
		`[,\s\n]+(?:at|from|with|@)\s+([A-Za-z][A-Za-z0-9&.,'\s-]{2,50})`)
	if c := firstLineMatch(atCompany, text, selectedName); c != "" {
		return c
	}

	// "Jane Doe - Acme" / "Jane Doe | Acme"
	sepCompany := regexp.MustCompile(`(?i)` + name +
		`\s*[-|•]\s*([A-Za-z][A-Za-z0-9&.,'\s-]{2,50})`)
	if c := firstLineMatch(sepCompany, text, selectedName); c != "" {
		return c
	}

	// Title keyword followed by a separator, no explicit "at".
	afterTitle := regexp.MustCompile(`(?i)` + name +
		`[,\s\n]+(?:` + shortTitleKeywords + `)[\s\w]*[,\s-]+([A-Za-z][A-Za-z0-9&.,'\s-]{2,50})`)
	if m := afterTitle.FindStringSubmatch(text); m != nil {
		company := firstLine(strings.TrimSpace(m[1]))
		if !nameContains(selectedName, company) {
			if cleaned := CleanCompanyName(company); cleaned != "" {
				return cleaned
			}
		}
	}

	// Generic "at/with" later on the same line.
	sameLine := regexp.MustCompile(`(?i)` + name +
		`[,\s|•-]+[^\n]+?(?:at|with|@)\s+([A-Z][A-Za-z0-9&.,'\s-]{2,50})`)
	if c := firstLineMatch(sameLine, text, selectedName); c != "" {
		return c
	}

	// Anchors near the selection whose target mentions a company page.
	var linked string
	container.Find(`a[href*="company"], a[href*="linkedin.com/company"]`).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		t := strings.TrimSpace(a.Text())
		if len(t) > 1 && len(t) < 50 && !nameContains(selectedName, t) {
			linked = t
			return false
		}
		return true
	})
	return linked
}

// findContainer walks up from the selection looking for a structural
// container, giving up after a few levels. Falls back to the selection's own
// element rather than scanning the whole body.
func findContainer(ctx *goquery.Selection) *goquery.Selection {
	cur := ctx
	for i := 0; i < maxAncestorLevels && cur.Length() > 0 && !cur.Is("body"); i++ {
		if cur.Is(containerSelector) {
			break
		}
		cur = cur.Parent()
	}
	if cur.Length() == 0 || cur.Is("body") {
		return ctx
	}
	return cur
}

func firstLineMatch(re *regexp.Regexp, text, selectedName string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	company := firstLine(strings.TrimSpace(m[1]))
	if company == "" || nameContains(selectedName, company) {
		return ""
	}
	return company
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// nameContains is the self-match guard: a candidate that is a substring of
// the selected name is part of the name, not a company.
func nameContains(selectedName, candidate string) bool {
	return strings.Contains(strings.ToLower(selectedName), strings.ToLower(candidate))
}
