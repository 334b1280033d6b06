package normalize

import (
	"strings"

	"enrich-engine/internal/domain"
)

// Known field layouts per API version, newest first.
var (
	contactCompanySources = []fieldSource{
		nested("company", "name"),
		flat("companyName"),
		flat("company"),
	}
	contactPositionSources = []fieldSource{
		nested("jobTitle", "title"),
		flat("position"),
		flat("title"),
		flat("jobTitle"),
	}
	contactLinkedInSources = []fieldSource{
		nested("socialLinks", "linkedin"),
		flat("linkedInUrl"),
	}
	contactSenioritySources = []fieldSource{
		nested("jobTitle", "seniority"),
		flat("seniority"),
	}
	contactDepartmentSources = []fieldSource{
		nested("jobTitle", "department"),
		flat("department"),
	}
)

// Contact maps a raw person payload to the canonical record. The fallback
// name parts come from the query and fill in when the payload has none.
func Contact(raw Raw, fallbackFirst, fallbackLast string) domain.Contact {
	c := domain.Contact{
		Name:        contactName(raw, fallbackFirst, fallbackLast),
		Emails:      emails(raw),
		Phones:      phones(raw),
		Company:     firstString(raw, contactCompanySources...),
		Position:    firstString(raw, contactPositionSources...),
		LinkedInURL: linkedInURL(raw),
		Seniority:   firstString(raw, contactSenioritySources...),
		Department:  firstString(raw, contactDepartmentSources...),
		Location:    location(raw),
	}
	return c
}

func contactName(raw Raw, fallbackFirst, fallbackLast string) string {
	if full := scalar(raw["fullName"]); full != "" {
		return full
	}
	first := scalar(raw["firstName"])
	if first == "" {
		first = fallbackFirst
	}
	last := scalar(raw["lastName"])
	if last == "" {
		last = fallbackLast
	}
	return strings.TrimSpace(first + " " + last)
}

func emails(raw Raw) []string {
	var out []string
	if arr := raw.Array("emailAddresses"); arr != nil {
		for _, v := range arr {
			switch e := v.(type) {
			case map[string]any:
				if addr := scalar(e["email"]); addr != "" {
					out = append(out, addr)
				}
			case string:
				if e != "" {
					out = append(out, e)
				}
			}
		}
	} else if e := scalar(raw["email"]); e != "" {
		out = append(out, e)
	}
	return out
}

func phones(raw Raw) []domain.Phone {
	var out []domain.Phone
	if arr := raw.Array("phoneNumbers"); arr != nil {
		for _, v := range arr {
			p, ok := v.(map[string]any)
			if !ok {
				continue
			}
			number := firstString(p, flat("internationalPhoneNumber"), flat("number"), flat("localNumber"))
			if number == "" {
				continue
			}
			typ := scalar(p["type"])
			if typ == "" {
				typ = "unknown"
			}
			out = append(out, domain.Phone{Number: number, Type: typ})
		}
	} else if n := scalar(raw["phone"]); n != "" {
		out = append(out, domain.Phone{Number: n, Type: "unknown"})
	}
	return out
}

func linkedInURL(raw Raw) string {
	if u := firstString(raw, contactLinkedInSources...); u != "" {
		return u
	}
	// Legacy socialProfiles array: a linkedin-typed entry or any URL
	// pointing at linkedin.com.
	for _, v := range raw.Array("socialProfiles") {
		p, ok := v.(map[string]any)
		if !ok {
			continue
		}
		u := scalar(p["url"])
		if strings.EqualFold(scalar(p["type"]), "linkedin") || strings.Contains(u, "linkedin.com") {
			if u != "" {
				return u
			}
		}
	}
	return ""
}

func location(raw Raw) string {
	switch loc := raw["location"].(type) {
	case string:
		return strings.TrimSpace(loc)
	case map[string]any:
		var parts []string
		for _, key := range []string{"city", "region", "country"} {
			if p := scalar(loc[key]); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}

	var parts []string
	for _, key := range []string{"city", "country"} {
		if p := scalar(raw[key]); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
