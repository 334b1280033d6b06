package normalize

import (
	"strings"

	"enrich-engine/internal/domain"
)

var (
	companyLogoSources = []fieldSource{
		flat("logo"),
		flat("logo_url"),
	}
	companyWebsiteSources = []fieldSource{
		flat("website"),
		flat("domain"),
	}
	companyIndustrySources = []fieldSource{
		arrFirst("industryTags", "name"),
		arrFirst("industryTags"),
		flat("industry"),
		flat("industryPrimaryGroup"),
	}
	companyEmployeeSources = []fieldSource{
		nested("companySize", "employees"),
		flat("numberOfEmployees"),
		flat("employees"),
	}
)

// Company maps a raw company payload to the canonical record. fallbackName is
// what the user searched for, used when the payload carries no name.
func Company(raw Raw, fallbackName string) domain.Company {
	name := scalar(raw["name"])
	if name == "" {
		name = fallbackName
	}
	return domain.Company{
		Name:         name,
		Logo:         firstString(raw, companyLogoSources...),
		Website:      firstString(raw, companyWebsiteSources...),
		Description:  scalar(raw["description"]),
		Industry:     firstString(raw, companyIndustrySources...),
		Employees:    firstString(raw, companyEmployeeSources...),
		Founded:      scalar(raw["founded"]),
		Revenue:      Revenue(raw),
		Headquarters: headquarters(raw),
		Social:       companySocial(raw),
	}
}

func headquarters(raw Raw) string {
	loc := raw.Object("location")
	if loc == nil {
		return ""
	}
	var parts []string
	for _, key := range []string{"city", "country"} {
		if p := scalar(loc[key]); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Social link layouts by API era: keyed object with .url entries, then a
// socialProfiles array, then flat per-network fields.
func companySocial(raw Raw) []domain.SocialLink {
	var out []domain.SocialLink

	if social := raw.Object("social"); social != nil {
		for _, network := range []string{"linkedin", "facebook", "twitter", "crunchbase"} {
			entry, ok := social[network].(map[string]any)
			if !ok {
				continue
			}
			if u := scalar(entry["url"]); u != "" {
				out = append(out, domain.SocialLink{Type: network, URL: u})
			}
		}
	}

	for _, v := range raw.Array("socialProfiles") {
		p, ok := v.(map[string]any)
		if !ok {
			continue
		}
		u := scalar(p["url"])
		if u == "" {
			continue
		}
		typ := scalar(p["type"])
		if typ == "" {
			typ = "unknown"
		}
		out = append(out, domain.SocialLink{Type: typ, URL: u})
	}

	for _, network := range []string{"linkedin", "facebook", "twitter"} {
		if u := firstString(raw, flat(network+"_url"), flat(network)); u != "" {
			out = append(out, domain.SocialLink{Type: network, URL: u})
		}
	}

	return out
}
