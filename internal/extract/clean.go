package extract

import (
	"regexp"
	"strings"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	parentheses  = regexp.MustCompile(`\s*\([^)]*\)`)
	degreeInRe   = regexp.MustCompile(`(?i)\s*(M\.A\.|M\.Sc\.|M\.S\.|B\.A\.|B\.Sc\.|B\.S\.|Ph\.D\.|PhD|MBA|BSc|MSc|MA|MS|BA|BS)\s+(in|of|from)\s+[A-Za-z\s]+$`)
	degreeTailRe = regexp.MustCompile(`(?i)\s*(M\.A\.|M\.Sc\.|M\.S\.|B\.A\.|B\.Sc\.|B\.S\.|Ph\.D\.|PhD|MBA|BSc|MSc|MA|MS|BA|BS|Bachelor|Master|University|College|Degree|Diploma|School).*$`)
	fieldSepRe   = regexp.MustCompile(`\s+[-|•]\s+`)
	legalTailRe  = regexp.MustCompile(`(?i)[,\s]+(Inc\.?|LLC|Ltd\.?|Corp\.?|Corporation|Company|Co\.?|PLC|L\.P\.)$`)
	regionTailRe = regexp.MustCompile(`(?i)[,\s]+(EMEA|APAC|Americas|North America|Global|International|Region)$`)
	edgeCharsRe  = regexp.MustCompile(`^["'\[\]()]+|["'\[\]()]+$`)
	punctTailRe  = regexp.MustCompile(`[,;:.!?]+$`)
	hasLetterRe  = regexp.MustCompile(`[a-zA-Z]`)
)

// CleanCompanyName normalizes a raw candidate and validates it, returning ""
// when the result is not a plausible company name. Candidates often drag in
// adjacent text (degrees, regions, the next field on the line), so the tail
// stripping is aggressive.
func CleanCompanyName(name string) string {
	cleaned := htmlTagRe.ReplaceAllString(name, "")
	cleaned = strings.TrimSpace(strings.Join(strings.Fields(cleaned), " "))

	// "(Denmark)", "(USA)"
	cleaned = parentheses.ReplaceAllString(cleaned, "")

	// "M.Sc. in Chemistry", then bare degree/institution words
	cleaned = degreeInRe.ReplaceAllString(cleaned, "")
	cleaned = degreeTailRe.ReplaceAllString(cleaned, "")

	// separator to the next field on the line
	cleaned = fieldSepRe.Split(cleaned, 2)[0]

	cleaned = legalTailRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(regionTailRe.ReplaceAllString(cleaned, ""))

	cleaned = strings.TrimSpace(edgeCharsRe.ReplaceAllString(cleaned, ""))
	cleaned = strings.TrimSpace(punctTailRe.ReplaceAllString(cleaned, ""))

	if len(cleaned) < 2 || len(cleaned) > 60 {
		return ""
	}
	if !hasLetterRe.MatchString(cleaned) {
		return ""
	}
	if isGenericWord(cleaned) {
		return ""
	}
	return cleaned
}

// Navigation chrome and boilerplate that page-level strategies keep picking
// up. Checked as the whole string or as a trailing word.
var genericWords = []string{
	"home", "about", "contact", "team", "careers", "jobs", "blog", "news",
	"login", "signup", "search", "menu", "navigation", "footer", "header",
	"accessibility", "skip", "main", "content", "page", "site", "website",
	"profile", "settings", "help", "support", "faq", "privacy", "terms",
	"cookie", "copyright", "all rights reserved", "powered by",
	"follow us", "subscribe", "sign up", "log in", "learn more",
}

func isGenericWord(word string) bool {
	w := strings.ToLower(strings.TrimSpace(word))
	for _, g := range genericWords {
		if w == g || strings.HasSuffix(w, " "+g) {
			return true
		}
	}
	return false
}
