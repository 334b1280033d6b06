// Package nameparse splits a raw text selection into first name, last name,
// and an optional company. Pure string heuristics, no lookups.
//
// Known precision limit: the "is the last word a company" rule leans on a
// fixed list of ~100 common English surnames plus an uppercase-first-letter
// check, so non-English names and lowercase brand names will be
// misclassified. Extraction is best-effort by contract.
package nameparse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parsed always carries non-nil strings; empty FirstName/LastName means the
// selection was not a usable name and the caller should reject it.
type Parsed struct {
	FirstName string
	LastName  string
	Company   string // "" when no company was detected
}

var (
	atPattern   = regexp.MustCompile(`(?i)^(.+?)\s+(?:at|from|@)\s+(.+)$`)
	dashPattern = regexp.MustCompile(`^(.+?)\s*-\s*(.+)$`)
)

// Parse never fails; empty input yields an all-empty Parsed.
func Parse(fullText, hintedCompany string) Parsed {
	name := strings.TrimSpace(fullText)

	// An extracted company means the selection itself is just the name.
	if hintedCompany != "" {
		rest := removeFirstFold(name, hintedCompany)
		parts := strings.Fields(rest)
		p := Parsed{Company: hintedCompany}
		if len(parts) > 0 {
			p.FirstName = parts[0]
			p.LastName = strings.Join(parts[1:], " ")
			if p.LastName == "" {
				p.LastName = p.FirstName
			}
		}
		return p
	}

	// "Jane Doe at Acme" / "Jane Doe from Acme" / "Jane Doe @ Acme"
	if m := atPattern.FindStringSubmatch(name); m != nil {
		parts := strings.Fields(m[1])
		last := strings.Join(parts[1:], " ")
		if last == "" {
			last = parts[0]
		}
		return Parsed{FirstName: parts[0], LastName: last, Company: strings.TrimSpace(m[2])}
	}

	// "Jane Doe - Acme"
	if m := dashPattern.FindStringSubmatch(name); m != nil {
		parts := strings.Fields(m[1])
		last := strings.Join(parts[1:], " ")
		if last == "" {
			last = parts[0]
		}
		return Parsed{FirstName: parts[0], LastName: last, Company: strings.TrimSpace(m[2])}
	}

	parts := strings.Fields(name)

	// Three or more words: the trailing one might be a company
	// ("John Smith Google"). Treat it as one unless it looks like a surname.
	if len(parts) >= 3 {
		last := parts[len(parts)-1]
		if looksLikeCompany(last) {
			return Parsed{
				FirstName: parts[0],
				LastName:  strings.Join(parts[1:len(parts)-1], " "),
				Company:   last,
			}
		}
	}

	p := Parsed{}
	if len(parts) > 0 {
		p.FirstName = parts[0]
		p.LastName = strings.Join(parts[1:], " ")
	}
	return p
}

func looksLikeCompany(word string) bool {
	if utf8.RuneCountInString(word) < 2 {
		return false
	}
	if _, ok := commonLastNames[strings.ToLower(word)]; ok {
		return false
	}
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

// removeFirstFold strips the first case-insensitive occurrence of sub from s.
func removeFirstFold(s, sub string) string {
	if sub == "" {
		return s
	}
	idx := strings.Index(strings.ToLower(s), strings.ToLower(sub))
	if idx < 0 {
		return s
	}
	return strings.TrimSpace(s[:idx] + s[idx+len(sub):])
}

var commonLastNames = toSet([]string{
	"smith", "johnson", "jones", "brown", "williams", "davis", "miller",
	"wilson", "moore", "taylor", "anderson", "thomas", "jackson", "white",
	"harris", "martin", "thompson", "garcia", "martinez", "robinson",
	"clark", "rodriguez", "lewis", "lee", "walker", "hall", "allen",
	"young", "hernandez", "king", "wright", "lopez", "hill", "scott",
	"green", "adams", "baker", "gonzalez", "nelson", "carter", "mitchell",
	"perez", "roberts", "turner", "phillips", "campbell", "parker",
	"evans", "edwards", "collins", "stewart", "sanchez", "morris",
	"rogers", "reed", "cook", "morgan", "bell", "murphy", "bailey",
	"rivera", "cooper", "richardson", "cox", "howard", "ward", "torres",
	"peterson", "gray", "ramirez", "james", "watson", "brooks", "kelly",
	"sanders", "price", "bennett", "wood", "barnes", "ross", "henderson",
	"coleman", "jenkins", "perry", "powell", "long", "patterson",
	"hughes", "flores", "washington", "butler", "simmons", "foster",
	"gonzales", "bryant", "alexander", "russell", "griffin", "diaz",
	"hayes",
})

func toSet(xs []string) map[string]struct{} {
	m := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}
	return m
}
