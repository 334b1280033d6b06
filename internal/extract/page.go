package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageFromHTML parses the serialized page the UI collaborator ships over.
// pageURL is optional; a bad one just disables the URL-based strategies.
func PageFromHTML(html, pageURL string) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Page{}, err
	}
	p := Page{Doc: doc}
	if pageURL != "" {
		if u, uerr := url.Parse(pageURL); uerr == nil && u.Host != "" {
			p.URL = u
		}
	}
	return p, nil
}

// ContextNode resolves the CSS path of the element the selection was made in.
// Returns nil when the selector is empty or matches nothing; extraction then
// skips the context strategy.
func (p Page) ContextNode(selector string) *goquery.Selection {
	if p.Doc == nil || strings.TrimSpace(selector) == "" {
		return nil
	}
	sel := p.Doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil
	}
	return sel
}
