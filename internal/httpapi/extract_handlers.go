package httpapi

import (
	"net/http"

	"enrich-engine/internal/extract"
)

type ExtractHandler struct{}

// Company runs the extraction chain over a serialized page and reports the
// cleaned company name, if any. Purely local, no upstream calls.
func (h ExtractHandler) Company(w http.ResponseWriter, r *http.Request) {
	var req extractCompanyReq
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.HTML == "" {
		writeFailure(w, http.StatusBadRequest, "html is required")
		return
	}

	page, err := extract.PageFromHTML(req.HTML, req.PageURL)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "could not parse page: "+err.Error())
		return
	}
	company := extract.CompanyFromPage(req.Text, page.ContextNode(req.Selector), page)
	writeSuccess(w, map[string]string{"company": company})
}
