package httpapi

// Request bodies. Field names match what the UI collaborator already sends.

type enrichContactReq struct {
	Text     string `json:"text"`
	Company  string `json:"company,omitempty"`
	APIKey   string `json:"apiKey,omitempty"`
	HTML     string `json:"html,omitempty"`
	Selector string `json:"selector,omitempty"`
	PageURL  string `json:"pageUrl,omitempty"`
}

type enrichCompanyReq struct {
	Company string `json:"company"`
	APIKey  string `json:"apiKey,omitempty"`
}

type extractCompanyReq struct {
	Text     string `json:"text"`
	HTML     string `json:"html"`
	Selector string `json:"selector,omitempty"`
	PageURL  string `json:"pageUrl,omitempty"`
}

type testKeyReq struct {
	APIKey string `json:"apiKey,omitempty"`
}

type setAPIKeyReq struct {
	APIKey string `json:"apiKey"`
}
