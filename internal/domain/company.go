package domain

type SocialLink struct {
	Type string `json:"type"` // linkedin/facebook/twitter/crunchbase/unknown
	URL  string `json:"url"`
}

// Company is the canonical company record handed to the UI.
// Employees and Founded are strings because the upstream API sends both
// numbers and range strings ("51-200") depending on version.
type Company struct {
	Name         string       `json:"name"`
	Logo         string       `json:"logo,omitempty"`
	Website      string       `json:"website,omitempty"`
	Description  string       `json:"description,omitempty"`
	Industry     string       `json:"industry,omitempty"`
	Employees    string       `json:"employees,omitempty"`
	Founded      string       `json:"founded,omitempty"`
	Revenue      string       `json:"revenue,omitempty"`
	Headquarters string       `json:"headquarters,omitempty"`
	Social       []SocialLink `json:"social,omitempty"`
	Signals      []Signal     `json:"signals,omitempty"`
}
