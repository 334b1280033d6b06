package domain

type Phone struct {
	Number string `json:"number"`
	Type   string `json:"type"` // mobile/work/unknown
}

// Contact is the canonical person record handed to the UI. Optional fields
// are empty strings / nil slices; a nil Emails means "no emails known",
// never an empty list.
type Contact struct {
	Name        string   `json:"name"`
	Emails      []string `json:"emails,omitempty"`
	Phones      []Phone  `json:"phones,omitempty"`
	Company     string   `json:"company,omitempty"`
	Position    string   `json:"position,omitempty"`
	LinkedInURL string   `json:"linkedInUrl,omitempty"`
	Seniority   string   `json:"seniority,omitempty"`
	Department  string   `json:"department,omitempty"`
	Location    string   `json:"location,omitempty"`
	Signals     []Signal `json:"signals,omitempty"`
}
