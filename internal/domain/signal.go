package domain

type SignalType string

const (
	SignalCompanyChange   SignalType = "companyChange"
	SignalPromotion       SignalType = "promotion"
	SignalNewJobsOpen     SignalType = "newJobsOpen"
	SignalNewsEvent       SignalType = "newsEvent"
	SignalHeadcountGrowth SignalType = "headcountGrowth"
	SignalFunding         SignalType = "funding"
	SignalGrowth          SignalType = "growth"
)

// Signal is one buying-intent event attached to a contact or company.
// Date is the upstream ISO string ("" when the event carried none); lists of
// signals are always sorted newest-first, undated entries last.
type Signal struct {
	Type        SignalType     `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Date        string         `json:"date,omitempty"`
	URL         string         `json:"url,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
