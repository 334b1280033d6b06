package enrich

// Kind classifies a failed enrichment for the UI. Signals failures never get
// a Kind; they are swallowed inside the service.
type Kind int

const (
	KindValidation Kind = iota + 1 // insufficient input, refine the search
	KindAuth                       // bad or missing API key
	KindNotFound                   // lookup miss or compliance restriction
	KindRateLimited
	KindNetwork // transport failure or unclassified non-2xx
)

// Error carries the human message shown verbatim in the popup.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func errf(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

// ErrMissingKey is returned by callers that resolve the API key themselves
// and come up empty.
var ErrMissingKey = errf(KindAuth, msgNoKey)

const (
	msgInvalidKey   = "Invalid API Key - please check your Lusha API Key in settings"
	msgNoKey        = "No API Key configured. Please open settings and enter your Lusha API Key."
	msgRateLimited  = "API rate limit exceeded - try again later"
	msgNetwork      = "Network error - check your internet connection"
	msgNeedFullName = "Please select a full name (first and last name)"

	msgPersonBadRequest  = `Not enough information. Try selecting the name with the company (e.g., "John Doe Google")`
	msgPersonNotFound    = "No contact found for this person"
	msgCompanyBadRequest = "Invalid company search - please try a different name or domain"
	msgCompanyNotFound   = "No company found with this name"
	msgNeedCompany       = "Please enter a company name or domain"

	msgEmptyData  = "No data found for this contact in Lusha database"
	msgCompliance = "Cannot display data for this contact (compliance restriction)"
)
