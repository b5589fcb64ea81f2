package model

// Outcome classifies a completed lookup. Exactly one outcome applies to every
// LookupResult, so renderers can switch on it instead of probing fields.
type Outcome string

const (
	// OutcomeFound means the code exists and at least one place was returned
	OutcomeFound Outcome = "found"

	// OutcomeNoPlaces means the code exists but the places list is empty
	OutcomeNoPlaces Outcome = "no_places"

	// OutcomeNotFound means the service has no record for the code
	OutcomeNotFound Outcome = "not_found"

	// OutcomeNetworkError means the request never produced a response
	OutcomeNetworkError Outcome = "network_error"

	// OutcomeHTTPError means the service answered with an unexpected status
	OutcomeHTTPError Outcome = "http_error"

	// OutcomeParseError means the response body was not the expected JSON
	OutcomeParseError Outcome = "parse_error"
)

// String returns the string representation of Outcome
func (o Outcome) String() string {
	return string(o)
}

// IsFailure returns true for outcomes caused by transport or decoding problems
func (o Outcome) IsFailure() bool {
	return o == OutcomeNetworkError || o == OutcomeHTTPError || o == OutcomeParseError
}

// AllOutcomes lists every outcome in a stable order.
func AllOutcomes() []Outcome {
	return []Outcome{
		OutcomeFound,
		OutcomeNoPlaces,
		OutcomeNotFound,
		OutcomeNetworkError,
		OutcomeHTTPError,
		OutcomeParseError,
	}
}
