package model

import (
	"fmt"
	"strings"
)

// Place is one locality returned for a ZIP code
type Place struct {
	State             string `json:"state"`
	StateAbbreviation string `json:"state abbreviation"`
	PlaceName         string `json:"place name"`
	Latitude          string `json:"latitude"`
	Longitude         string `json:"longitude"`
}

// Coordinates returns latitude and longitude formatted as "<lat> / <lon>"
func (p Place) Coordinates() string {
	return fmt.Sprintf("%s / %s", p.Latitude, p.Longitude)
}

// StateImagePath returns the relative path of the state graphic, states/<ABBR>.svg
func (p Place) StateImagePath() string {
	return "states/" + strings.TrimSpace(p.StateAbbreviation) + ".svg"
}

// PostalResponse mirrors the JSON document served by the postal API.
// PostCode is a pointer so an absent field can be told apart from an empty one.
type PostalResponse struct {
	PostCode            *string `json:"post code"`
	Country             string  `json:"country,omitempty"`
	CountryAbbreviation string  `json:"country abbreviation,omitempty"`
	Places              []Place `json:"places"`
}

// LookupResult is the classified result of one lookup
type LookupResult struct {
	Zip        string  // code that was submitted
	PostCode   string  // code confirmed by the service, empty unless found
	Places     []Place // places in service order
	Outcome    Outcome
	StatusCode int   // HTTP status, 0 when no response was received
	Err        error // set for failure outcomes
}

// NewLookupResult classifies a decoded response for the submitted zip.
func NewLookupResult(zip string, statusCode int, resp *PostalResponse) LookupResult {
	result := LookupResult{Zip: zip, StatusCode: statusCode}
	if resp == nil || resp.PostCode == nil {
		result.Outcome = OutcomeNotFound
		return result
	}

	result.PostCode = *resp.PostCode
	result.Places = resp.Places
	if len(resp.Places) == 0 {
		result.Outcome = OutcomeNoPlaces
	} else {
		result.Outcome = OutcomeFound
	}
	return result
}

// NewFailedResult builds a failure result carrying err.
func NewFailedResult(zip string, outcome Outcome, statusCode int, err error) LookupResult {
	return LookupResult{
		Zip:        zip,
		Outcome:    outcome,
		StatusCode: statusCode,
		Err:        err,
	}
}

// ErrorText returns the failure reason or an empty string
func (r LookupResult) ErrorText() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
