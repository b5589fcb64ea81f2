package render

import (
	"fmt"

	"github.com/ytget/zip-lookup/internal/model"
)

// Messages holds the user-visible texts. Format strings take the zip code
// (and, for FailureFormat, the reason) as arguments.
type Messages struct {
	FoundFormat       string
	NotFoundFormat    string
	FailureFormat     string
	NoPlaces          string
	HeaderState       string
	HeaderPlace       string
	HeaderCoordinates string
}

// DefaultMessages returns the English texts
func DefaultMessages() Messages {
	return Messages{
		FoundFormat:       "Zip code %s",
		NotFoundFormat:    "The zip code %s does not exist in the United States.",
		FailureFormat:     "Lookup for %s failed: %s",
		NoPlaces:          "We couldn't find any places associated with this zip code",
		HeaderState:       "State",
		HeaderPlace:       "Place",
		HeaderCoordinates: "Latitude / Longitude",
	}
}

// Renderer writes lookup results into a status sink and a table sink
type Renderer struct {
	status   StatusSink
	table    TableSink
	messages Messages
}

// NewRenderer creates a renderer using the English messages
func NewRenderer(status StatusSink, table TableSink) *Renderer {
	return &Renderer{
		status:   status,
		table:    table,
		messages: DefaultMessages(),
	}
}

// SetMessages replaces the texts used by subsequent renders
func (r *Renderer) SetMessages(messages Messages) {
	r.messages = messages
}

// Messages returns the texts currently in use
func (r *Renderer) Messages() Messages {
	return r.messages
}

// Render clears the table and displays result. Rendering the same result
// twice leaves the sinks exactly as rendering it once.
func (r *Renderer) Render(result model.LookupResult) {
	ClearRows(r.table, 0)

	switch result.Outcome {
	case model.OutcomeNotFound:
		r.status.SetStatus(fmt.Sprintf(r.messages.NotFoundFormat, result.Zip))

	case model.OutcomeNoPlaces:
		r.status.SetStatus(fmt.Sprintf(r.messages.FoundFormat, result.PostCode))
		r.table.AppendRow([]Cell{TextCell(r.messages.NoPlaces)})

	case model.OutcomeFound:
		r.status.SetStatus(fmt.Sprintf(r.messages.FoundFormat, result.PostCode))
		r.table.AppendRow(r.headerRow())
		for _, place := range result.Places {
			r.table.AppendRow(placeRow(place))
		}

	default:
		r.status.SetStatus(fmt.Sprintf(r.messages.FailureFormat, result.Zip, failureReason(result)))
	}
}

// Reset returns both sinks to the idle state
func (r *Renderer) Reset() {
	ClearRows(r.table, 0)
	r.status.SetStatus("")
}

func (r *Renderer) headerRow() []Cell {
	return []Cell{
		HeaderCell(""),
		HeaderCell(r.messages.HeaderState),
		HeaderCell(r.messages.HeaderPlace),
		HeaderCell(r.messages.HeaderCoordinates),
	}
}

func placeRow(place model.Place) []Cell {
	return []Cell{
		ImageCell(place.StateImagePath()),
		TextCell(place.State),
		TextCell(place.PlaceName),
		TextCell(place.Coordinates()),
	}
}

func failureReason(result model.LookupResult) string {
	if result.Err != nil {
		return result.Err.Error()
	}
	return result.Outcome.String()
}

// ClearRows removes rows from the end of table until at most limit remain.
func ClearRows(table TableSink, limit int) {
	if limit < 0 {
		limit = 0
	}
	for table.RowCount() > limit {
		table.RemoveLastRow()
	}
}
