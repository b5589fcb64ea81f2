package render

// StatusSink shows the human-readable summary of the current query.
type StatusSink interface {
	SetStatus(text string)
}

// TableSink is an ordered list of rows that can grow at the end and shrink
// from the end.
type TableSink interface {
	RowCount() int
	AppendRow(cells []Cell)
	RemoveLastRow()
}

// CellKind tells a sink how to draw a cell
type CellKind int

const (
	CellText CellKind = iota
	CellImage
)

// Cell is one table cell. Image cells carry a relative asset path in Image.
type Cell struct {
	Kind   CellKind
	Text   string
	Image  string
	Header bool
}

// TextCell returns a plain text cell
func TextCell(text string) Cell {
	return Cell{Kind: CellText, Text: text}
}

// HeaderCell returns a bold header text cell
func HeaderCell(text string) Cell {
	return Cell{Kind: CellText, Text: text, Header: true}
}

// ImageCell returns a cell that displays the image at path
func ImageCell(path string) Cell {
	return Cell{Kind: CellImage, Image: path}
}

// String returns the text a non-graphical sink should print for the cell
func (c Cell) String() string {
	if c.Kind == CellImage {
		return c.Image
	}
	return c.Text
}
