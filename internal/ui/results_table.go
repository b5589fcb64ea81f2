package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/zip-lookup/internal/platform"
	"github.com/ytget/zip-lookup/internal/render"
)

// ResultsTable is the Fyne implementation of render.TableSink. Each row is a
// grid container inside a vertical box; rows are only ever appended or
// removed from the end.
type ResultsTable struct {
	rows     *fyne.Container
	assetDir string
}

// NewResultsTable creates an empty table resolving state graphics under assetDir
func NewResultsTable(assetDir string) *ResultsTable {
	return &ResultsTable{
		rows:     container.NewVBox(),
		assetDir: assetDir,
	}
}

// SetAssetDir changes where state graphics are looked up for new rows
func (rt *ResultsTable) SetAssetDir(dir string) {
	rt.assetDir = dir
}

// Container returns the canvas object holding the rows
func (rt *ResultsTable) Container() *fyne.Container {
	return rt.rows
}

// RowCount returns the number of rows
func (rt *ResultsTable) RowCount() int {
	return len(rt.rows.Objects)
}

// AppendRow adds a row built from cells
func (rt *ResultsTable) AppendRow(cells []render.Cell) {
	objects := make([]fyne.CanvasObject, 0, len(cells))
	for _, cell := range cells {
		objects = append(objects, rt.createCell(cell))
	}
	rt.rows.Add(container.NewGridWithColumns(max(len(cells), 1), objects...))
}

// RemoveLastRow drops the last row if any
func (rt *ResultsTable) RemoveLastRow() {
	n := len(rt.rows.Objects)
	if n == 0 {
		return
	}
	rt.rows.Remove(rt.rows.Objects[n-1])
}

// createCell builds the widget for a single cell
func (rt *ResultsTable) createCell(cell render.Cell) fyne.CanvasObject {
	if cell.Kind == render.CellImage {
		return rt.createImage(cell.Image)
	}

	label := widget.NewLabel(cell.Text)
	label.Wrapping = fyne.TextWrapWord
	if cell.Header {
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.SizeName = theme.SizeNameSubHeadingText
	}
	return label
}

// createImage loads a state graphic, falling back to a broken-image icon
func (rt *ResultsTable) createImage(relPath string) fyne.CanvasObject {
	var img *canvas.Image
	path, err := platform.ResolveStateImage(rt.assetDir, relPath)
	if err != nil {
		log.Printf("State graphic %s unavailable: %v", relPath, err)
		img = canvas.NewImageFromResource(theme.BrokenImageIcon())
	} else {
		img = canvas.NewImageFromFile(path)
	}
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(StateImageSize, StateImageSize))
	return container.NewCenter(img)
}

// statusLabel adapts a label to render.StatusSink
type statusLabel struct {
	label *widget.Label
}

// SetStatus replaces the label text
func (s statusLabel) SetStatus(text string) {
	s.label.SetText(text)
}
