package render

import "sync"

// MemoryStatus is a StatusSink that keeps the last text in memory
type MemoryStatus struct {
	mu   sync.Mutex
	text string
}

// SetStatus stores text
func (s *MemoryStatus) SetStatus(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

// Text returns the stored text
func (s *MemoryStatus) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// MemoryTable is a TableSink backed by a slice of rows
type MemoryTable struct {
	mu   sync.Mutex
	rows [][]Cell
}

// NewMemoryTable returns a table holding rows
func NewMemoryTable(rows ...[]Cell) *MemoryTable {
	return &MemoryTable{rows: rows}
}

// RowCount returns the number of rows
func (t *MemoryTable) RowCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

// AppendRow adds a copy of cells as the last row
func (t *MemoryTable) AppendRow(cells []Cell) {
	row := make([]Cell, len(cells))
	copy(row, cells)
	t.mu.Lock()
	t.rows = append(t.rows, row)
	t.mu.Unlock()
}

// RemoveLastRow drops the last row; it is a no-op on an empty table
func (t *MemoryTable) RemoveLastRow() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.rows) == 0 {
		return
	}
	t.rows = t.rows[:len(t.rows)-1]
}

// Rows returns a snapshot of the rows
func (t *MemoryTable) Rows() [][]Cell {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([][]Cell, len(t.rows))
	copy(out, t.rows)
	return out
}
