package render

// Package render turns lookup results into a status line and table rows. It
// only talks to StatusSink and TableSink, so the same renderer drives the
// Fyne window, the terminal table and tests.
