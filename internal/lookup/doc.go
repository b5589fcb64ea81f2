package lookup

// Package lookup implements the ZIP dispatcher on top of the Zippopotam.us
// REST API. It validates codes, issues fire-and-forget requests, classifies
// every response into a model.Outcome and reports completed tasks through a
// callback so the UI can render them.
