package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It filters ZIP input, hands submissions to the lookup service and renders
// completed lookups into a status label and a results table. All UI strings
// are localized via i18n.Localization.
