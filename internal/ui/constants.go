package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Layout sizing (results table)
const (
	StateImageSize   float32 = 150
	ResultsMinWidth  float32 = 760
	ResultsMinHeight float32 = 320
	SettingsDialogW  float32 = 500
	SettingsDialogH  float32 = 360
)
