package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/zip-lookup/internal/config"
	"github.com/ytget/zip-lookup/internal/i18n"
	"github.com/ytget/zip-lookup/internal/lookup"
	"github.com/ytget/zip-lookup/internal/model"
	"github.com/ytget/zip-lookup/internal/render"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	zipEntry     *widget.Entry
	lookupBtn    *widget.Button
	statusLabel  *widget.Label
	results      *ResultsTable
	renderer     *render.Renderer
	lookupSvc    lookup.Dispatcher
	settings     *config.Settings
	localization *i18n.Localization
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, lookupSvc lookup.Dispatcher) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := i18n.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		lookupSvc:    lookupSvc,
		settings:     settings,
		localization: localization,
	}

	// Set window title
	window.SetTitle(localization.GetText(i18n.KeyAppTitle))

	// Set up callback for completed lookups
	ui.lookupSvc.SetResultCallback(ui.onLookupResult)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create ZIP entry; every change goes through the digit filter
	ui.zipEntry = widget.NewEntry()
	ui.zipEntry.SetPlaceHolder(ui.localization.GetText(i18n.KeyEnterZip))
	ui.zipEntry.OnChanged = ui.onZipChanged
	// Trigger lookup when user presses Enter in the ZIP field
	ui.zipEntry.OnSubmitted = func(string) {
		ui.onLookupClick()
	}

	// Create lookup button
	ui.lookupBtn = widget.NewButtonWithIcon(ui.localization.GetText(i18n.KeyLookup), theme.SearchIcon(), ui.onLookupClick)

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}

	topPanel := container.NewBorder(nil, nil, left, ui.lookupBtn, ui.zipEntry)

	// Status line under the ZIP input
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.statusLabel.SizeName = theme.SizeNameHeadingText
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	// Results table
	ui.results = NewResultsTable(ui.settings.GetAssetDirectory())
	ui.renderer = render.NewRenderer(statusLabel{label: ui.statusLabel}, ui.results)
	ui.renderer.SetMessages(ui.localization.RenderMessages())

	scroll := container.NewVScroll(ui.results.Container())
	scroll.SetMinSize(fyne.NewSize(ResultsMinWidth, ResultsMinHeight))

	content := container.NewBorder(
		container.NewVBox(topPanel, ui.statusLabel), // top
		nil,    // bottom
		nil,    // left
		nil,    // right
		scroll, // center
	)

	ui.window.SetContent(content)
	ui.window.Canvas().Focus(ui.zipEntry)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(i18n.KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(i18n.KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language.
// Already rendered results keep their language until the next lookup.
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(i18n.KeyAppTitle))
	ui.zipEntry.SetPlaceHolder(ui.localization.GetText(i18n.KeyEnterZip))
	ui.lookupBtn.SetText(ui.localization.GetText(i18n.KeyLookup))
	ui.renderer.SetMessages(ui.localization.RenderMessages())
}

// onZipChanged keeps the entry restricted to at most five digits
func (ui *RootUI) onZipChanged(text string) {
	filtered := model.FilterZipInput(text)
	if filtered == text {
		return
	}
	ui.zipEntry.SetText(filtered)
	ui.zipEntry.CursorColumn = len(filtered)
	ui.zipEntry.Refresh()
}

// onLookupClick dispatches the current entry value. Values that are not a
// complete ZIP code are ignored without feedback.
func (ui *RootUI) onLookupClick() {
	zip := ui.zipEntry.Text
	task, ok := ui.lookupSvc.Dispatch(zip)
	if !ok {
		return
	}
	log.Printf("Lookup dispatched: ID=%s, Zip=%s", task.ID, task.Zip)
}

// onLookupResult renders a completed lookup on the UI thread
func (ui *RootUI) onLookupResult(task *model.LookupTask) {
	if task == nil {
		return
	}
	result := task.Result
	fyne.Do(func() {
		ui.renderer.Render(result)
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.applySettings).Show()
}

// applySettings pushes saved settings into the running services
func (ui *RootUI) applySettings() {
	ui.lookupSvc.SetBaseURL(ui.settings.GetAPIBaseURL())
	ui.lookupSvc.SetTimeout(ui.settings.GetRequestTimeout())
	ui.results.SetAssetDir(ui.settings.GetAssetDirectory())

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(lang)
	}
}
