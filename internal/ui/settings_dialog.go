package ui

import (
	"log"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/zip-lookup/internal/config"
	"github.com/ytget/zip-lookup/internal/i18n"
	"github.com/ytget/zip-lookup/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *i18n.Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	baseURLEntry   *widget.Entry
	assetDirEntry  *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were written to the settings store.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *i18n.Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	// State graphics directory selection
	sd.assetDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(i18n.KeyBrowse), sd.onBrowseDirectory)
	openDirBtn := widget.NewButton(text(i18n.KeyOpenFolder), sd.onOpenDirectory)
	assetDirRow := container.NewBorder(nil, nil, nil, container.NewHBox(browseDirBtn, openDirBtn), sd.assetDirEntry)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxRequestTimeout))

	// Language selection, codes sorted for a stable order
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(i18n.KeyAPIBaseURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(text(i18n.KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(text(i18n.KeyAssetDirectory)+":"),
		assetDirRow,

		widget.NewSeparator(),

		widget.NewLabel(text(i18n.KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		text(i18n.KeySettings),
		text(i18n.KeySave),
		text(i18n.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.assetDirEntry.SetText(sd.settings.GetAssetDirectory())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSeconds()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.assetDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onOpenDirectory reveals the state graphics directory in the file manager
func (sd *SettingsDialog) onOpenDirectory() {
	dir := strings.TrimSpace(sd.assetDirEntry.Text)
	if err := platform.OpenDirectory(dir); err != nil {
		log.Printf("Failed to open %s: %v", dir, err)
		dialog.ShowError(err, sd.window)
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(i18n.KeySettings), sd.localization.GetText(i18n.KeySettingsSaved), sd.window)
}

// save writes the form values into the settings store
func (sd *SettingsDialog) save() {
	sd.settings.SetAPIBaseURL(sd.baseURLEntry.Text)

	if dir := strings.TrimSpace(sd.assetDirEntry.Text); dir != "" {
		sd.settings.SetAssetDirectory(dir)
	}

	// Unparseable timeouts keep the previous value
	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetRequestTimeoutSeconds(seconds)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
