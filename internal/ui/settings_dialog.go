package ui

import (
	"fmt"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/axie-counter/internal/config"
)

// SettingsDialog edits the counter bound and the interface language
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	maxValueEntry  *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings have been written.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
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
	sd.maxValueEntry = widget.NewEntry()
	sd.maxValueEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinMaxValue, config.MaxMaxValue))
	sd.maxValueEntry.Validator = validateMaxValue

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel("Maximum Energy:"),
		sd.maxValueEntry,

		widget.NewSeparator(),

		widget.NewLabel("Language:"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(360, 240))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.maxValueEntry.SetText(strconv.Itoa(sd.settings.GetMaxValue()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := validateMaxValue(sd.maxValueEntry.Text); err == nil {
		maxValue, _ := strconv.Atoi(sd.maxValueEntry.Text)
		sd.settings.SetMaxValue(maxValue)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// validateMaxValue accepts integers within the configurable range
func validateMaxValue(text string) error {
	value, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("not a number: %q", text)
	}
	if value < config.MinMaxValue || value > config.MaxMaxValue {
		return fmt.Errorf("must be between %d and %d", config.MinMaxValue, config.MaxMaxValue)
	}
	return nil
}
