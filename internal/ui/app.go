package ui

import (
	"image/color"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/pterm/pterm"

	"github.com/ytget/axie-counter/internal/config"
	"github.com/ytget/axie-counter/internal/input"
	"github.com/ytget/axie-counter/internal/model"
	"github.com/ytget/axie-counter/internal/platform"
)

// App is the application context: one counter, one window, one view
type App struct {
	fyneApp      fyne.App
	window       fyne.Window
	view         *CounterView
	settings     *config.Settings
	localization *Localization
}

// NewApp builds the window and its counter view on top of fyneApp.
// An error means the UI could not be constructed and Run must not be called.
func NewApp(fyneApp fyne.App, settings *config.Settings) (*App, error) {
	fyneApp.Settings().SetTheme(NewCounterTheme())

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	icon := LoadLightningIcon(platform.ResourceDirs(AppName))
	fyneApp.SetIcon(icon)

	counter, err := model.NewCounter(model.DefaultMin, settings.GetMaxValue())
	if err != nil {
		return nil, err
	}

	view, err := NewCounterView(counter, input.DefaultKeyMap(), icon)
	if err != nil {
		return nil, err
	}

	a := &App{
		fyneApp:      fyneApp,
		view:         view,
		settings:     settings,
		localization: localization,
	}

	a.window = fyneApp.NewWindow(localization.GetText(KeyAppTitle))
	a.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	a.window.SetContent(withMinWidth(view.Content(), MinWindowWidth))

	// Keys typed while no widget has focus
	a.window.Canvas().SetOnTypedKey(view.Router().TypedKey)
	a.window.Canvas().SetOnTypedRune(view.Router().TypedRune)

	a.createMenu()

	pterm.Debug.Printfln("UI ready: bounds [%d, %d], language %s",
		counter.Min(), counter.Max(), localization.GetCurrentLanguage())
	return a, nil
}

// withMinWidth keeps the window from shrinking narrower than width
func withMinWidth(content fyne.CanvasObject, width float32) fyne.CanvasObject {
	strut := canvas.NewRectangle(color.Transparent)
	strut.SetMinSize(fyne.NewSize(width, 0))
	return container.NewStack(strut, content)
}

// Run shows the window and blocks in the event loop until it is closed
func (a *App) Run() {
	a.window.ShowAndRun()
}

// Window returns the main window
func (a *App) Window() fyne.Window {
	return a.window
}

// View returns the counter view
func (a *App) View() *CounterView {
	return a.view
}

// createMenu creates the application menu
func (a *App) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", a.onShowSettings)

	languageMenu := fyne.NewMenu("Language")

	available := a.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(available))
	for code := range available {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(available[code], func() {
			a.onLanguageChange(langCode)
		})
		langItem.Checked = a.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	a.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (a *App) onLanguageChange(langCode string) {
	a.localization.SetLanguage(langCode)
	a.settings.SetLanguage(langCode)
	a.window.SetTitle(a.localization.GetText(KeyAppTitle))
	a.createMenu()
}

// onShowSettings shows the settings dialog
func (a *App) onShowSettings() {
	NewSettingsDialog(a.settings, a.window, a.applySettings).Show()
}

// applySettings pushes saved settings into the live UI
func (a *App) applySettings() {
	if err := a.view.ApplyMax(a.settings.GetMaxValue()); err != nil {
		pterm.Error.Printfln("failed to apply max value: %v", err)
	}
	a.onLanguageChange(a.settings.GetLanguage())
}
