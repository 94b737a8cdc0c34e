package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/axie-counter/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyMaxValue = "max_value"
	KeyLanguage = "app_language"
)

// Default values
const (
	DefaultMaxValue = model.DefaultMax
	DefaultLanguage = "system"
)

// Limits for the configurable upper bound
const (
	MinMaxValue = model.DefaultMin + 1
	MaxMaxValue = 99
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMaxValue returns the configured upper bound of the counter
func (s *Settings) GetMaxValue() int {
	value := s.app.Preferences().Int(KeyMaxValue)
	if value <= 0 {
		s.SetMaxValue(DefaultMaxValue)
		return DefaultMaxValue
	}
	return value
}

// SetMaxValue sets the upper bound of the counter
func (s *Settings) SetMaxValue(value int) {
	if value < MinMaxValue {
		value = MinMaxValue
	}
	if value > MaxMaxValue {
		value = MaxMaxValue
	}
	s.app.Preferences().SetInt(KeyMaxValue, value)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
