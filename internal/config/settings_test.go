package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestMaxValue(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	maxValue := settings.GetMaxValue()
	if maxValue != DefaultMaxValue {
		t.Errorf("Expected default max value %d, got %d", DefaultMaxValue, maxValue)
	}

	// Test setting custom value
	settings.SetMaxValue(20)

	retrievedMax := settings.GetMaxValue()
	if retrievedMax != 20 {
		t.Errorf("Expected max value 20, got %d", retrievedMax)
	}

	// Test boundary values
	settings.SetMaxValue(0) // Should be clamped to 1
	if settings.GetMaxValue() != MinMaxValue {
		t.Errorf("Max value should be clamped to minimum %d", MinMaxValue)
	}

	settings.SetMaxValue(500) // Should be clamped to 99
	if settings.GetMaxValue() != MaxMaxValue {
		t.Errorf("Max value should be clamped to maximum %d", MaxMaxValue)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
