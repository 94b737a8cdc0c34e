package input

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/axie-counter/internal/model"
)

// KeyMap binds named keys and typed runes to intents.
// '+' and '-' are bound as runes: the main-row '+' is Shift+'=' on most
// layouts and keypad +/- deliver the same runes, so a single press is
// routed exactly once.
type KeyMap struct {
	keys  map[fyne.KeyName]model.Intent
	runes map[rune]model.Intent
}

// NewKeyMap creates an empty key map
func NewKeyMap() *KeyMap {
	return &KeyMap{
		keys:  make(map[fyne.KeyName]model.Intent),
		runes: make(map[rune]model.Intent),
	}
}

// DefaultKeyMap returns +/Right/Up for increase and -/Left/Down for decrease
func DefaultKeyMap() *KeyMap {
	km := NewKeyMap()
	km.BindRune('+', model.IntentIncrease)
	km.Bind(fyne.KeyRight, model.IntentIncrease)
	km.Bind(fyne.KeyUp, model.IntentIncrease)
	km.BindRune('-', model.IntentDecrease)
	km.Bind(fyne.KeyLeft, model.IntentDecrease)
	km.Bind(fyne.KeyDown, model.IntentDecrease)
	return km
}

// Bind maps a named key to an intent, replacing any previous binding
func (km *KeyMap) Bind(key fyne.KeyName, intent model.Intent) {
	km.keys[key] = intent
}

// BindRune maps a typed rune to an intent, replacing any previous binding
func (km *KeyMap) BindRune(r rune, intent model.Intent) {
	km.runes[r] = intent
}

// Key looks up the intent bound to a named key
func (km *KeyMap) Key(key fyne.KeyName) (model.Intent, bool) {
	intent, ok := km.keys[key]
	return intent, ok
}

// Rune looks up the intent bound to a typed rune
func (km *KeyMap) Rune(r rune) (model.Intent, bool) {
	intent, ok := km.runes[r]
	return intent, ok
}

// Keys returns a copy of the named key bindings
func (km *KeyMap) Keys() map[fyne.KeyName]model.Intent {
	out := make(map[fyne.KeyName]model.Intent, len(km.keys))
	for k, v := range km.keys {
		out[k] = v
	}
	return out
}

// Runes returns a copy of the rune bindings
func (km *KeyMap) Runes() map[rune]model.Intent {
	out := make(map[rune]model.Intent, len(km.runes))
	for k, v := range km.runes {
		out[k] = v
	}
	return out
}
