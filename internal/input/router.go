package input

import (
	"fyne.io/fyne/v2"
	"github.com/pterm/pterm"

	"github.com/ytget/axie-counter/internal/model"
)

// Router dispatches keyboard events through a KeyMap to intent actions
type Router struct {
	keys    *KeyMap
	actions map[model.Intent]func()
}

// NewRouter creates a router. Intents without an action are ignored.
func NewRouter(keys *KeyMap, actions map[model.Intent]func()) *Router {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Router{keys: keys, actions: actions}
}

// HandleKey routes a named key and reports whether it was consumed
func (r *Router) HandleKey(key fyne.KeyName) bool {
	intent, ok := r.keys.Key(key)
	if !ok {
		return false
	}
	return r.dispatch(intent, string(key))
}

// HandleRune routes a typed rune and reports whether it was consumed
func (r *Router) HandleRune(ch rune) bool {
	intent, ok := r.keys.Rune(ch)
	if !ok {
		return false
	}
	return r.dispatch(intent, string(ch))
}

// TypedKey adapts HandleKey to fyne.Canvas.SetOnTypedKey
func (r *Router) TypedKey(ev *fyne.KeyEvent) {
	if ev == nil {
		return
	}
	r.HandleKey(ev.Name)
}

// TypedRune adapts HandleRune to fyne.Canvas.SetOnTypedRune
func (r *Router) TypedRune(ch rune) {
	r.HandleRune(ch)
}

func (r *Router) dispatch(intent model.Intent, trigger string) bool {
	action, ok := r.actions[intent]
	if !ok || action == nil {
		return false
	}
	pterm.Debug.Printfln("input %q -> %s", trigger, intent)
	action()
	return true
}
