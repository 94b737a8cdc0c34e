package input

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/ytget/axie-counter/internal/model"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	wantKeys := map[fyne.KeyName]model.Intent{
		fyne.KeyRight: model.IntentIncrease,
		fyne.KeyUp:    model.IntentIncrease,
		fyne.KeyLeft:  model.IntentDecrease,
		fyne.KeyDown:  model.IntentDecrease,
	}
	if diff := cmp.Diff(wantKeys, km.Keys()); diff != "" {
		t.Errorf("key bindings mismatch (-want +got):\n%s", diff)
	}

	wantRunes := map[rune]model.Intent{
		'+': model.IntentIncrease,
		'-': model.IntentDecrease,
	}
	if diff := cmp.Diff(wantRunes, km.Runes()); diff != "" {
		t.Errorf("rune bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyMap_Bind(t *testing.T) {
	km := NewKeyMap()

	if _, ok := km.Key(fyne.KeyPageUp); ok {
		t.Fatal("Empty key map should not resolve PageUp")
	}

	km.Bind(fyne.KeyPageUp, model.IntentIncrease)
	km.Bind(fyne.KeyPageUp, model.IntentDecrease)

	intent, ok := km.Key(fyne.KeyPageUp)
	if !ok || intent != model.IntentDecrease {
		t.Errorf("Expected rebinding to win, got %s (bound=%v)", intent, ok)
	}
}

func TestKeyMap_CopiesAreIndependent(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Keys()
	delete(keys, fyne.KeyUp)

	if _, ok := km.Key(fyne.KeyUp); !ok {
		t.Error("Mutating Keys() result should not affect the key map")
	}
}
