package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/axie-counter/internal/input"
)

// ErrInvalidRole is returned when a ChangeButton is built for an unknown symbol
var ErrInvalidRole = errors.New(`change button role must be "+" or "-"`)

var roleImportance = map[string]widget.Importance{
	RolePlus:  widget.SuccessImportance,
	RoleMinus: widget.DangerImportance,
}

// ChangeButton is a "+1" or "-1" button. While focused it hands keyboard
// input to the router first so focus never swallows counter shortcuts.
type ChangeButton struct {
	widget.Button

	router *input.Router
}

// NewChangeButton creates a button for role "+" or "-"
func NewChangeButton(role string, tapped func(), router *input.Router) (*ChangeButton, error) {
	importance, ok := roleImportance[role]
	if !ok {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidRole, role)
	}

	b := &ChangeButton{router: router}
	b.Text = role + "1"
	b.Importance = importance
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b, nil
}

// TypedKey routes bound keys and leaves the rest to the button
func (b *ChangeButton) TypedKey(ev *fyne.KeyEvent) {
	if b.router != nil && b.router.HandleKey(ev.Name) {
		return
	}
	b.Button.TypedKey(ev)
}

// TypedRune routes bound runes and leaves the rest to the button
func (b *ChangeButton) TypedRune(r rune) {
	if b.router != nil && b.router.HandleRune(r) {
		return
	}
	b.Button.TypedRune(r)
}
