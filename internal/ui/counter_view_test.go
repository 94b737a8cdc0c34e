package ui

import (
	"strconv"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/axie-counter/internal/model"
)

func newTestView(t *testing.T) *CounterView {
	t.Helper()
	test.NewApp()

	v, err := NewCounterView(model.NewDefaultCounter(), nil, nil)
	if err != nil {
		t.Fatalf("NewCounterView error: %v", err)
	}
	return v
}

func TestNewCounterView(t *testing.T) {
	v := newTestView(t)

	if v.Value() != 0 {
		t.Errorf("Expected initial value 0, got %d", v.Value())
	}
	if v.Text() != "0" {
		t.Errorf("Expected initial text %q, got %q", "0", v.Text())
	}
	if v.Content() == nil {
		t.Error("Content should not be nil")
	}
}

func TestCounterView_ButtonsUpdateLabel(t *testing.T) {
	v := newTestView(t)

	for i := 0; i < 3; i++ {
		test.Tap(v.PlusButton())
	}
	test.Tap(v.MinusButton())

	if v.Value() != 2 {
		t.Errorf("Expected value 2, got %d", v.Value())
	}
	if v.Text() != "2" {
		t.Errorf("Expected text %q, got %q", "2", v.Text())
	}
}

func TestCounterView_LabelTracksBounds(t *testing.T) {
	v := newTestView(t)

	for i := 0; i < 11; i++ {
		value := v.Increase()
		if v.Text() != strconv.Itoa(value) {
			t.Fatalf("Text %q does not match value %d", v.Text(), value)
		}
	}
	if v.Text() != "10" {
		t.Errorf("Expected text %q at max, got %q", "10", v.Text())
	}

	for i := 0; i < 11; i++ {
		v.Decrease()
	}
	if v.Text() != "0" {
		t.Errorf("Expected text %q at min, got %q", "0", v.Text())
	}
}

func TestCounterView_Router(t *testing.T) {
	v := newTestView(t)
	router := v.Router()

	router.HandleKey(fyne.KeyUp)
	router.HandleKey(fyne.KeyRight)
	router.HandleRune('+')
	router.HandleKey(fyne.KeyDown)
	router.HandleKey(fyne.KeyEscape)

	if v.Value() != 2 {
		t.Errorf("Expected value 2, got %d", v.Value())
	}
}

func TestCounterView_ApplyMax(t *testing.T) {
	v := newTestView(t)
	for i := 0; i < 8; i++ {
		v.Increase()
	}

	if err := v.ApplyMax(4); err != nil {
		t.Fatalf("ApplyMax error: %v", err)
	}
	if v.Text() != "4" {
		t.Errorf("Expected text %q after lowering max, got %q", "4", v.Text())
	}

	if err := v.ApplyMax(0); err == nil {
		t.Error("ApplyMax(0) should fail")
	}
}

func TestCounterView_PressAtBound(t *testing.T) {
	v := newTestView(t)

	if got := v.Decrease(); got != 0 {
		t.Errorf("Decrease at min = %d, expected 0", got)
	}
	if v.Text() != "0" {
		t.Errorf("Expected text %q at min, got %q", "0", v.Text())
	}

	for i := 0; i < 10; i++ {
		v.Increase()
	}
	if got := v.Increase(); got != 10 {
		t.Errorf("Increase at max = %d, expected 10", got)
	}
	if v.Text() != "10" {
		t.Errorf("Expected text %q at max, got %q", "10", v.Text())
	}
}
