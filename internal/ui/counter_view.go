package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"github.com/pterm/pterm"

	"github.com/ytget/axie-counter/internal/input"
	"github.com/ytget/axie-counter/internal/model"
)

// CounterView renders a counter as a large number with +1/-1 controls
type CounterView struct {
	counter *model.Counter
	router  *input.Router

	valueText *canvas.Text
	plusBtn   *ChangeButton
	minusBtn  *ChangeButton
	icon      *canvas.Image
	content   fyne.CanvasObject
}

// NewCounterView builds the view. keys may be nil for the default bindings.
func NewCounterView(counter *model.Counter, keys *input.KeyMap, icon fyne.Resource) (*CounterView, error) {
	v := &CounterView{counter: counter}

	v.router = input.NewRouter(keys, map[model.Intent]func(){
		model.IntentIncrease: func() { v.Increase() },
		model.IntentDecrease: func() { v.Decrease() },
	})

	var err error
	if v.plusBtn, err = NewChangeButton(RolePlus, func() { v.Increase() }, v.router); err != nil {
		return nil, err
	}
	if v.minusBtn, err = NewChangeButton(RoleMinus, func() { v.Decrease() }, v.router); err != nil {
		return nil, err
	}

	v.setupUI(icon)
	v.render(counter.Value())
	return v, nil
}

// setupUI arranges the number on the left and the button column on the right
func (v *CounterView) setupUI(icon fyne.Resource) {
	v.valueText = canvas.NewText("", ForegroundColor)
	v.valueText.TextSize = ValueTextSize
	v.valueText.TextStyle = fyne.TextStyle{Bold: true}
	v.valueText.Alignment = fyne.TextAlignCenter

	if icon == nil {
		icon = LightningResource
	}
	v.icon = canvas.NewImageFromResource(icon)
	v.icon.SetMinSize(fyne.NewSize(IconSize, IconSize))
	v.icon.FillMode = canvas.ImageFillContain

	buttonSize := fyne.NewSize(ButtonWidth, ButtonHeight)
	buttons := container.NewThemeOverride(
		container.NewVBox(
			layout.NewSpacer(),
			container.NewGridWrap(buttonSize, v.plusBtn),
			container.NewCenter(v.icon),
			container.NewGridWrap(buttonSize, v.minusBtn),
			layout.NewSpacer(),
		),
		newButtonTheme(NewCounterTheme()),
	)

	margin := canvas.NewRectangle(BackgroundColor)
	margin.SetMinSize(fyne.NewSize(ColumnMargin, 0))

	v.content = container.NewBorder(
		nil,                                // top
		nil,                                // bottom
		nil,                                // left
		container.NewHBox(buttons, margin), // right
		container.NewCenter(v.valueText),   // center
	)
}

// Increase increments the counter and shows the new value
func (v *CounterView) Increase() int {
	if v.counter.AtMax() {
		pterm.Debug.Printfln("counter at max %d, increase ignored", v.counter.Max())
	}
	value := v.counter.Increment()
	v.render(value)
	return value
}

// Decrease decrements the counter and shows the new value
func (v *CounterView) Decrease() int {
	if v.counter.AtMin() {
		pterm.Debug.Printfln("counter at min %d, decrease ignored", v.counter.Min())
	}
	value := v.counter.Decrement()
	v.render(value)
	return value
}

// ApplyMax changes the counter's upper bound and re-renders
func (v *CounterView) ApplyMax(max int) error {
	if err := v.counter.SetMax(max); err != nil {
		return err
	}
	v.render(v.counter.Value())
	return nil
}

// Value returns the counter value
func (v *CounterView) Value() int {
	return v.counter.Value()
}

// Text returns the rendered label text
func (v *CounterView) Text() string {
	return v.valueText.Text
}

// Content returns the root canvas object of the view
func (v *CounterView) Content() fyne.CanvasObject {
	return v.content
}

// Router returns the input router shared by the view's widgets
func (v *CounterView) Router() *input.Router {
	return v.router
}

// PlusButton returns the +1 button
func (v *CounterView) PlusButton() *ChangeButton {
	return v.plusBtn
}

// MinusButton returns the -1 button
func (v *CounterView) MinusButton() *ChangeButton {
	return v.minusBtn
}

func (v *CounterView) render(value int) {
	v.valueText.Text = strconv.Itoa(value)
	v.valueText.Refresh()
	pterm.Debug.Printfln("counter = %d", value)
}
