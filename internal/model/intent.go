package model

// Intent is a logical user action on the counter, independent of the
// physical trigger (button, arrow key, typed symbol) that produced it
type Intent int

const (
	// IntentIncrease asks the counter to go up by one
	IntentIncrease Intent = iota

	// IntentDecrease asks the counter to go down by one
	IntentDecrease
)

// String returns the string representation of Intent
func (i Intent) String() string {
	switch i {
	case IntentIncrease:
		return "Increase"
	case IntentDecrease:
		return "Decrease"
	default:
		return "Unknown"
	}
}

// Apply performs the intent on the counter and returns the resulting value.
// Unknown intents leave the counter untouched.
func (i Intent) Apply(c *Counter) int {
	switch i {
	case IntentIncrease:
		return c.Increment()
	case IntentDecrease:
		return c.Decrement()
	}
	return c.Value()
}
