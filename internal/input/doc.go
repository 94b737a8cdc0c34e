package input

// Package input maps physical triggers (named keys and typed runes) to
// logical counter intents. Every focusable widget and the window canvas
// forward their keyboard events to the same Router, so routing does not
// depend on which widget currently has focus.
