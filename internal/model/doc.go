package model

// Package model defines the counter state used by the UI: a saturating
// integer counter and the logical intents that drive it. Values are
// mutated only through explicit operations and never leave their bounds.
