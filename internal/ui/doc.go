package ui

// Package ui contains the Fyne-based desktop user interface for the energy
// counter. It builds the window, renders the counter value, styles the +1/-1
// buttons and forwards keyboard input to the input router.
