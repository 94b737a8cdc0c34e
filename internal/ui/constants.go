package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Application identity
const (
	AppID   = "com.ytget.axie-counter"
	AppName = "axie-counter"
)

// Resource file names
const (
	LightningIconPNG = "lightning_icon.png"
	LightningIconSVG = "lightning_icon.svg"
)

// Button roles accepted by ChangeButton
const (
	RolePlus  = "+"
	RoleMinus = "-"
)

// Window sizing
const (
	WindowWidth  float32 = 1024
	WindowHeight float32 = 640

	MinWindowWidth float32 = 1024
)

// Layout sizing
const (
	ValueTextSize  float32 = 360
	ButtonTextSize float32 = 64

	IconSize     float32 = 128
	ButtonWidth  float32 = IconSize
	ButtonHeight float32 = IconSize * 1.1

	ColumnMargin float32 = 50
)

// Palette
var (
	PlusColor       = color.NRGBA{R: 0x3B, G: 0x74, B: 0x36, A: 0xFF}
	MinusColor      = color.NRGBA{R: 0x93, G: 0x4D, B: 0x37, A: 0xFF}
	BackgroundColor = color.NRGBA{R: 0x19, G: 0x23, B: 0x2D, A: 0xFF}
	ForegroundColor = color.NRGBA{R: 0xE0, G: 0xE1, B: 0xE3, A: 0xFF}
	PressedColor    = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x66}
	HoverColor      = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x22}
)
