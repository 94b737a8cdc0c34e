package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
	"github.com/pterm/pterm"

	"github.com/ytget/axie-counter/internal/platform"
)

//go:embed assets/lightning_icon.svg
var lightningSVG []byte

// LightningResource is the embedded fallback icon
var LightningResource = fyne.NewStaticResource(LightningIconSVG, lightningSVG)

// LoadLightningIcon loads the lightning icon from the first resource dir
// that has it, falling back to the embedded SVG
func LoadLightningIcon(dirs []string) fyne.Resource {
	path, err := platform.FindResource(dirs, LightningIconPNG)
	if err != nil {
		pterm.Debug.Printfln("using embedded icon: %v", err)
		return LightningResource
	}

	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		pterm.Warning.Printfln("failed to load icon %s: %v", path, err)
		return LightningResource
	}
	return res
}
