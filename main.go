package main

import (
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/pterm/pterm"

	"github.com/ytget/axie-counter/internal/config"
	"github.com/ytget/axie-counter/internal/platform"
	"github.com/ytget/axie-counter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if version == "dev" {
		pterm.EnableDebugMessages()
	}
	pterm.Info.Printfln("Axie Energy Counter v%s starting...", version)

	// Users can drop a replacement lightning_icon.png here
	if dir, err := platform.EnsureUserResourceDir(ui.AppName); err != nil {
		pterm.Warning.Println(err)
	} else {
		pterm.Debug.Printfln("resource dir: %s", dir)
	}

	fyneApp := app.NewWithID(ui.AppID)
	settings := config.NewSettings(fyneApp)

	counterApp, err := ui.NewApp(fyneApp, settings)
	if err != nil {
		pterm.Error.Printfln("failed to build UI: %v", err)
		os.Exit(1)
	}

	counterApp.Run()
}
