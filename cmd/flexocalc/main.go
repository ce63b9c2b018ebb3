// FlexoCalc: flexographic plate deformation calculator
//
// A cross-platform desktop application that derives plate cylinder girth
// from gear count and pitch, the deformation ratio for a plate thickness,
// and the artwork dimension before and after mounting.
//
// Build:
//   go build -o flexocalc ./cmd/flexocalc
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o flexocalc.exe ./cmd/flexocalc
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/FlexoCalc/internal/project"
	"github.com/piwi3910/FlexoCalc/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.flexocalc")

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fyne.LogError("failed to load settings, using defaults", err)
	}

	window := application.NewWindow("FlexoCalc — Plate Deformation")

	appUI := ui.NewApp(application, window, config)
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(480, 780))
	window.CenterOnScreen()
	window.ShowAndRun()
}
