package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// toolbarAction is one icon button of the main toolbar. A zero value
// stands for a separator.
type toolbarAction struct {
	icon    fyne.Resource
	tooltip string
	run     func()
}

// newToolbar lays out icon-only buttons whose tooltips appear on hover.
// The window content must be wrapped with fynetooltip.AddWindowToolTipLayer
// for the tooltips to render.
func newToolbar(actions ...toolbarAction) *fyne.Container {
	box := container.NewHBox()
	for _, act := range actions {
		if act.run == nil {
			box.Add(widget.NewSeparator())
			continue
		}
		btn := ttwidget.NewButtonWithIcon("", act.icon, act.run)
		btn.SetToolTip(act.tooltip)
		box.Add(btn)
	}
	return box
}
