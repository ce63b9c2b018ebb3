package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/FlexoCalc/internal/model"
	"github.com/piwi3910/FlexoCalc/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	pitchEntry := widget.NewEntry()
	pitchEntry.SetText(strings.Join(cfg.PitchChoices, ", "))
	pitchEntry.SetPlaceHolder("3.175, 5")

	exportDirEntry := widget.NewEntry()
	exportDirEntry.SetText(cfg.ExportDir)
	exportDirEntry.SetPlaceHolder("last used folder")
	browseBtn := widget.NewButton("Browse...", func() {
		dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
			if err != nil || dir == nil {
				return
			}
			exportDirEntry.SetText(dir.Path())
		}, a.window)
	})

	titleEntry := widget.NewEntry()
	titleEntry.SetText(cfg.ReportTitle)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Pitch Choices (mm)", pitchEntry),
		widget.NewFormItem("Export Folder", container.NewBorder(nil, nil, nil, browseBtn, exportDirEntry)),
		widget.NewFormItem("Report Title", titleEntry),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			cfg.PitchChoices = parsePitchChoices(pitchEntry.Text)
			cfg.ExportDir = strings.TrimSpace(exportDirEntry.Text)
			cfg.ReportTitle = strings.TrimSpace(titleEntry.Text)
			cfg.Sanitize()
			a.applyConfig(cfg)
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(480, 320))
	d.Show()
}

// applyConfig makes cfg current: theme and pitch choices take effect
// immediately.
func (a *App) applyConfig(cfg model.AppConfig) {
	a.config = cfg
	a.theme.SetVariantName(cfg.Theme)
	a.app.Settings().SetTheme(a.theme)
	if a.pitch != nil {
		a.pitch.SetOptions(cfg.PitchChoices)
	}
}

// parsePitchChoices splits a comma or whitespace separated list.
// Validation is left to AppConfig.Sanitize.
func parsePitchChoices(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
}

// showImportExportDialog offers saving the settings to a backup file and
// restoring them from one.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export Settings...", func() {
		a.saveFile("flexocalc-settings.json", ".json", func(path string) error {
			return project.ExportSettings(path, a.config)
		})
	})

	importBtn := widget.NewButton("Import Settings...", func() {
		dialog.ShowConfirm("Import Settings",
			"Importing will replace your current settings.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if ok {
					a.openFile(".json", a.restoreSettings)
				}
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Save the current settings to a backup file,\nor restore them from a previous backup."),
		widget.NewSeparator(),
		exportBtn,
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Settings", "Close", content, a.window)
	d.Resize(fyne.NewSize(420, 220))
	d.Show()
}

func (a *App) restoreSettings(path string) {
	backup, err := project.ImportSettings(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.applyConfig(backup.Config)
	if err := a.saveConfig(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
		return
	}
	dialog.ShowInformation("Import Complete",
		fmt.Sprintf("Settings restored from the backup of %s.", backup.CreatedAt.Local().Format("2006-01-02 15:04")), a.window)
}
