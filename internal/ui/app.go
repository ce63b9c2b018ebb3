// Package ui provides the FlexoCalc window: the reactive calculation form,
// the module table, and the export, batch and settings dialogs.
package ui

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/FlexoCalc/internal/engine"
	"github.com/piwi3910/FlexoCalc/internal/export"
	"github.com/piwi3910/FlexoCalc/internal/model"
	"github.com/piwi3910/FlexoCalc/internal/project"
	"github.com/piwi3910/FlexoCalc/internal/ui/widgets"
)

const appVersion = "1.0.0"

var ratioColor = color.NRGBA{R: 220, G: 30, B: 30, A: 255}

// App holds all application state and UI references.
type App struct {
	app    fyne.App
	window fyne.Window
	engine *engine.Engine
	config model.AppConfig
	theme  *FlexoCalcTheme

	entries   map[model.Field]*widget.Entry
	pitch     *widget.SelectEntry
	thickness *widget.SelectEntry
	ratio     *canvas.Text
	modes     *widget.Label
	table     *widget.Table
	bar       *widgets.DeformationBar
	rows      []model.ModuleRow

	// updating is set while refresh writes derived values back into the
	// entries, so their OnChanged callbacks do not start another edit.
	updating bool

	lastResults []model.JobResult
}

func NewApp(application fyne.App, window fyne.Window, config model.AppConfig) *App {
	a := &App{
		app:     application,
		window:  window,
		engine:  engine.New(),
		config:  config,
		theme:   NewFlexoCalcTheme(config.Theme),
		entries: make(map[model.Field]*widget.Entry),
	}
	application.Settings().SetTheme(a.theme)
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Clear", func() {
			a.reset()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Report...", func() {
			a.exportPDF()
		}),
		fyne.NewMenuItem("Export Module Table to Excel...", func() {
			a.exportExcel(nil)
		}),
		fyne.NewMenuItem("Export DXF Repeat Guide...", func() {
			a.exportDXF()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	batchMenu := fyne.NewMenu("Batch",
		fyne.NewMenuItem("Import Jobs from CSV...", func() {
			a.importBatch(false)
		}),
		fyne.NewMenuItem("Import Jobs from Excel...", func() {
			a.importBatch(true)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show Last Results", func() {
			a.showBatchResults(a.lastResults, nil)
		}),
	)

	settingsMenu := fyne.NewMenu("Settings",
		fyne.NewMenuItem("Settings...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItem("Import / Export Settings...", func() {
			a.showImportExportDialog()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, batchMenu, settingsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About FlexoCalc",
		"FlexoCalc — Plate Deformation Calculator\n\n"+
			"Computes plate cylinder girth from gear count and pitch,\n"+
			"the deformation ratio for a plate thickness, and the\n"+
			"artwork dimension before and after mounting.\n\n"+
			"Version "+appVersion,
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	form := a.buildForm()

	a.ratio = canvas.NewText("", ratioColor)
	a.ratio.TextSize = 28
	a.ratio.TextStyle = fyne.TextStyle{Bold: true}
	a.ratio.Alignment = fyne.TextAlignCenter

	a.modes = widget.NewLabel("")
	a.modes.Alignment = fyne.TextAlignCenter
	a.modes.Importance = widget.LowImportance

	a.bar = widgets.NewDeformationBar()
	a.table = a.buildModuleTable()

	top := container.NewVBox(
		form,
		widget.NewSeparator(),
		a.ratio,
		a.modes,
		a.bar,
	)

	split := container.NewVSplit(container.NewVScroll(top), a.table)
	split.SetOffset(0.6)

	a.refresh()
	return container.NewBorder(a.buildToolbar(), nil, nil, nil, split)
}

func (a *App) buildToolbar() fyne.CanvasObject {
	return newToolbar(
		toolbarAction{theme.ContentClearIcon(), "Clear all fields", a.reset},
		toolbarAction{},
		toolbarAction{theme.DocumentPrintIcon(), "Export PDF report", a.exportPDF},
		toolbarAction{theme.GridIcon(), "Export module table to Excel", func() { a.exportExcel(nil) }},
		toolbarAction{theme.DocumentSaveIcon(), "Export DXF repeat guide", a.exportDXF},
		toolbarAction{},
		toolbarAction{theme.FolderOpenIcon(), "Import batch jobs from CSV", func() { a.importBatch(false) }},
		toolbarAction{theme.SettingsIcon(), "Settings", a.showSettingsDialog},
	)
}

// ─── Form ──────────────────────────────────────────────────

func (a *App) buildForm() *widget.Form {
	a.pitch = widget.NewSelectEntry(a.config.PitchChoices)
	a.thickness = widget.NewSelectEntry(a.engine.Table().Thicknesses())

	a.entries[model.GearCount] = widget.NewEntry()
	a.entries[model.Pitch] = &a.pitch.Entry
	a.entries[model.Girth] = widget.NewEntry()
	a.entries[model.Thickness] = &a.thickness.Entry
	a.entries[model.ModuleCount] = widget.NewEntry()
	a.entries[model.DimensionBefore] = widget.NewEntry()
	a.entries[model.DimensionAfter] = widget.NewEntry()

	// Picking a SelectEntry option goes through the embedded Entry's
	// OnChanged, so the selects need no separate callback.
	for f, e := range a.entries {
		a.bindEntry(f, e)
	}

	item := func(f model.Field, obj fyne.CanvasObject) *widget.FormItem {
		return widget.NewFormItem(fieldCaption(f), obj)
	}
	return widget.NewForm(
		item(model.GearCount, a.entries[model.GearCount]),
		item(model.Pitch, a.pitch),
		item(model.Girth, a.entries[model.Girth]),
		item(model.Thickness, a.thickness),
		item(model.ModuleCount, a.entries[model.ModuleCount]),
		item(model.DimensionBefore, a.entries[model.DimensionBefore]),
		item(model.DimensionAfter, a.entries[model.DimensionAfter]),
	)
}

func (a *App) bindEntry(f model.Field, e *widget.Entry) {
	e.SetPlaceHolder(f.Unit())
	e.OnChanged = func(text string) {
		if a.updating {
			return
		}
		a.engine.Input(f, text)
		a.refresh()
	}
}

// refresh copies the engine state into every widget.
func (a *App) refresh() {
	a.updating = true
	defer func() { a.updating = false }()

	snap := a.engine.Snapshot()
	for f, e := range a.entries {
		if v := snap.Value(f); e.Text != v {
			e.SetText(v)
		}
	}

	if a.ratio != nil {
		a.ratio.Text = ratioCaption(snap)
		a.ratio.Refresh()
	}
	if a.modes != nil {
		a.modes.SetText(modeCaption(snap))
	}
	if a.bar != nil {
		a.bar.SetValues(snap.DimensionBefore, snap.DimensionAfter)
	}

	a.rows = a.engine.ModuleRows()
	if a.table != nil {
		a.table.Refresh()
	}
}

func (a *App) reset() {
	a.engine = engine.New()
	a.refresh()
}

func fieldCaption(f model.Field) string {
	if f.Unit() == "" {
		return f.Label()
	}
	return fmt.Sprintf("%s (%s)", f.Label(), f.Unit())
}

func ratioCaption(snap model.Snapshot) string {
	if snap.DeformationRatio == "" {
		return "- %"
	}
	return snap.DeformationRatio + " %"
}

func modeCaption(snap model.Snapshot) string {
	return snap.GirthMode.String() + ", " + snap.DeformMode.String()
}

// ─── Module Table ──────────────────────────────────────────

var moduleHeaders = []string{"Row", "Module", "Before (mm)", "After (mm)"}

func (a *App) buildModuleTable() *widget.Table {
	t := widget.NewTable(
		func() (int, int) { return len(a.rows) + 1, len(moduleHeaders) },
		func() fyne.CanvasObject { return widget.NewLabel("000000.0000") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			label.TextStyle = fyne.TextStyle{Bold: id.Row == 0}
			label.SetText(moduleCell(a.rows, id.Row, id.Col))
		},
	)
	t.SetColumnWidth(0, 90)
	t.SetColumnWidth(1, 70)
	t.SetColumnWidth(2, 120)
	t.SetColumnWidth(3, 120)
	return t
}

// moduleCell returns the text for a table cell; row 0 is the header.
func moduleCell(rows []model.ModuleRow, row, col int) string {
	if row == 0 {
		return moduleHeaders[col]
	}
	if row > len(rows) {
		return ""
	}
	r := rows[row-1]
	switch col {
	case 0:
		return r.Label
	case 1:
		return r.Module
	case 2:
		return r.Before
	default:
		return r.After
	}
}

// ─── Export ────────────────────────────────────────────────

func (a *App) exportPDF() {
	if !a.hasResult() {
		return
	}
	snap := a.engine.Snapshot()
	rows := a.engine.ModuleRows()
	a.saveFile("flexocalc-report.pdf", ".pdf", func(path string) error {
		return export.ExportPDF(path, a.config.ReportTitle, snap, rows)
	})
}

// exportExcel writes the module table and, when given, batch results.
func (a *App) exportExcel(results []model.JobResult) {
	rows := a.engine.ModuleRows()
	a.saveFile("flexocalc.xlsx", ".xlsx", func(path string) error {
		return export.ExportExcel(path, rows, results)
	})
}

func (a *App) exportDXF() {
	if !a.hasResult() {
		return
	}
	rows := a.engine.ModuleRows()
	a.saveFile("flexocalc-guide.dxf", ".dxf", func(path string) error {
		return export.ExportDXF(path, rows)
	})
}

// hasResult reports whether there is a girth to export, telling the user
// otherwise.
func (a *App) hasResult() bool {
	if a.engine.Value(model.Girth) != "" {
		return true
	}
	a.showNothingToExport()
	return false
}

func (a *App) showNothingToExport() {
	dialog.ShowInformation("Nothing to export", "Enter a gear count or girth first.", a.window)
}

// saveFile asks for a destination and hands its path to write. The dialog
// opens in the configured export directory when there is one.
func (a *App) saveFile(defaultName, ext string, write func(path string) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := write(path); err != nil {
			if errors.Is(err, export.ErrNothingToExport) {
				a.showNothingToExport()
				return
			}
			dialog.ShowError(fmt.Errorf("export failed: %w", err), a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	if dir := strings.TrimSpace(a.config.ExportDir); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		} else {
			fyne.LogError("export directory unavailable: "+dir, err)
		}
	}
	d.Show()
}

// openFile asks for a file with the given extension and hands its path to
// open.
func (a *App) openFile(ext string, open func(path string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		open(reader.URI().Path())
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
