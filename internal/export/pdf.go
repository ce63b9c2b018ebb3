// Package export writes the current calculation and module table to
// PDF, Excel, and DXF files.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/FlexoCalc/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	headerHeight = 12.0
	rowHeight    = 7.0
	qrSize       = 32.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// ErrNothingToExport is returned when the form has no girth to report on.
var ErrNothingToExport = errors.New("nothing to export: enter a gear count or girth first")

// ExportPDF writes a one-page report: the inputs, the deformation ratio,
// the before/after pair, the module table, and a QR code carrying the
// snapshot as JSON.
func ExportPDF(path, title string, snap model.Snapshot, rows []model.ModuleRow) error {
	if snap.Girth == "" {
		return ErrNothingToExport
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginTop)
	pdf.AddPage()

	renderHeader(pdf, title)
	if err := renderQRCode(pdf, snap); err != nil {
		return err
	}
	renderInputs(pdf, snap)
	renderModuleTable(pdf, rows)

	return pdf.OutputFileAndClose(path)
}

func renderHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth-qrSize, headerHeight, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 5, "Generated "+time.Now().Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
}

// renderQRCode places the snapshot QR code in the top-right corner.
func renderQRCode(pdf *fpdf.Fpdf, snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("snapshot_qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("snapshot_qr", pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false, opts, 0, "")
	return nil
}

func renderInputs(pdf *fpdf.Fpdf, snap model.Snapshot) {
	labelW := 50.0
	valueW := 40.0

	line := func(f model.Field, value string) {
		pdf.SetX(marginLeft)
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(labelW, rowHeight, f.Label(), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 11)
		if value == "" {
			value = "-"
		}
		pdf.CellFormat(valueW, rowHeight, fmt.Sprintf("%s %s", value, f.Unit()), "", 1, "L", false, 0, "")
	}

	line(model.GearCount, snap.GearCount)
	line(model.Pitch, snap.Pitch)
	line(model.Girth, snap.Girth)
	line(model.Thickness, snap.Thickness)
	pdf.Ln(2)

	pdf.SetTextColor(200, 30, 30)
	line(model.DeformationRatio, snap.DeformationRatio)
	pdf.SetTextColor(0, 0, 0)

	if snap.DimensionBefore != "" || snap.DimensionAfter != "" {
		line(model.DimensionBefore, snap.DimensionBefore)
		line(model.DimensionAfter, snap.DimensionAfter)
	}
	pdf.Ln(6)
}

func renderModuleTable(pdf *fpdf.Fpdf, rows []model.ModuleRow) {
	colW := []float64{40, 30, 55, 55}
	headers := []string{"Row", "Module", "Before (mm)", "After (mm)"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetX(marginLeft)
	for i, h := range headers {
		pdf.CellFormat(colW[i], rowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		if r.Before == "" && r.After == "" && r.Label == model.CustomModuleLabel {
			continue
		}
		pdf.SetX(marginLeft)
		pdf.CellFormat(colW[0], rowHeight, r.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], rowHeight, r.Module, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[2], rowHeight, r.Before, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], rowHeight, r.After, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}
