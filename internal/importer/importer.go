// Package importer reads batch job lists from CSV and Excel files. Columns
// are found by header name (case-insensitive, with aliases) or, without a
// header, by position: label, gears, pitch, thickness, before.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/FlexoCalc/internal/model"
)

var (
	ErrNoRows        = errors.New("no data rows found")
	ErrNoGearsColumn = errors.New("required column not found in header: gears")
	ErrMissingGears  = errors.New("missing gear count")
	ErrInvalidGears  = errors.New("gear count must be a positive number")
	ErrInvalidPitch  = errors.New("pitch must be a positive number")
	ErrInvalidBefore = errors.New("dimension must be a number")
)

// RowError ties a parse failure to the row it came from.
type RowError struct {
	Row   int // 1-based, as shown by spreadsheet programs
	Value string
	Err   error
}

func (e *RowError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d: %v (got %q)", e.Row, e.Err, e.Value)
}

func (e *RowError) Unwrap() error { return e.Err }

// ImportResult holds the jobs read from a file. Rows that failed are
// reported in Errors and skipped; the rest are still imported.
type ImportResult struct {
	Jobs     []model.Job
	Errors   []error
	Warnings []string
}

// ColumnMapping holds the column index of each job attribute, -1 if absent.
type ColumnMapping struct {
	Label     int
	Gears     int
	Pitch     int
	Thickness int
	Before    int
}

type column int

const (
	colLabel column = iota
	colGears
	colPitch
	colThickness
	colBefore
)

func (m *ColumnMapping) slot(c column) *int {
	switch c {
	case colLabel:
		return &m.Label
	case colGears:
		return &m.Gears
	case colPitch:
		return &m.Pitch
	case colThickness:
		return &m.Thickness
	default:
		return &m.Before
	}
}

var positionalMapping = ColumnMapping{Label: 0, Gears: 1, Pitch: 2, Thickness: 3, Before: 4}

// headerColumns maps every accepted lowercase header to its column.
var headerColumns = func() map[string]column {
	aliases := map[column][]string{
		colLabel:     {"label", "name", "job", "plate", "description", "desc", "item"},
		colGears:     {"gears", "gear count", "gear_count", "teeth", "t", "z"},
		colPitch:     {"pitch", "gear pitch", "cp"},
		colThickness: {"thickness", "plate thickness", "th"},
		colBefore:    {"before", "dimension", "dimension before", "dimension_before", "size", "length"},
	}
	m := make(map[string]column)
	for c, names := range aliases {
		for _, n := range names {
			m[n] = c
		}
	}
	return m
}()

// DetectColumns maps a header row. When no cell is a known header it
// returns the positional mapping and false.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Gears: -1, Pitch: -1, Thickness: -1, Before: -1}
	found := false
	for i, cell := range row {
		c, ok := headerColumns[strings.ToLower(strings.TrimSpace(cell))]
		if !ok {
			continue
		}
		found = true
		if s := mapping.slot(c); *s == -1 {
			*s = i
		}
	}
	if !found {
		return positionalMapping, false
	}
	return mapping, true
}

var delimiterNames = map[rune]string{',': "comma", ';': "semicolon", '\t': "tab", '|': "pipe"}

// DetectCSVDelimiter picks the candidate that appears the same, non-zero
// number of times on each of the first lines, preferring the larger count.
// Comma wins when nothing is consistent.
func DetectCSVDelimiter(data []byte) rune {
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if l = strings.TrimRight(l, "\r"); strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
		if len(lines) == 10 {
			break
		}
	}

	best, bestCount := ',', 0
	for _, delim := range []rune{',', ';', '\t', '|'} {
		count := -1
		for _, l := range lines {
			n := countOutsideQuotes(l, delim)
			if count == -1 {
				count = n
			}
			if n != count {
				count = 0
				break
			}
		}
		if count > bestCount {
			best, bestCount = delim, count
		}
	}
	return best
}

func countOutsideQuotes(line string, delim rune) int {
	n, quoted := 0, false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == delim && !quoted:
			n++
		}
	}
	return n
}

// Import reads a job list, choosing the reader by file extension.
func Import(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ImportExcel(path)
	default:
		return ImportCSV(path)
	}
}

// ImportCSV reads a delimited text file, detecting the delimiter.
func ImportCSV(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []error{fmt.Errorf("cannot open file: %w", err)}}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ImportResult{Errors: []error{fmt.Errorf("%s is empty: %w", filepath.Base(path), ErrNoRows)}}
	}

	delim := DetectCSVDelimiter(data)
	result := ImportCSVFromReader(bytes.NewReader(data), delim)
	if delim != ',' {
		result.Warnings = append([]string{"Detected " + delimiterNames[delim] + " delimiter"}, result.Warnings...)
	}
	return result
}

// ImportCSVFromReader reads delimited text with a known delimiter.
func ImportCSVFromReader(r io.Reader, delim rune) ImportResult {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return ImportResult{Errors: []error{fmt.Errorf("cannot read CSV: %w", err)}}
	}
	return importRows(rows)
}

// jobsSheet is read in preference to the first sheet when a workbook has it.
const jobsSheet = "Jobs"

// ImportExcel reads the "Jobs" sheet of a workbook, or its first sheet.
func ImportExcel(path string) ImportResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ImportResult{Errors: []error{fmt.Errorf("cannot open Excel file: %w", err)}}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{Errors: []error{fmt.Errorf("workbook has no sheets: %w", ErrNoRows)}}
	}
	sheet := sheets[0]
	for _, s := range sheets {
		if strings.EqualFold(s, jobsSheet) {
			sheet = s
			break
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return ImportResult{Errors: []error{fmt.Errorf("cannot read sheet %s: %w", sheet, err)}}
	}
	return importRows(rows)
}

// importRows turns raw rows into jobs. The first row is treated as a
// header when it names a known column or its gear cell is not a number.
func importRows(rows [][]string) ImportResult {
	var result ImportResult
	if len(rows) == 0 {
		result.Errors = append(result.Errors, ErrNoRows)
		return result
	}

	mapping, named := DetectColumns(rows[0])
	body := rows
	switch {
	case named:
		if mapping.Gears == -1 {
			result.Errors = append(result.Errors, ErrNoGearsColumn)
			return result
		}
		body = rows[1:]
	case !isNumber(cell(rows[0], positionalMapping.Gears)) && !blankRow(rows[0]):
		body = rows[1:]
	}
	if len(body) < len(rows) {
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	}
	offset := len(rows) - len(body) + 1

	table := model.DefaultThicknessTable()
	for i, row := range body {
		if blankRow(row) {
			continue
		}
		job, warning, err := parseRow(row, mapping, len(result.Jobs), table)
		if err != nil {
			err.Row = i + offset
			result.Errors = append(result.Errors, err)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: %s", i+offset, warning))
		}
		result.Jobs = append(result.Jobs, job)
	}

	if len(result.Jobs) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, ErrNoRows)
	}
	return result
}

// parseRow builds a job from one row. The returned RowError has no row
// number yet.
func parseRow(row []string, m ColumnMapping, jobCount int, table model.ThicknessTable) (model.Job, string, *RowError) {
	gears := cell(row, m.Gears)
	if gears == "" {
		return model.Job{}, "", &RowError{Err: ErrMissingGears}
	}
	if v, ok := parseDecimal(gears); !ok || v <= 0 {
		return model.Job{}, "", &RowError{Value: gears, Err: ErrInvalidGears}
	}

	pitch := cell(row, m.Pitch)
	if pitch != "" {
		if v, ok := parseDecimal(pitch); !ok || v <= 0 {
			return model.Job{}, "", &RowError{Value: pitch, Err: ErrInvalidPitch}
		}
		pitch = model.Normalize(pitch)
	}

	before := cell(row, m.Before)
	if before != "" {
		if !isNumber(before) {
			return model.Job{}, "", &RowError{Value: before, Err: ErrInvalidBefore}
		}
		before = model.Normalize(before)
	}

	var warning string
	thickness := cell(row, m.Thickness)
	if thickness != "" && !table.Known(thickness) {
		warning = fmt.Sprintf("Unknown plate thickness %q, using the %s mm constant", thickness, model.FallbackThickness)
	}

	label := cell(row, m.Label)
	if label == "" {
		label = fmt.Sprintf("Job %d", jobCount+1)
	}
	return model.NewJob(label, model.Normalize(gears), pitch, thickness, before), warning, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// decimalPattern is the plain decimal form model.Normalize keeps intact.
// Exponents, hex, NaN and Inf are rejected rather than truncated.
var decimalPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)

func parseDecimal(s string) (float64, bool) {
	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func isNumber(s string) bool {
	_, ok := parseDecimal(s)
	return ok
}
