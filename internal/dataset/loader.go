package dataset

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

var requiredColumns = []string{"date", "category", "country", "AI platform", "criteria", "prompt", "response"}

// sourceColumn is optional; when absent, AssignCitations fills it later.
const sourceColumn = "source_citation"

// Date layouts tried in order. Day-first layouts come before month-first so
// ambiguous dates like 05-01-2026 resolve as 5 January.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2-1-2006",
	"2/1/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Load reads the dataset from path. Supported formats: .csv, .zip holding a
// CSV, and .xlsx. The header is validated once at this boundary; a missing
// required column or an unparseable date is fatal to the session.
func Load(path string) ([]ResponseRecord, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSVFile(path)
	case ".zip":
		rows, err = readZip(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		err = fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return buildRecords(rows)
}

func readCSVFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return readCSV(f)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

// readZip opens the first CSV entry inside the archive.
func readZip(path string) ([][]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset archive: %w", err)
	}
	defer zr.Close()

	for _, file := range zr.File {
		if !strings.HasSuffix(strings.ToLower(file.Name), ".csv") {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in archive: %w", file.Name, err)
		}
		defer rc.Close()
		return readCSV(rc)
	}
	return nil, fmt.Errorf("no csv entry found in %s", path)
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// buildRecords validates the header row and converts the remaining rows into
// fixed-schema records.
func buildRecords(rows [][]string) ([]ResponseRecord, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		colIdx[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset missing required columns: %s", strings.Join(missing, ", "))
	}
	sourceIdx, hasSource := colIdx[sourceColumn]

	cell := func(row []string, col string) string {
		i := colIdx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]ResponseRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		date, err := parseDate(cell(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		rec := ResponseRecord{
			ID:       uuid.NewString(),
			Date:     date,
			Category: cell(row, "category"),
			Country:  cell(row, "country"),
			Platform: cell(row, "AI platform"),
			Criteria: cell(row, "criteria"),
			Prompt:   cell(row, "prompt"),
			Response: cell(row, "response"),
		}
		if hasSource && sourceIdx < len(row) {
			rec.Source = strings.TrimSpace(row[sourceIdx])
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset has a header but no data rows")
	}
	return records, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}
