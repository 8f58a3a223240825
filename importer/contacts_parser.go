// Package importer reads raw contact tables from spreadsheet and CSV
// files and writes cleaned tables back out. It is a thin adapter: all
// cleaning semantics live in the cleaning package.
package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"datapurity/cleaning"
)

// Format identifies a supported contact file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FormatForPath derives the file format from a path extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported file format %q, supported formats: .xlsx, .xls, .csv", filepath.Ext(path))
	}
}

// ReadContactsFile loads raw contact rows from an Excel or CSV file.
func ReadContactsFile(path string) ([]cleaning.Row, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contacts file: %w", err)
	}
	defer f.Close()

	rows, err := ReadContacts(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}

// ReadContacts parses raw contact rows from a stream in the given
// format. The first non-empty row is treated as the header; cells
// beyond the header width are dropped and short rows are padded with
// empty values. Column labels are kept verbatim for the column mapper.
func ReadContacts(r io.Reader, format Format) ([]cleaning.Row, error) {
	switch format {
	case FormatXLSX:
		return readExcel(r)
	case FormatCSV:
		return readCSV(r)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func readExcel(r io.Reader) ([]cleaning.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel data: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	return tableToRows(rows), nil
}

func readCSV(r io.Reader) ([]cleaning.Row, error) {
	buffered := bufio.NewReader(r)

	// Files exported from Excel frequently start with a UTF-8 BOM.
	if lead, err := buffered.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		if _, err := buffered.Discard(len(utf8BOM)); err != nil {
			return nil, fmt.Errorf("failed to skip BOM: %w", err)
		}
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	table, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	return tableToRows(table), nil
}

// tableToRows converts a header-plus-data table into label->value rows.
func tableToRows(table [][]string) []cleaning.Row {
	if len(table) == 0 {
		return nil
	}

	headers := table[0]
	rows := make([]cleaning.Row, 0, len(table)-1)

	for _, cells := range table[1:] {
		if isEmptyRow(cells) {
			continue
		}
		row := make(cleaning.Row, len(headers))
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" {
				continue
			}
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}

func isEmptyRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
