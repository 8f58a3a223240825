package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"datapurity/cleaning"
)

// outputColumns is the canonical output schema, in column order.
var outputColumns = []string{
	"name", "phone", "phone_valid", "email", "email_valid",
	"company", "job_title", "city", "notes", "quality_score", "id",
}

// WriteContactsFile saves cleaned records to an Excel or CSV file,
// picking the format from the path extension.
func WriteContactsFile(path string, records []*cleaning.Record) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := WriteContacts(f, records, format); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteContacts writes cleaned records to a stream in the given format.
// CSV output is prefixed with a UTF-8 BOM so Excel renders Arabic text
// correctly.
func WriteContacts(w io.Writer, records []*cleaning.Record, format Format) error {
	switch format {
	case FormatXLSX:
		return writeExcel(w, records)
	case FormatCSV:
		return writeCSV(w, records)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeExcel(w io.Writer, records []*cleaning.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(outputColumns))
	for i, col := range outputColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		row := []interface{}{
			rec.Name, rec.Phone, rec.PhoneValid, rec.Email, rec.EmailValid,
			rec.Company, rec.JobTitle, rec.City, rec.Notes, rec.QualityScore, rec.Position,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, records []*cleaning.Record) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(outputColumns); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, rec := range records {
		row := []string{
			rec.Name,
			rec.Phone,
			strconv.FormatBool(rec.PhoneValid),
			rec.Email,
			strconv.FormatBool(rec.EmailValid),
			rec.Company,
			rec.JobTitle,
			rec.City,
			rec.Notes,
			strconv.Itoa(rec.QualityScore),
			strconv.Itoa(rec.Position),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
