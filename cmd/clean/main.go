// Command clean runs the contact cleaning pipeline over a spreadsheet
// or CSV file from the command line.
//
// Usage:
//
//	clean -in contacts.xlsx -out cleaned.xlsx
//	clean -in data.csv -out cleaned.csv -country SA -fuzzy=false
//	clean -in data.xlsx -out out.xlsx -fuzzy-threshold 95
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"datapurity/cleaning"
	"datapurity/importer"
)

func main() {
	var (
		inPath         = flag.String("in", "", "input file path (.xlsx or .csv)")
		outPath        = flag.String("out", "", "output file path (.xlsx or .csv)")
		country        = flag.String("country", "SA", "default country code for phone numbers")
		minNameLen     = flag.Int("min-name-len", 3, "minimum valid name length")
		fuzzy          = flag.Bool("fuzzy", true, "enable fuzzy name deduplication")
		fuzzyThreshold = flag.Int("fuzzy-threshold", 90, "fuzzy name similarity threshold (0-100)")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	settings := cleaning.DefaultSettings()
	settings.DefaultCountryCode = *country
	settings.MinValidNameLen = *minNameLen
	settings.EnableFuzzyDedup = *fuzzy
	settings.FuzzyNameThreshold = *fuzzyThreshold

	if err := run(*inPath, *outPath, settings); err != nil {
		slog.Error("Cleaning failed", "error", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, settings cleaning.Settings) error {
	pipeline, err := cleaning.NewPipeline(settings)
	if err != nil {
		return err
	}

	rows, err := importer.ReadContactsFile(inPath)
	if err != nil {
		return err
	}

	records, stats, err := pipeline.Clean(rows)
	if err != nil {
		return err
	}

	if err := importer.WriteContactsFile(outPath, records); err != nil {
		return err
	}

	fmt.Printf("Cleaned %d rows -> %d contacts\n", stats.RowsOriginal, stats.RowsFinal)
	fmt.Printf("  duplicates removed:  %d\n", stats.DuplicatesRemoved)
	fmt.Printf("  empty rows removed:  %d\n", stats.EmptyRowsRemoved)
	fmt.Printf("  invalid phones:      %d\n", stats.InvalidPhones)
	fmt.Printf("  invalid emails:      %d\n", stats.InvalidEmails)
	fmt.Printf("  avg quality score:   %.1f\n", stats.AvgQualityScore)
	return nil
}
