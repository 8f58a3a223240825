package cleaning

import (
	"fmt"
	"log/slog"

	"datapurity/quality"
)

// Pipeline is the deterministic batch transform that turns a raw
// contact table into a cleaned, deduplicated, scored one. A Pipeline is
// stateless between runs; every invocation owns its intermediate tables
// exclusively.
type Pipeline struct {
	settings Settings
	logger   *slog.Logger
}

// NewPipeline validates the configuration and builds a pipeline.
// Configuration errors wrap ErrInvalidConfig.
func NewPipeline(settings Settings) (*Pipeline, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		settings: settings,
		logger:   slog.Default().With("component", "cleaning_pipeline"),
	}, nil
}

// Settings returns the configuration the pipeline was built with.
func (p *Pipeline) Settings() Settings {
	return p.settings
}

// Clean runs the full pipeline over one in-memory table: column
// mapping, field normalization, duplicate marking and removal, quality
// scoring, empty-row removal and statistics. There is no early exit; an
// empty input flows through to a well-formed zero-row result. The only
// failure is a structurally unusable input, which wraps ErrInvalidInput.
func (p *Pipeline) Clean(rows []Row) ([]*Record, Stats, error) {
	p.logger.Info("Starting contact cleaning pipeline", "input_rows", len(rows))

	for i, row := range rows {
		if row == nil {
			return nil, Stats{}, fmt.Errorf("%w: row %d is nil", ErrInvalidInput, i)
		}
	}

	// Steps 1-2: map columns to the canonical schema. Missing canonical
	// fields materialize as empty strings on the Record itself.
	records := make([]*Record, len(rows))
	for i, row := range rows {
		records[i] = MapRow(row, i)
	}

	// Step 3: clean every canonical text field.
	for _, rec := range records {
		rec.Name = CleanText(rec.Name)
		rec.Phone = CleanText(rec.Phone)
		rec.Email = CleanText(rec.Email)
		rec.Company = CleanText(rec.Company)
		rec.JobTitle = CleanText(rec.JobTitle)
		rec.City = CleanText(rec.City)
		rec.Notes = CleanText(rec.Notes)
	}

	// Step 4: normalize names.
	for _, rec := range records {
		rec.Name = NormalizeName(rec.Name)
	}

	// Steps 5-6: normalize phones and emails. An invalid value is
	// nulled out, never left partially normalized.
	invalidPhones := 0
	invalidEmails := 0
	for _, rec := range records {
		rec.Phone, rec.PhoneValid = NormalizePhone(rec.Phone, p.settings.DefaultCountryCode)
		if !rec.PhoneValid {
			invalidPhones++
		}
		rec.Email, rec.EmailValid = NormalizeEmail(rec.Email, p.settings.BadEmailDomains)
		if !rec.EmailValid {
			invalidEmails++
		}
	}
	p.logger.Info("Field normalization completed", "invalid_phones", invalidPhones, "invalid_emails", invalidEmails)

	// Step 7: mark duplicates.
	fuzzyClusters := MarkDuplicates(records, p.settings)

	// Step 8: drop hard duplicates.
	survivors, duplicatesRemoved := DropHardDuplicates(records)
	p.logger.Info("Removed hard duplicates", "removed", duplicatesRemoved)

	// Step 9: compute quality scores.
	for _, rec := range survivors {
		rec.QualityScore = quality.Score(quality.Factors{
			PhoneValid: rec.PhoneValid,
			EmailValid: rec.EmailValid,
			Name:       rec.Name,
			Company:    rec.Company,
			JobTitle:   rec.JobTitle,
			City:       rec.City,
		}, p.settings.MinValidNameLen)
	}

	// Step 10: drop empty rows. A row is empty when it has no valid
	// phone, no valid email and its name fails the quality gate.
	final := make([]*Record, 0, len(survivors))
	for _, rec := range survivors {
		if rec.Phone != "" || rec.Email != "" || IsGoodName(rec.Name, p.settings) {
			final = append(final, rec)
		}
	}
	p.logger.Info("Removed empty rows", "removed", len(survivors)-len(final))

	// Step 11: reassign dense positions to the survivors.
	phoneValid := make([]bool, len(final))
	emailValid := make([]bool, len(final))
	for i, rec := range final {
		rec.Position = i
		phoneValid[i] = rec.PhoneValid
		emailValid[i] = rec.EmailValid
	}

	// Step 12: build statistics from the three snapshots.
	stats := BuildStats(rows, survivors, final, phoneValid, emailValid)
	stats.FuzzyDuplicateClusters = fuzzyClusters

	p.logger.Info("Cleaning pipeline completed",
		"rows_original", stats.RowsOriginal,
		"rows_final", stats.RowsFinal,
		"duplicates_removed", stats.DuplicatesRemoved,
		"empty_rows_removed", stats.EmptyRowsRemoved,
		"avg_quality_score", stats.AvgQualityScore,
	)

	return final, stats, nil
}
