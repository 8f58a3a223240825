package cleaning

// Stats is the immutable summary of one cleaning run, computed once
// from three table snapshots (original, post-hard-dedup, final).
type Stats struct {
	RowsOriginal            int     `json:"rows_original"`
	RowsAfterDropDuplicates int     `json:"rows_after_drop_duplicates"`
	RowsFinal               int     `json:"rows_final"`
	DuplicatesRemoved       int     `json:"duplicates_removed"`
	EmptyRowsRemoved        int     `json:"empty_rows_removed"`
	InvalidPhones           int     `json:"invalid_phones"`
	InvalidEmails           int     `json:"invalid_emails"`
	AvgQualityScore         float64 `json:"avg_quality_score"`
	FuzzyDuplicateClusters  int     `json:"fuzzy_duplicate_clusters"`
}

// BuildStats derives the run summary from the three snapshots plus the
// validity flags collected along the way. It never mutates its inputs;
// the fuzzy cluster count is left at zero for the caller to populate
// from deduplicator output.
func BuildStats(original []Row, afterDrop, final []*Record, phoneValid, emailValid []bool) Stats {
	stats := Stats{
		RowsOriginal:            len(original),
		RowsAfterDropDuplicates: len(afterDrop),
		RowsFinal:               len(final),
	}
	stats.DuplicatesRemoved = stats.RowsOriginal - stats.RowsAfterDropDuplicates
	stats.EmptyRowsRemoved = stats.RowsAfterDropDuplicates - stats.RowsFinal

	for _, valid := range phoneValid {
		if !valid {
			stats.InvalidPhones++
		}
	}
	for _, valid := range emailValid {
		if !valid {
			stats.InvalidEmails++
		}
	}

	if len(final) > 0 {
		total := 0
		for _, rec := range final {
			total += rec.QualityScore
		}
		stats.AvgQualityScore = float64(total) / float64(len(final))
	}

	return stats
}
