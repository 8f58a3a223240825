package cleaning

import (
	"fmt"
	"log/slog"

	"datapurity/cleaning/algorithms"
)

// MarkDuplicates annotates records with duplicate flags in three
// passes: exact phone match, exact email match, then (when enabled)
// fuzzy name match over the still-unmarked remainder. Records are
// mutated in place and never removed here; DropHardDuplicates does the
// removal. The return value is the number of fuzzy duplicate clusters
// created.
//
// A single marked-set accumulates across passes, so a record claimed by
// the phone pass is never reconsidered by the email or fuzzy pass. This
// also means two exact duplicates of each other are never
// fuzzy-compared, even when their names would match.
func MarkDuplicates(records []*Record, settings Settings) int {
	logger := slog.Default().With("component", "deduplicator")

	marked := make(map[int]bool, len(records))
	groupCounter := 0

	phoneMarked := markExactGroups(records, marked, &groupCounter, "phone", func(r *Record) string { return r.Phone })
	logger.Info("Exact phone pass completed", "duplicates", phoneMarked)

	emailMarked := markExactGroups(records, marked, &groupCounter, "email", func(r *Record) string { return r.Email })
	logger.Info("Exact email pass completed", "duplicates", emailMarked)

	fuzzyClusters := 0
	if settings.EnableFuzzyDedup {
		var fuzzyMarked int
		fuzzyClusters, fuzzyMarked = markFuzzyNames(records, marked, &groupCounter, settings)
		logger.Info("Fuzzy name pass completed", "duplicates", fuzzyMarked, "clusters", fuzzyClusters)
	}

	logger.Info("Duplicate marking completed", "total_marked", len(marked))
	return fuzzyClusters
}

// markExactGroups groups records by a non-empty key field and marks
// every group member after the first (in original input order) as a
// duplicate. Groups are visited in order of first occurrence so the
// assignment of group ids is reproducible.
func markExactGroups(records []*Record, marked map[int]bool, groupCounter *int, reason string, key func(*Record) string) int {
	var order []string
	groups := make(map[string][]int)

	for i, rec := range records {
		k := key(rec)
		if k == "" {
			continue
		}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}

	markedCount := 0
	for _, k := range order {
		members := groups[k]
		if len(members) < 2 {
			continue
		}

		for _, idx := range members[1:] {
			if marked[idx] {
				continue
			}
			records[idx].IsDuplicate = true
			records[idx].DuplicateGroupID = *groupCounter
			records[idx].DuplicateReason = fmt.Sprintf("%s:%s", reason, k)
			marked[idx] = true
			markedCount++
		}

		// The representative keeps is_duplicate=false but still carries
		// the group id, unless an earlier pass already claimed it.
		rep := records[members[0]]
		if rep.DuplicateGroupID == NoGroup {
			rep.DuplicateGroupID = *groupCounter
		}

		*groupCounter++
	}

	return markedCount
}

// markFuzzyNames compares every unordered pair of unmarked records
// whose name passes the quality gate. When the similarity ratio meets
// the threshold, the later record joins the earlier record's group (a
// fresh group when the earlier record has none). Quadratic in the
// number of eligible records; callers with very large batches disable
// this pass via configuration.
func markFuzzyNames(records []*Record, marked map[int]bool, groupCounter *int, settings Settings) (clusters, markedCount int) {
	var candidates []int
	for i, rec := range records {
		if !marked[i] && IsGoodName(rec.Name, settings) {
			candidates = append(candidates, i)
		}
	}

	for ci := 0; ci < len(candidates); ci++ {
		i := candidates[ci]
		if marked[i] {
			continue
		}

		for cj := ci + 1; cj < len(candidates); cj++ {
			j := candidates[cj]
			if marked[j] {
				continue
			}

			similarity := algorithms.Ratio(records[i].Name, records[j].Name)
			if similarity < settings.FuzzyNameThreshold {
				continue
			}

			if records[i].DuplicateGroupID == NoGroup {
				records[i].DuplicateGroupID = *groupCounter
				*groupCounter++
				clusters++
			}

			records[j].IsDuplicate = true
			records[j].DuplicateGroupID = records[i].DuplicateGroupID
			records[j].DuplicateReason = fmt.Sprintf("fuzzy_name:%d%%", similarity)
			marked[j] = true
			markedCount++
		}
	}

	return clusters, markedCount
}

// DropHardDuplicates removes every record flagged as a duplicate,
// returning the surviving records and the number removed. The input
// slice is not modified.
func DropHardDuplicates(records []*Record) ([]*Record, int) {
	survivors := make([]*Record, 0, len(records))
	for _, rec := range records {
		if !rec.IsDuplicate {
			survivors = append(survivors, rec)
		}
	}
	return survivors, len(records) - len(survivors)
}
