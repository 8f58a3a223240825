// Package quality computes per-record quality scores for cleaned
// contact data.
package quality

import (
	"strings"
	"unicode/utf8"
)

// Score weights. The factors are independent and additive, so the
// maximum total is exactly 100.
const (
	phonePoints    = 30
	emailPoints    = 30
	namePoints     = 20
	companyPoints  = 10
	jobTitlePoints = 5
	cityPoints     = 5
)

// Factors are the per-record signals that feed the quality score.
type Factors struct {
	PhoneValid bool
	EmailValid bool
	Name       string
	Company    string
	JobTitle   string
	City       string
}

// Score computes the 0-100 completeness/validity score of one contact:
// valid phone +30, valid email +30, name of at least minNameLen runes
// +20, non-empty company +10, non-empty job title +5, non-empty city
// +5. No partial credit and no interaction between factors.
func Score(f Factors, minNameLen int) int {
	score := 0

	if f.PhoneValid {
		score += phonePoints
	}
	if f.EmailValid {
		score += emailPoints
	}
	if utf8.RuneCountInString(strings.TrimSpace(f.Name)) >= minNameLen {
		score += namePoints
	}
	if strings.TrimSpace(f.Company) != "" {
		score += companyPoints
	}
	if strings.TrimSpace(f.JobTitle) != "" {
		score += jobTitlePoints
	}
	if strings.TrimSpace(f.City) != "" {
		score += cityPoints
	}

	return score
}
