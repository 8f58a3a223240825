package cleaning

import "errors"

// Row is one raw uploaded table row: source column label -> cell value.
// Labels may mix Latin and Arabic words, case and separators; values are
// already stringified by the I/O layer.
type Row map[string]string

// NoGroup marks a record that belongs to no duplicate group.
const NoGroup = -1

// Record is a canonical contact record flowing through the pipeline.
// Position carries the original input order and is the tie-break
// authority when picking duplicate-group representatives.
type Record struct {
	Position int    `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	JobTitle string `json:"job_title"`
	City     string `json:"city"`
	Notes    string `json:"notes"`

	PhoneValid bool `json:"phone_valid"`
	EmailValid bool `json:"email_valid"`

	// Unmapped source columns are preserved but ignored by the pipeline.
	Extra map[string]string `json:"extra,omitempty"`

	IsDuplicate      bool   `json:"is_duplicate"`
	DuplicateGroupID int    `json:"duplicate_group_id"`
	DuplicateReason  string `json:"duplicate_reason"`

	QualityScore int `json:"quality_score"`
}

// Boundary failures reported once by the pipeline orchestrator.
var (
	// ErrInvalidInput means the input is not a usable table of string-keyed rows.
	ErrInvalidInput = errors.New("invalid input table")
	// ErrInvalidConfig means a configuration value is outside its valid domain.
	ErrInvalidConfig = errors.New("invalid cleaning configuration")
)
