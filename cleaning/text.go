package cleaning

import (
	"regexp"
	"strings"
)

var (
	zeroWidthPattern = regexp.MustCompile(`[\x{200b}-\x{200f}\x{202a}-\x{202e}\x{feff}]`)
	controlPattern   = regexp.MustCompile(`[\x00-\x1f\x7f]|[\x{0080}-\x{009f}]`)
	digitPattern     = regexp.MustCompile(`\D`)
)

// CleanText normalizes a raw cell value: strips zero-width and control
// characters, collapses whitespace runs to a single space and trims the
// ends. It never fails; malformed input degrades to "".
func CleanText(value string) string {
	text := strings.TrimSpace(value)
	if text == "" {
		return ""
	}

	text = zeroWidthPattern.ReplaceAllString(text, "")
	text = controlPattern.ReplaceAllString(text, "")
	text = strings.Join(strings.Fields(text), " ")

	return text
}

// ExtractDigits keeps only the numeric digits of a string.
func ExtractDigits(value string) string {
	if value == "" {
		return ""
	}
	return digitPattern.ReplaceAllString(value, "")
}
