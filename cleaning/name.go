package cleaning

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName cleans a person name and title-cases every pure-ASCII
// token. Non-ASCII tokens (Arabic names in particular) are left exactly
// as cleaned, since title casing has no meaning outside the Latin
// script.
func NormalizeName(name string) string {
	name = CleanText(name)
	if name == "" {
		return ""
	}

	// A Caser carries internal state, so it cannot be shared between
	// goroutines; one per call keeps NormalizeName pure.
	titleCaser := cases.Title(language.English)

	parts := strings.Fields(name)
	for i, part := range parts {
		if isASCII(part) {
			parts[i] = titleCaser.String(part)
		}
	}

	return strings.Join(parts, " ")
}

// IsGoodName reports whether a name is long enough and free of
// placeholder substrings ("test", "n/a", their Arabic equivalents and
// so on). The check is case-insensitive and rune-based.
func IsGoodName(name string, settings Settings) bool {
	name = strings.ToLower(strings.TrimSpace(name))

	if utf8.RuneCountInString(name) < settings.MinValidNameLen {
		return false
	}

	for _, pattern := range settings.BadNamePatterns {
		if strings.Contains(name, pattern) {
			return false
		}
	}

	return true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
