package cleaning

import "fmt"

// Settings holds the per-run cleaning configuration. A Settings value is
// immutable for the duration of one pipeline invocation, so multiple
// configurations (e.g. per-tenant) can run concurrently without
// interference.
type Settings struct {
	// DefaultCountryCode is the fallback region for phone parsing
	// (ISO 3166-1 alpha-2, e.g. "SA").
	DefaultCountryCode string

	// MinValidNameLen is the minimum rune length for a meaningful name.
	MinValidNameLen int

	// BadEmailDomains lists domains rejected outright even when the
	// address is syntactically valid (placeholder/disposable providers).
	BadEmailDomains []string

	// BadNamePatterns lists placeholder substrings (English and Arabic)
	// that disqualify a name, matched case-insensitively.
	BadNamePatterns []string

	// EnableFuzzyDedup turns the quadratic fuzzy name pass on or off.
	EnableFuzzyDedup bool

	// FuzzyNameThreshold is the 0-100 minimum similarity ratio for two
	// names to be considered duplicates.
	FuzzyNameThreshold int
}

// DefaultSettings returns the stock configuration for Saudi-market data.
func DefaultSettings() Settings {
	return Settings{
		DefaultCountryCode: "SA",
		MinValidNameLen:    3,
		BadEmailDomains: []string{
			"example.com",
			"test.com",
			"mail.com",
			"temp-mail.com",
			"tempmail.com",
			"10minutemail.com",
		},
		BadNamePatterns: []string{
			"na", "n/a", "test", "dummy", "unknown", "none", "null",
			"غير معروف", "بدون", "لا يوجد", "مجهول", "تست", "تجربة",
		},
		EnableFuzzyDedup:   true,
		FuzzyNameThreshold: 90,
	}
}

// Validate checks every option against its valid domain. It returns an
// error wrapping ErrInvalidConfig so callers can distinguish bad
// configuration from bad input shape.
func (s Settings) Validate() error {
	if len(s.DefaultCountryCode) != 2 {
		return fmt.Errorf("%w: default country code %q must be a two-letter ISO code", ErrInvalidConfig, s.DefaultCountryCode)
	}
	if s.MinValidNameLen < 1 {
		return fmt.Errorf("%w: minimum valid name length %d must be at least 1", ErrInvalidConfig, s.MinValidNameLen)
	}
	if s.FuzzyNameThreshold < 0 || s.FuzzyNameThreshold > 100 {
		return fmt.Errorf("%w: fuzzy name threshold %d must be between 0 and 100", ErrInvalidConfig, s.FuzzyNameThreshold)
	}
	return nil
}
