package cleaning

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone parses a raw phone number against the default region
// and returns it in E.164 format. When the library cannot parse the
// input at all, a region-specific digit-pattern fallback is applied
// (currently for Saudi mobile numbers). The second return value reports
// validity; an invalid number always normalizes to "".
func NormalizePhone(phone, defaultRegion string) (string, bool) {
	phone = CleanText(phone)
	if phone == "" {
		return "", false
	}

	parsed, err := phonenumbers.Parse(phone, defaultRegion)
	if err == nil {
		if !phonenumbers.IsValidNumber(parsed) {
			return "", false
		}
		return phonenumbers.Format(parsed, phonenumbers.E164), true
	}

	return fallbackPhone(phone, defaultRegion)
}

// fallbackPhone rescues numbers the parser rejects outright. Saudi
// mobiles commonly arrive as a bare 9-digit number starting with 5, or
// a 10-digit number starting with 05; both rewrite to the +966 form.
func fallbackPhone(phone, defaultRegion string) (string, bool) {
	if defaultRegion != "SA" {
		return "", false
	}

	digits := ExtractDigits(phone)
	switch {
	case len(digits) == 9 && digits[0] == '5':
		return "+966" + digits, true
	case len(digits) == 10 && strings.HasPrefix(digits, "05"):
		return "+966" + digits[1:], true
	}

	return "", false
}
