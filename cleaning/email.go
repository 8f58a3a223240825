package cleaning

import (
	"regexp"
	"strings"
)

// emailPattern accepts local@domain.tld with an alphabetic TLD of at
// least two characters. Deliberately simple: the deny-list, not the
// regex, is where placeholder filtering happens.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases and validates an email address. Addresses
// whose domain appears in the deny-list are rejected even when
// syntactically valid. An invalid email always normalizes to "".
func NormalizeEmail(email string, badDomains []string) (string, bool) {
	email = strings.ToLower(CleanText(email))
	if email == "" {
		return "", false
	}

	if !emailPattern.MatchString(email) {
		return "", false
	}

	domain := email[strings.LastIndex(email, "@")+1:]
	for _, bad := range badDomains {
		if domain == bad {
			return "", false
		}
	}

	return email, true
}
