package validation

import (
	"net"
	"regexp"
	"strings"
	"unicode"
)

// Validation rule parameters
var (
	// NamePattern allows latin letters, digits, whitespace and Arabic script
	NamePattern = `^[A-Za-z0-9\s\p{Arabic}]+$`

	// PasswordSymbols is the set of accepted special characters
	PasswordSymbols = "@$!%*?&#.,:;_-"

	PasswordMinLength = 8
	PasswordMaxLength = 64

	NameMaxLength     = 255
	EmailMaxLength    = 255
	RoleNameMaxLength = 20
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Name *regexp.Regexp
}{
	Name: regexp.MustCompile(NamePattern),
}

// Issue is a single field-level rule violation
type Issue struct {
	Field   string
	Message string
}

// Issues collects violations so every failing rule is reported in one pass
type Issues []Issue

// Add appends a violation
func (i *Issues) Add(field, message string) {
	*i = append(*i, Issue{Field: field, Message: message})
}

// ValidName checks the registration name rule: non-empty, bounded length,
// latin/digit/space/Arabic characters only.
func ValidName(name string) bool {
	if strings.TrimSpace(name) == "" || len(name) > NameMaxLength {
		return false
	}
	return CompiledPatterns.Name.MatchString(name)
}

// ValidPassword checks the password policy: 8-64 characters with at least
// one lowercase letter, one uppercase letter, one digit and one symbol from
// PasswordSymbols.
func ValidPassword(password string) bool {
	if len(password) < PasswordMinLength || len(password) > PasswordMaxLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(PasswordSymbols, r):
			hasSymbol = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol
}

// ValidateRegistration checks name, password and confirmation together and
// returns every violation found, not just the first.
func ValidateRegistration(name, password, confirmation string) Issues {
	var issues Issues

	if !ValidName(name) {
		issues.Add("name", "name may only contain letters, digits, spaces and Arabic script, up to 255 characters")
	}

	if !ValidPassword(password) {
		issues.Add("password", "password must be 8-64 characters and contain a lowercase letter, an uppercase letter, a digit and a symbol")
	}

	if password != confirmation {
		issues.Add("password_confirmation", "password confirmation does not match")
	}

	return issues
}

// HasMXRecord reports whether the domain of an email address publishes an MX
// record. Resolution errors count as a missing record.
func HasMXRecord(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	records, err := net.LookupMX(email[at+1:])
	return err == nil && len(records) > 0
}
