package utils

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?[78]\d{10}$`)

// NormalizePhone cleans a client-supplied phone number and brings it to
// the +7XXXXXXXXXX form. Everything except digits and a leading plus is
// stripped first. Returns a field-scoped error when the cleaned value
// does not look like a mobile number with a 7 or 8 country code.
func NormalizePhone(field, value string) (string, error) {
	var b strings.Builder
	for i, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if !phonePattern.MatchString(cleaned) {
		return "", NewFieldError(field, "Enter a valid phone number in the +7XXXXXXXXXX format")
	}

	if strings.HasPrefix(cleaned, "8") {
		cleaned = "+7" + cleaned[1:]
	} else if !strings.HasPrefix(cleaned, "+") {
		cleaned = "+" + cleaned
	}

	return cleaned, nil
}
