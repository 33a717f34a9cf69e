package logger

import "strings"

// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	username, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***@***"
	}

	if username == "" {
		return "***@" + domain
	}

	// Keep only first character of username
	first := []rune(username)[0]
	return string(first) + "***@" + domain
}

// MaskProviderID keeps the last four characters of a provider subject
// Example: 0123456789 -> ******6789
func MaskProviderID(providerID string) string {
	runes := []rune(providerID)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}
