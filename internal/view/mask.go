package view

import "strings"

// MaskEmail obscures the local part of an email for display, keeping its
// first and last characters and the full domain. Input without exactly one
// '@' or with an empty local part or domain is returned unchanged.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return email
	}

	runes := []rune(local)
	if len(runes) <= 2 {
		return string(runes[0]) + "*@" + domain
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1]) + "@" + domain
}
