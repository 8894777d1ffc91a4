package porkbun

import "strings"

// SplitDomain splits a fully qualified name into the root domain the API is
// addressed by (last two labels) and the subdomain part, empty for the apex.
// A trailing dot is ignored.
func SplitDomain(domain string) (root, sub string) {
	domain = strings.TrimSuffix(domain, ".")
	parts := strings.Split(domain, ".")
	if len(parts) <= 2 {
		return domain, ""
	}
	root = strings.Join(parts[len(parts)-2:], ".")
	sub = strings.Join(parts[:len(parts)-2], ".")
	return root, sub
}
