package parser

import "strings"

// keychainLabel prefixes the secret in some versions of security(1).
const keychainLabel = "password:"

// KeychainSecret extracts the secret from `security find-generic-password -w`
// output. Depending on the macOS version the secret is printed bare or as
// `password: "<value>"`. The optional label, surrounding whitespace and one
// pair of quotes are removed. An empty result means no usable secret.
func KeychainSecret(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, keychainLabel) {
			return StripQuotes(strings.TrimPrefix(trimmed, keychainLabel))
		}
	}
	return StripQuotes(text)
}
