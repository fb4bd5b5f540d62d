package parser

import "strings"

// StripQuotes trims surrounding whitespace and then removes at most one
// pair of enclosing double quotes. Inner quotes and whitespace inside the
// quotes are preserved, so `""abc""` becomes `"abc"`.
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
