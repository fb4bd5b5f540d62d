package parser

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts raw command output or file content to a string.
// A UTF-8 byte order mark is dropped and UTF-16 input with a byte order
// mark is transcoded; anything else is passed through. CRLF line endings
// are normalized to LF.
func Decode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), b)
	if err != nil {
		out = b
	}
	return strings.ReplaceAll(string(out), "\r\n", "\n")
}
