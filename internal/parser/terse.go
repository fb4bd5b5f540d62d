package parser

import "strings"

// SplitTerse splits one line of `nmcli -t` output into its fields.
// nmcli separates fields with ':' and escapes literal ':' and '\' inside
// values with a backslash.
func SplitTerse(line string) []string {
	var (
		fields []string
		sb     strings.Builder
		escape bool
	)
	for _, r := range strings.TrimRight(line, "\r") {
		switch {
		case escape:
			sb.WriteRune(r)
			escape = false
		case r == '\\':
			escape = true
		case r == ':':
			fields = append(fields, sb.String())
			sb.Reset()
		default:
			sb.WriteRune(r)
		}
	}
	if escape {
		sb.WriteRune('\\')
	}
	return append(fields, sb.String())
}
