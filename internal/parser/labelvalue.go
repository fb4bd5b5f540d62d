package parser

import (
	"strings"
)

// LabelValue returns the value of the first line of text that carries the
// given label, in the form "<label> <whitespace> : <value>".
// The value is cleaned with StripQuotes. Lines with an empty value do not
// match.
func LabelValue(text, label string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if v, ok := ParseLabelLine(line, label); ok {
			return v, true
		}
	}
	return "", false
}

// LabelValues returns the values of every line that carries the label,
// in order of appearance. Duplicates are kept.
func LabelValues(text, label string) []string {
	var values []string
	for _, line := range strings.Split(text, "\n") {
		if v, ok := ParseLabelLine(line, label); ok {
			values = append(values, v)
		}
	}
	return values
}

// ParseLabelLine extracts the value from a single "<label> : <value>" line.
// The label is matched literally and may be preceded by other text such as
// indentation. Whitespace between the label and the colon is skipped.
func ParseLabelLine(line, label string) (string, bool) {
	if label == "" {
		return "", false
	}
	line = strings.TrimRight(line, "\r")

	idx := strings.Index(line, label)
	for idx >= 0 {
		rest := strings.TrimLeft(line[idx+len(label):], " \t")
		if strings.HasPrefix(rest, ":") {
			value := StripQuotes(rest[1:])
			if value == "" {
				return "", false
			}
			return value, true
		}
		next := strings.Index(line[idx+1:], label)
		if next < 0 {
			break
		}
		idx += next + 1
	}
	return "", false
}
