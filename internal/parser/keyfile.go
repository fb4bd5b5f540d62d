package parser

import (
	"strings"
)

// KeyValue is one "key = value" line of a keyfile.
type KeyValue struct {
	Key   string
	Value string
}

// Section is the text between a "[name]" marker and the next
// "["-prefixed marker (or the end of the file).
type Section struct {
	// Name is the text between the brackets. Keys that appear before the
	// first marker belong to a section with an empty name.
	Name string
	Keys []KeyValue
}

// Get returns the value of the first occurrence of key in the section.
func (s Section) Get(key string) (string, bool) {
	for _, kv := range s.Keys {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// KeyFile is a parsed NetworkManager-style keyfile.
type KeyFile struct {
	Sections []Section
}

// ParseKeyFile tokenizes text into sections of key/value pairs.
// Blank lines and lines starting with '#' or ';' are ignored, as are lines
// without '='. Values are cleaned with StripQuotes.
func ParseKeyFile(text string) *KeyFile {
	kf := &KeyFile{}
	current := -1

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "", strings.HasPrefix(line, "#"), strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, "["):
			name := strings.TrimPrefix(line, "[")
			if end := strings.Index(name, "]"); end >= 0 {
				name = name[:end]
			}
			kf.Sections = append(kf.Sections, Section{Name: strings.TrimSpace(name)})
			current = len(kf.Sections) - 1
		default:
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			if current < 0 {
				kf.Sections = append(kf.Sections, Section{})
				current = 0
			}
			kf.Sections[current].Keys = append(kf.Sections[current].Keys, KeyValue{
				Key:   strings.TrimSpace(key),
				Value: StripQuotes(value),
			})
		}
	}
	return kf
}

// Section returns the first section with the given name.
func (kf *KeyFile) Section(name string) (Section, bool) {
	for _, s := range kf.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// SectionValue returns key from the first section called name.
// A key of the same name in any other section is not considered.
func (kf *KeyFile) SectionValue(name, key string) (string, bool) {
	s, ok := kf.Section(name)
	if !ok {
		return "", false
	}
	return s.Get(key)
}

// Lookup returns the first occurrence of key in any section, in file order.
func (kf *KeyFile) Lookup(key string) (string, bool) {
	for _, s := range kf.Sections {
		if v, ok := s.Get(key); ok {
			return v, true
		}
	}
	return "", false
}
