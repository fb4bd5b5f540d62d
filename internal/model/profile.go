package model

// Profile is a saved wireless network profile (NetworkIdentifier).
// Name is usually the SSID, but some providers list connection names
// instead. Profiles are never deduplicated: two profiles with the same
// Name are distinct entries in the report.
type Profile struct {
	// Name identifies the profile to the operator and to the OS tools.
	Name string `json:"name"`

	// Source is the path of the configuration file the profile was read
	// from. It is empty when the profile came from an OS command.
	Source string `json:"source,omitempty"`
}

// NewProfile returns a profile discovered through an OS command.
func NewProfile(name string) Profile {
	return Profile{Name: name}
}

// FromFile reports whether the profile was read from a configuration file.
func (p Profile) FromFile() bool {
	return p.Source != ""
}
