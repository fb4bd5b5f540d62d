package config

import "time"

// File is the structure of the YAML configuration file. Every field is
// optional; absent fields leave the current value untouched.
type File struct {
	// Timeout bounds each external command, e.g. "20s".
	Timeout *time.Duration `yaml:"timeout,omitempty"`

	// ConnectionsDir is the NetworkManager keyfile directory.
	ConnectionsDir string `yaml:"connections_dir,omitempty"`

	// Interactive enables the manual SSID prompt.
	Interactive *bool `yaml:"interactive,omitempty"`

	// Color enables colored text output.
	Color *bool `yaml:"color,omitempty"`

	// Windows holds netsh settings.
	Windows WindowsFile `yaml:"windows,omitempty"`
}

// WindowsFile holds the netsh labels for localized Windows installations.
type WindowsFile struct {
	ProfileLabel string `yaml:"profile_label,omitempty"`
	KeyLabel     string `yaml:"key_label,omitempty"`
}

// Apply copies the values set in the file into c. Fields for which
// overridden returns true are skipped; the CLI passes a function that
// reports flags given on the command line, so flags win over the file.
// A nil overridden applies every set field.
func (f *File) Apply(c *Config, overridden func(field string) bool) {
	if f == nil {
		return
	}
	if overridden == nil {
		overridden = func(string) bool { return false }
	}

	if f.Timeout != nil && !overridden(FieldTimeout) {
		c.Timeout = *f.Timeout
	}
	if f.ConnectionsDir != "" && !overridden(FieldConnectionsDir) {
		c.ConnectionsDir = f.ConnectionsDir
	}
	if f.Interactive != nil && !overridden(FieldInteractive) {
		c.Interactive = *f.Interactive
	}
	if f.Color != nil && !overridden(FieldColor) {
		c.Color = *f.Color
	}
	if f.Windows.ProfileLabel != "" {
		c.ProfileLabel = f.Windows.ProfileLabel
	}
	if f.Windows.KeyLabel != "" {
		c.KeyLabel = f.Windows.KeyLabel
	}
}

// Field names passed to the overridden callback of File.Apply. They match
// the CLI flag names.
const (
	FieldTimeout        = "timeout"
	FieldConnectionsDir = "connections-dir"
	FieldInteractive    = "no-prompt"
	FieldColor          = "color"
)
