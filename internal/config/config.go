package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/wifikey/internal/provider"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "wifikey"

	// DefaultTimeout bounds each external command. Keychain prompts on
	// macOS wait for the operator, so it is not kept very short.
	DefaultTimeout = 20 * time.Second

	// DefaultConnectionsDir is where NetworkManager keeps system keyfiles.
	DefaultConnectionsDir = provider.DefaultConnectionsDir

	// DefaultProfileLabel and DefaultKeyLabel are the English netsh labels.
	DefaultProfileLabel = provider.DefaultProfileLabel
	DefaultKeyLabel     = provider.DefaultKeyLabel
)

// Config holds all options of a run. It is built once from defaults, the
// config file and flags, and passed down explicitly.
type Config struct {
	// Timeout bounds every external command. A command that exceeds it is
	// killed and the affected profile is reported as denied.
	Timeout time.Duration

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the path given with --config. When empty the
	// file is searched for (see FindConfigFile).
	ConfigFilePath string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile, when set, receives the report instead of stdout. The
	// file is created with 0600 permissions since it contains keys.
	ReportFile string

	// ConnectionsDir is the keyfile directory read by the Linux fallback.
	ConnectionsDir string

	// Interactive allows the manual SSID prompt when enumeration finds
	// nothing. It is still suppressed when stdin is not a terminal.
	Interactive bool

	// Color enables colored text output.
	Color bool

	// ProfileLabel and KeyLabel override the netsh labels.
	ProfileLabel string
	KeyLabel     string
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		Timeout:        DefaultTimeout,
		ConnectionsDir: DefaultConnectionsDir,
		Interactive:    true,
		ProfileLabel:   DefaultProfileLabel,
		KeyLabel:       DefaultKeyLabel,
	}
}

// XDGConfigDir returns the XDG config directory for wifikey.
// On Linux: ~/.config/wifikey
// On macOS: ~/Library/Application Support/wifikey
// On Windows: %APPDATA%\wifikey
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the config file path inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.ConnectionsDir == "" {
		return ErrEmptyConnectionsDir
	}
	if c.ProfileLabel == "" || c.KeyLabel == "" {
		return ErrEmptyLabel
	}
	return nil
}
