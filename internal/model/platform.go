package model

// Platform identifies the host operating system family.
// Exactly one provider implementation exists per supported platform.
type Platform int

const (
	// PlatformUnsupported is any host for which no provider exists.
	PlatformUnsupported Platform = iota
	// PlatformWindows is Microsoft Windows (netsh).
	PlatformWindows
	// PlatformMacOS is Apple macOS (networksetup and security).
	PlatformMacOS
	// PlatformLinux is Linux with NetworkManager (nmcli or keyfiles).
	PlatformLinux
)

// String returns the human-readable platform name.
func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "Windows"
	case PlatformMacOS:
		return "macOS"
	case PlatformLinux:
		return "Linux"
	case PlatformUnsupported:
		return "Unsupported"
	default:
		return "Unsupported"
	}
}

// IsSupported reports whether a provider exists for the platform.
func (p Platform) IsSupported() bool {
	switch p {
	case PlatformWindows, PlatformMacOS, PlatformLinux:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler so that JSON reports carry
// the platform name instead of its numeric value.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
