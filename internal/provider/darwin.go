package provider

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/wifikey/internal/command"
	"github.com/nao1215/wifikey/internal/model"
	"github.com/nao1215/wifikey/internal/parser"
)

const (
	networksetup = "/usr/sbin/networksetup"
	security     = "/usr/bin/security"

	// airportKind is the keychain item kind of saved Wi-Fi passwords.
	airportKind = "AirPort network password"

	// errSecItemNotFound is the exit status of security(1) when no
	// keychain item matches.
	errSecItemNotFound = 44
)

// MacOS lists preferred networks with networksetup and reads passwords
// from the keychain with security(1).
type MacOS struct {
	runner command.Runner
	logger *slog.Logger
}

func newMacOS(o *options) *MacOS {
	return &MacOS{runner: o.runner, logger: o.logger}
}

// Platform implements Provider.
func (m *MacOS) Platform() model.Platform {
	return model.PlatformMacOS
}

// SupportsManualEntry implements Provider.
func (m *MacOS) SupportsManualEntry() bool {
	return true
}

// HardwarePort is one entry of `networksetup -listallhardwareports`.
type HardwarePort struct {
	Name   string
	Device string
}

// ParseHardwarePorts pairs each "Hardware Port:" line with the "Device:"
// line that follows it.
func ParseHardwarePorts(text string) []HardwarePort {
	var (
		ports   []HardwarePort
		current string
	)
	for _, line := range strings.Split(text, "\n") {
		if name, ok := parser.ParseLabelLine(line, "Hardware Port"); ok {
			current = name
			continue
		}
		if dev, ok := parser.ParseLabelLine(line, "Device"); ok && current != "" {
			ports = append(ports, HardwarePort{Name: current, Device: dev})
			current = ""
		}
	}
	return ports
}

// WirelessDevice returns the device of the first Wi-Fi or AirPort port.
func WirelessDevice(ports []HardwarePort) (string, bool) {
	for _, p := range ports {
		name := strings.ToLower(p.Name)
		if strings.HasPrefix(name, "wi") || strings.Contains(name, "airport") {
			return p.Device, true
		}
	}
	return "", false
}

// Enumerate finds the wireless device and lists its preferred networks.
// The first line of the listing is a header and is dropped.
func (m *MacOS) Enumerate(ctx context.Context) ([]model.Profile, error) {
	res, err := m.runner.Run(ctx, networksetup, "-listallhardwareports")
	if isAbort(err) {
		return nil, err
	}
	if err != nil || !res.Success() {
		m.logger.Debug("hardware port listing failed", "error", err)
		return nil, ErrNoWirelessDevice
	}

	device, ok := WirelessDevice(ParseHardwarePorts(res.Stdout))
	if !ok {
		return nil, ErrNoWirelessDevice
	}
	m.logger.Debug("wireless device found", "device", device)

	res, err = m.runner.Run(ctx, networksetup, "-listpreferredwirelessnetworks", device)
	if isAbort(err) {
		return nil, err
	}
	if err != nil || !res.Success() {
		return nil, fmt.Errorf("%w: failed to list preferred networks on %s", ErrNoWirelessDevice, device)
	}

	lines := strings.Split(res.Stdout, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	profiles := make([]model.Profile, 0, len(lines))
	for _, line := range lines {
		if name := strings.TrimSpace(line); name != "" {
			profiles = append(profiles, model.NewProfile(name))
		}
	}
	return profiles, nil
}

// Retrieve asks the keychain for the AirPort password of the profile.
//
// Depending on the macOS version, security(1) prints the secret on stdout
// or on stderr. Stdout is used when it is non-empty, stderr otherwise.
func (m *MacOS) Retrieve(ctx context.Context, profile model.Profile) (model.Result, error) {
	res, err := m.runner.Run(ctx, security,
		"find-generic-password", "-D", airportKind, "-a", profile.Name, "-gw")
	if err == nil && res.ExitCode == errSecItemNotFound {
		return model.NotFound("no keychain item for network"), nil
	}
	if result, failed, abort := checkRun(res, err); failed {
		return result, abort
	}

	text := res.Stdout
	if strings.TrimSpace(text) == "" {
		text = res.Stderr
	}
	if secret := parser.KeychainSecret(text); secret != "" {
		return model.Found(secret), nil
	}
	return model.Denied("empty keychain response (locked keychain or prompt declined?)"), nil
}
