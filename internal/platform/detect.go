package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/nao1215/wifikey/internal/model"
	"github.com/shirou/gopsutil/v3/host"
)

// Info describes the detected host.
type Info struct {
	// Platform is the detected platform tag.
	Platform model.Platform
	// OS is the self-reported OS identity ("windows", "darwin", "linux"...).
	OS string
	// Description is a human-readable summary such as "ubuntu 24.04 (linux)".
	Description string
}

// HostInfoFunc returns the host identity. It exists so tests can replace
// the gopsutil query.
type HostInfoFunc func(ctx context.Context) (*host.InfoStat, error)

// Detector queries the host identity.
type Detector struct {
	hostInfo HostInfoFunc
}

// NewDetector returns a Detector backed by gopsutil.
func NewDetector() *Detector {
	return &Detector{hostInfo: host.InfoWithContext}
}

// NewDetectorWith returns a Detector using the given host query.
func NewDetectorWith(fn HostInfoFunc) *Detector {
	return &Detector{hostInfo: fn}
}

// Detect returns the host platform. If the host query fails, the OS the
// binary was built for is used instead. An unsupported OS yields
// ErrUnsupported together with the populated Info.
func (d *Detector) Detect(ctx context.Context) (Info, error) {
	info := Info{OS: runtime.GOOS}

	if d.hostInfo != nil {
		if stat, err := d.hostInfo(ctx); err == nil && stat != nil {
			if stat.OS != "" {
				info.OS = stat.OS
			}
			info.Description = describe(stat)
		}
	}
	if info.Description == "" {
		info.Description = info.OS
	}

	info.Platform = FromOSName(info.OS)
	if !info.Platform.IsSupported() {
		return info, fmt.Errorf("%w (detected %q)", ErrUnsupported, info.OS)
	}
	return info, nil
}

// Detect is a convenience wrapper around NewDetector().Detect.
func Detect(ctx context.Context) (Info, error) {
	return NewDetector().Detect(ctx)
}

// FromOSName maps an OS identity string to a platform tag.
// Both Go GOOS names and uname-style names are accepted.
func FromOSName(name string) model.Platform {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows", "windows_nt":
		return model.PlatformWindows
	case "darwin", "macos", "mac os x", "osx":
		return model.PlatformMacOS
	case "linux":
		return model.PlatformLinux
	default:
		return model.PlatformUnsupported
	}
}

// describe renders a short description from gopsutil host information.
func describe(stat *host.InfoStat) string {
	var parts []string
	if stat.Platform != "" {
		parts = append(parts, stat.Platform)
	}
	if stat.PlatformVersion != "" {
		parts = append(parts, stat.PlatformVersion)
	}
	if len(parts) == 0 {
		return stat.OS
	}
	desc := strings.Join(parts, " ")
	if stat.OS != "" {
		desc += " (" + stat.OS + ")"
	}
	return desc
}
