package provider

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nao1215/wifikey/internal/command"
	"github.com/nao1215/wifikey/internal/model"
	"github.com/nao1215/wifikey/internal/parser"
)

const (
	nmcli = "nmcli"

	propertyPSK     = "802-11-wireless-security.psk"
	propertyWEPKey0 = "802-11-wireless-security.wep-key0"

	sectionWiFiSecurity = "wifi-security"
)

// wirelessTypes are the nmcli connection types that denote Wi-Fi.
var wirelessTypes = map[string]bool{
	"802-11-wireless": true,
	"wifi":            true,
}

// Linux queries NetworkManager through nmcli and falls back to reading
// its keyfiles directly.
type Linux struct {
	runner command.Runner
	logger *slog.Logger
	dir    string

	// keyfiles holds the parsed keyfiles read during Enumerate, by path.
	keyfiles map[string]*parser.KeyFile
}

func newLinux(o *options) *Linux {
	return &Linux{
		runner:   o.runner,
		logger:   o.logger,
		dir:      o.connectionsDir,
		keyfiles: make(map[string]*parser.KeyFile),
	}
}

// Platform implements Provider.
func (l *Linux) Platform() model.Platform {
	return model.PlatformLinux
}

// SupportsManualEntry implements Provider.
func (l *Linux) SupportsManualEntry() bool {
	return false
}

// Enumerate lists Wi-Fi connections with nmcli. When nmcli is unavailable,
// fails or lists nothing, the keyfile directory is read instead.
func (l *Linux) Enumerate(ctx context.Context) ([]model.Profile, error) {
	profiles, err := l.enumerateNmcli(ctx)
	if isAbort(err) {
		return nil, err
	}
	if len(profiles) > 0 {
		return profiles, nil
	}
	l.logger.Debug("nmcli listed no wireless connections, reading keyfiles",
		"dir", l.dir,
		"error", err,
	)

	profiles = l.enumerateKeyFiles()
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: try running with sudo", ErrNoConnections)
	}
	return profiles, nil
}

// enumerateNmcli runs `nmcli -t -f NAME,TYPE connection show`.
func (l *Linux) enumerateNmcli(ctx context.Context) ([]model.Profile, error) {
	res, err := l.runner.Run(ctx, nmcli, "-t", "-f", "NAME,TYPE", "connection", "show")
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		return nil, fmt.Errorf("%w: nmcli exit status %d", ErrListingFailed, res.ExitCode)
	}

	var profiles []model.Profile
	for _, line := range strings.Split(res.Stdout, "\n") {
		fields := parser.SplitTerse(line)
		if len(fields) < 2 {
			continue
		}
		name := strings.TrimSpace(fields[0])
		typ := strings.TrimSpace(fields[len(fields)-1])
		if name != "" && wirelessTypes[typ] {
			profiles = append(profiles, model.NewProfile(name))
		}
	}
	return profiles, nil
}

// enumerateKeyFiles reads every file in the connections directory. A file
// that cannot be read is skipped; a file without an ssid key is ignored.
func (l *Linux) enumerateKeyFiles() []model.Profile {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		l.logger.Debug("cannot read connections directory", "dir", l.dir, "error", err)
		return nil
	}

	var profiles []model.Profile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(l.dir, entry.Name())
		data, err := os.ReadFile(path) //nolint:gosec // path comes from the configured connections directory
		if err != nil {
			l.logger.Debug("skipping unreadable keyfile", "path", path, "error", err)
			continue
		}

		kf := parser.ParseKeyFile(parser.Decode(data))
		ssid, ok := kf.Lookup("ssid")
		if !ok || ssid == "" {
			continue
		}
		l.keyfiles[path] = kf
		profiles = append(profiles, model.Profile{Name: DecodeSSID(ssid), Source: path})
	}
	return profiles
}

// Retrieve returns the pre-shared key of the profile. Keyfile profiles are
// answered from the text already read; other profiles are queried through
// nmcli.
func (l *Linux) Retrieve(ctx context.Context, profile model.Profile) (model.Result, error) {
	if profile.FromFile() {
		return l.retrieveKeyFile(profile), nil
	}

	psk, result, failed, err := l.property(ctx, profile.Name, propertyPSK)
	if failed {
		return result, err
	}
	if psk != "" {
		return model.Found(psk), nil
	}

	// WEP networks keep their key in a different property.
	wep, result, failed, err := l.property(ctx, profile.Name, propertyWEPKey0)
	if failed {
		return result, err
	}
	if wep != "" {
		return model.Found(wep), nil
	}
	return model.NotFound("no secret stored (or hidden without sudo)"), nil
}

// property runs `nmcli -s -g <property> connection show <name>`.
func (l *Linux) property(ctx context.Context, name, property string) (string, model.Result, bool, error) {
	res, err := l.runner.Run(ctx, nmcli, "-s", "-g", property, "connection", "show", name)
	if result, failed, abort := checkRun(res, err); failed {
		return "", result, true, abort
	}
	value := strings.TrimRight(res.Stdout, "\r\n")
	if value == "" {
		return "", model.Result{}, false, nil
	}
	return strings.Join(parser.SplitTerse(value), ":"), model.Result{}, false, nil
}

// retrieveKeyFile reads psk from the [wifi-security] section of the keyfile.
func (l *Linux) retrieveKeyFile(profile model.Profile) model.Result {
	kf, ok := l.keyfiles[profile.Source]
	if !ok {
		return model.NotFound("keyfile was not read")
	}
	if psk, ok := kf.SectionValue(sectionWiFiSecurity, "psk"); ok && psk != "" {
		return model.Found(psk)
	}
	return model.NotFound("no psk in [wifi-security] section")
}

// DecodeSSID converts the byte-list form NetworkManager uses for SSIDs that
// are not valid text ("72;111;109;101;") back to a string. Other values
// are returned unchanged.
func DecodeSSID(ssid string) string {
	if !strings.HasSuffix(ssid, ";") {
		return ssid
	}
	parts := strings.Split(strings.TrimSuffix(ssid, ";"), ";")
	buf := make([]byte, 0, len(parts))
	for _, p := range parts {
		b, err := strconv.Atoi(p)
		if err != nil || b < 0 || b > 255 || strconv.Itoa(b) != p {
			return ssid
		}
		buf = append(buf, byte(b))
	}
	return string(buf)
}
