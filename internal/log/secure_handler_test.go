package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSecureHandler_SanitizesSensitiveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		value    string
		wantMask bool
	}{
		{name: "psk is masked", key: "psk", value: "hunter2", wantMask: true},
		{name: "PSK uppercase is masked", key: "PSK", value: "hunter2", wantMask: true},
		{name: "key is masked", key: "key", value: "sunflower123", wantMask: true},
		{name: "key_content is masked", key: "key_content", value: "sunflower123", wantMask: true},
		{name: "wep_key0 is masked", key: "wep_key0", value: "0123456789", wantMask: true},
		{name: "password is masked", key: "password", value: "MyWiFiPass", wantMask: true},
		{name: "keyword in key is masked", key: "keychain_password", value: "MyWiFiPass", wantMask: true},
		{name: "secret is masked", key: "secret", value: "swordfish", wantMask: true},
		{name: "ssid is visible", key: "ssid", value: "HomeNet", wantMask: false},
		{name: "path is visible", key: "path", value: "/etc/NetworkManager/system-connections/Home", wantMask: false},
		{name: "device is visible", key: "device", value: "en1", wantMask: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewSecureLogger(&buf, true)
			logger.Info("test message", tt.key, tt.value)

			output := buf.String()
			if tt.wantMask {
				if strings.Contains(output, tt.value) {
					t.Errorf("expected value %q to be masked, got: %s", tt.value, output)
				}
				if !strings.Contains(output, MaskValue) {
					t.Errorf("expected mask value in output, got: %s", output)
				}
				return
			}
			if !strings.Contains(output, tt.value) {
				t.Errorf("expected value %q in output, got: %s", tt.value, output)
			}
		})
	}
}

func TestSecureHandler_SanitizesToolOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		wantMask bool
	}{
		{name: "netsh key content", value: "    Key Content            : sunflower123", wantMask: true},
		{name: "keychain stderr", value: `password: "MyWiFiPass"`, wantMask: true},
		{name: "keyfile psk line", value: "[wifi-security]\npsk=hunter2\n", wantMask: true},
		{name: "keyfile wep line", value: "wep-key0=0123456789", wantMask: true},
		{name: "nmcli property", value: "802-11-wireless-security.psk:hunter2", wantMask: true},
		{name: "netsh profile line", value: "    All User Profile     : HomeNet", wantMask: false},
		{name: "security key presence", value: "    Security key           : Present", wantMask: false},
		{name: "empty key content", value: "Key Content : ", wantMask: false},
		{name: "plain status", value: "ok", wantMask: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsSensitiveValue(tt.value); got != tt.wantMask {
				t.Errorf("IsSensitiveValue(%q) = %v, want %v", tt.value, got, tt.wantMask)
			}

			var buf bytes.Buffer
			logger := NewSecureJSONLogger(&buf, true)
			logger.Info("command output", "output", tt.value)

			if tt.wantMask && !strings.Contains(buf.String(), MaskValue) {
				t.Errorf("expected mask value in output, got: %s", buf.String())
			}
		})
	}
}

func TestSecureHandler_LogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		verbose    bool
		level      slog.Level
		shouldShow bool
	}{
		{name: "debug shown in verbose mode", verbose: true, level: slog.LevelDebug, shouldShow: true},
		{name: "debug hidden by default", verbose: false, level: slog.LevelDebug, shouldShow: false},
		{name: "info hidden by default", verbose: false, level: slog.LevelInfo, shouldShow: false},
		{name: "warn shown by default", verbose: false, level: slog.LevelWarn, shouldShow: true},
		{name: "error shown by default", verbose: false, level: slog.LevelError, shouldShow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewSecureLogger(&buf, tt.verbose)

			const msg = "test_unique_message_12345"
			logger.Log(t.Context(), tt.level, msg)

			has := strings.Contains(buf.String(), msg)
			if has != tt.shouldShow {
				t.Errorf("message shown = %v, want %v: %s", has, tt.shouldShow, buf.String())
			}
		})
	}
}

func TestSecureHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewSecureLogger(&buf, true)
	logger.With("psk", "hunter2").Info("test message")

	if strings.Contains(buf.String(), "hunter2") {
		t.Errorf("expected psk to be masked in WithAttrs, got: %s", buf.String())
	}
}

func TestSecureHandler_WithGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewSecureLogger(&buf, true)
	logger.WithGroup("profile").Info("retrieved", "ssid", "HomeNet", "password", "MyWiFiPass")

	output := buf.String()
	if !strings.Contains(output, "HomeNet") {
		t.Errorf("expected ssid to be visible, got: %s", output)
	}
	if strings.Contains(output, "MyWiFiPass") {
		t.Errorf("expected password to be masked, got: %s", output)
	}
}

func TestSecureHandler_NestedGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewSecureLogger(&buf, true)
	logger.Info("result", slog.Group("entry", slog.String("ssid", "Cafe"), slog.String("psk", "hunter2")))

	if strings.Contains(buf.String(), "hunter2") {
		t.Errorf("expected nested psk to be masked, got: %s", buf.String())
	}
}

func TestIsSensitiveKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key      string
		expected bool
	}{
		{"psk", true},
		{"wifi_psk", true},
		{"wep_key1", true},
		{"user_password", true},
		{"passphrase", true},
		{"ssid", false},
		{"profile", false},
		{"keyboard", false},
		{"keyfile", false},
		{"timeout", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			if got := IsSensitiveKey(tt.key); got != tt.expected {
				t.Errorf("IsSensitiveKey(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestNewSecureHandler_NilHandler(t *testing.T) {
	t.Parallel()

	if h := NewSecureHandler(nil); h.handler == nil {
		t.Error("expected default handler")
	}
}
