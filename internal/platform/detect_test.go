package platform

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/nao1215/wifikey/internal/model"
	"github.com/shirou/gopsutil/v3/host"
)

func TestFromOSName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want model.Platform
	}{
		{name: "windows", want: model.PlatformWindows},
		{name: "Windows_NT", want: model.PlatformWindows},
		{name: "darwin", want: model.PlatformMacOS},
		{name: "Darwin", want: model.PlatformMacOS},
		{name: "linux", want: model.PlatformLinux},
		{name: " Linux ", want: model.PlatformLinux},
		{name: "freebsd", want: model.PlatformUnsupported},
		{name: "plan9", want: model.PlatformUnsupported},
		{name: "", want: model.PlatformUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FromOSName(tt.name); got != tt.want {
				t.Errorf("FromOSName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDetectorDetect(t *testing.T) {
	t.Parallel()

	t.Run("uses host identity", func(t *testing.T) {
		t.Parallel()
		d := NewDetectorWith(func(context.Context) (*host.InfoStat, error) {
			return &host.InfoStat{OS: "darwin", Platform: "darwin", PlatformVersion: "14.5"}, nil
		})

		info, err := d.Detect(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.Platform != model.PlatformMacOS {
			t.Errorf("expected macOS, got %v", info.Platform)
		}
		if info.Description != "darwin 14.5 (darwin)" {
			t.Errorf("unexpected description %q", info.Description)
		}
	})

	t.Run("unsupported host returns ErrUnsupported", func(t *testing.T) {
		t.Parallel()
		d := NewDetectorWith(func(context.Context) (*host.InfoStat, error) {
			return &host.InfoStat{OS: "freebsd"}, nil
		})

		info, err := d.Detect(context.Background())
		if !errors.Is(err, ErrUnsupported) {
			t.Fatalf("expected ErrUnsupported, got %v", err)
		}
		if info.Platform != model.PlatformUnsupported {
			t.Errorf("expected unsupported, got %v", info.Platform)
		}
		if info.OS != "freebsd" {
			t.Errorf("expected OS freebsd, got %q", info.OS)
		}
	})

	t.Run("falls back to build OS when host query fails", func(t *testing.T) {
		t.Parallel()
		d := NewDetectorWith(func(context.Context) (*host.InfoStat, error) {
			return nil, errors.New("boom")
		})

		info, _ := d.Detect(context.Background())
		if info.OS != runtime.GOOS {
			t.Errorf("expected %q, got %q", runtime.GOOS, info.OS)
		}
		if info.Platform != FromOSName(runtime.GOOS) {
			t.Errorf("expected %v, got %v", FromOSName(runtime.GOOS), info.Platform)
		}
	})
}
