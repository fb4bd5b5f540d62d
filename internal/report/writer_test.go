package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/wifikey/internal/model"
)

// createTestReport creates a report with one entry per outcome.
func createTestReport() *model.Report {
	r := model.NewReport(model.PlatformWindows)
	r.Host = "Microsoft Windows 11 Pro (windows)"
	r.Add(model.NewProfile("HomeNet"), model.Found("sunflower123"))
	r.Add(model.NewProfile("OfficeNet"), model.NotFound("no key content"))
	r.Add(model.NewProfile("Locked"), model.Denied("exit status 1"))
	return r
}

func TestSecret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		result model.Result
		want   string
	}{
		{model.Found("pw"), "pw"},
		{model.NotFound(""), NotFoundMarker},
		{model.Denied("x"), DeniedMarker},
	}
	for _, tt := range tests {
		if got := Secret(tt.result); got != tt.want {
			t.Errorf("Secret(%v) = %q, want %q", tt.result.Outcome, got, tt.want)
		}
	}
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes one block per entry in order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		want := []string{
			"Detected OS: Microsoft Windows 11 Pro (windows)",
			"SSID: HomeNet\n  Password: sunflower123\n",
			"SSID: OfficeNet\n  Password: (not found)\n",
			"SSID: Locked\n  Password: (requires elevated privileges)\n",
			"1 of 3 saved networks recovered.",
		}
		last := -1
		for _, s := range want {
			idx := strings.Index(output, s)
			if idx < 0 {
				t.Fatalf("expected output to contain %q, got:\n%s", s, output)
			}
			if idx < last {
				t.Errorf("expected %q after previous block", s)
			}
			last = idx
		}
		if strings.Contains(output, "\x1b[") {
			t.Error("expected no ANSI escapes by default")
		}
	})

	t.Run("verbose shows reasons", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithVerbose(true)).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "[exit status 1]") {
			t.Errorf("expected reason in output, got:\n%s", buf.String())
		}
	})

	t.Run("color adds escapes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithColor(true)).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\x1b[") {
			t.Error("expected ANSI escapes")
		}
	})

	t.Run("empty report with diagnostics", func(t *testing.T) {
		t.Parallel()

		r := model.NewReport(model.PlatformLinux)
		r.AddDiagnostic("no NetworkManager connections found or permission denied: try running with sudo")

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "Detected OS: Linux") {
			t.Errorf("expected platform fallback header, got:\n%s", output)
		}
		if !strings.Contains(output, "No saved Wi-Fi networks found.") {
			t.Errorf("expected empty notice, got:\n%s", output)
		}
		if !strings.Contains(output, "Hint: no NetworkManager connections found") {
			t.Errorf("expected hint, got:\n%s", output)
		}
		if strings.Contains(output, "SSID:") {
			t.Error("expected no entries")
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint(), WithVersion("v1.0.0")).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var doc struct {
			Version  string `json:"version"`
			Platform string `json:"platform"`
			Found    int    `json:"found"`
			Entries  []struct {
				Profile struct {
					Name string `json:"name"`
				} `json:"profile"`
				Result struct {
					Outcome string `json:"outcome"`
					Secret  string `json:"secret"`
				} `json:"result"`
			} `json:"entries"`
		}
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
		}
		if doc.Version != "v1.0.0" || doc.Platform != "Windows" || doc.Found != 1 {
			t.Errorf("unexpected header %+v", doc)
		}
		if len(doc.Entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(doc.Entries))
		}
		if doc.Entries[0].Result.Secret != "sunflower123" || doc.Entries[0].Result.Outcome != "found" {
			t.Errorf("unexpected first entry %+v", doc.Entries[0])
		}
		if doc.Entries[2].Result.Outcome != "denied" || doc.Entries[2].Result.Secret != "" {
			t.Errorf("unexpected denied entry %+v", doc.Entries[2])
		}
	})

	t.Run("compact output is one line", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Errorf("expected single line, got:\n%s", buf.String())
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes table of networks", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, s := range []string{"# Wi-Fi Credentials", "## Networks", "HomeNet", "`sunflower123`", DeniedMarker, NotFoundMarker} {
			if !strings.Contains(output, s) {
				t.Errorf("expected output to contain %q, got:\n%s", s, output)
			}
		}
	})

	t.Run("escapes pipes in cells", func(t *testing.T) {
		t.Parallel()

		r := model.NewReport(model.PlatformLinux)
		r.Add(model.NewProfile("a|b"), model.Found("x|y"))

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `a\|b`) {
			t.Errorf("expected escaped pipe, got:\n%s", buf.String())
		}
	})

	t.Run("lists hints", func(t *testing.T) {
		t.Parallel()

		r := model.NewReport(model.PlatformMacOS)
		r.AddDiagnostic("could not detect preferred Wi-Fi networks automatically")

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "## Hints") {
			t.Errorf("expected hints section, got:\n%s", buf.String())
		}
	})
}

func TestSummaryWriter(t *testing.T) {
	t.Parallel()

	r := createTestReport()
	r.AddDiagnostic("try running with sudo")

	var buf bytes.Buffer
	if _, err := NewSummaryWriter(&buf).Write(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "1 of 3 saved networks recovered.\n" +
		"1 require elevated privileges.\n" +
		"Hint: try running with sudo\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	for _, secret := range []string{"sunflower123", "HomeNet"} {
		if strings.Contains(buf.String(), secret) {
			t.Errorf("summary leaked %q", secret)
		}
	}
}

// failingWriter is a Writer that always fails.
type failingWriter struct{}

func (failingWriter) Write(*model.Report) (int, error) {
	return 0, errors.New("write failed")
}

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		mw := NewMultiWriter(NewSimpleWriter(&a), NewJSONWriter(&b))
		if _, err := mw.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Len() == 0 || b.Len() == 0 {
			t.Error("expected both writers to receive output")
		}
	})

	t.Run("stops at first error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		mw := NewMultiWriter(failingWriter{}, NewSimpleWriter(&buf))
		if _, err := mw.Write(createTestReport()); err == nil {
			t.Error("expected error")
		}
		if buf.Len() != 0 {
			t.Error("expected later writer not to run")
		}
	})
}
