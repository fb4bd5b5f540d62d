package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/nao1215/wifikey/internal/model"
)

// SimpleWriter outputs the human-readable terminal report:
//
//	Detected OS: ubuntu 24.04 (linux)
//
//	SSID: HomeNet
//	  Password: sunflower123
type SimpleWriter struct {
	baseWriter

	// verbose adds the reason behind each marker.
	verbose bool

	ssid     *color.Color
	found    *color.Color
	marker   *color.Color
	hint     *color.Color
	headline *color.Color
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose shows why a secret was not found or denied.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithColor enables or disables ANSI colors regardless of the terminal.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		for _, c := range w.colors() {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
// Colors are off unless WithColor(true) is given.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		ssid:       color.New(color.Bold),
		found:      color.New(color.FgGreen),
		marker:     color.New(color.FgYellow),
		hint:       color.New(color.FgCyan),
		headline:   color.New(color.Faint),
	}
	for _, c := range w.colors() {
		c.DisableColor()
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *SimpleWriter) colors() []*color.Color {
	return []*color.Color{w.ssid, w.found, w.marker, w.hint, w.headline}
}

// Write implements Writer.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeEntries(&sb, report)
	w.writeDiagnostics(&sb, report)

	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	host := report.Host
	if host == "" {
		host = report.Platform.String()
	}
	sb.WriteString(w.headline.Sprintf("Detected OS: %s", host))
	sb.WriteString("\n\n")
}

func (w *SimpleWriter) writeEntries(sb *strings.Builder, report *model.Report) {
	if report.Len() == 0 {
		sb.WriteString("No saved Wi-Fi networks found.\n")
		return
	}

	for _, e := range report.Entries {
		sb.WriteString("SSID: ")
		sb.WriteString(w.ssid.Sprint(e.Profile.Name))
		sb.WriteString("\n  Password: ")
		if e.Result.IsFound() {
			sb.WriteString(w.found.Sprint(e.Result.Secret))
		} else {
			sb.WriteString(w.marker.Sprint(Secret(e.Result)))
			if w.verbose && e.Result.Reason != "" {
				fmt.Fprintf(sb, " [%s]", e.Result.Reason)
			}
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(sb, "\n%d of %d saved networks recovered.\n",
		report.Count(model.OutcomeFound), report.Len())
}

func (w *SimpleWriter) writeDiagnostics(sb *strings.Builder, report *model.Report) {
	if len(report.Diagnostics) == 0 {
		return
	}
	sb.WriteString("\n")
	for _, d := range report.Diagnostics {
		sb.WriteString(w.hint.Sprint("Hint: " + d))
		sb.WriteString("\n")
	}
}
