package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/wifikey/internal/model"
)

// MarkdownWriter outputs reports as GitHub-flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write implements Writer.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeEntries(md, report)
	w.writeDiagnostics(md, report)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Wi-Fi Credentials")
	md.PlainText("")

	rows := [][]string{
		{"Detected OS", escapeCell(report.Host)},
		{"Platform", report.Platform.String()},
		{"Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
		{"Recovered", strconv.Itoa(report.Count(model.OutcomeFound)) + " / " + strconv.Itoa(report.Len())},
	}
	if report.ManualEntry {
		rows = append(rows, []string{"Source", "entered manually"})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeEntries(md *markdown.Markdown, report *model.Report) {
	md.H2("Networks")
	md.PlainText("")

	if report.Len() == 0 {
		md.PlainText("No saved Wi-Fi networks found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, report.Len())
	for _, e := range report.Entries {
		secret := Secret(e.Result)
		if e.Result.IsFound() {
			secret = "`" + escapeCell(secret) + "`"
		}
		rows = append(rows, []string{escapeCell(e.Profile.Name), secret, e.Result.Outcome.String()})
	}
	md.Table(markdown.TableSet{
		Header: []string{"SSID", "Password", "Status"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.Count(model.OutcomeFound) > 0 {
		md.Warningf("This document contains %d clear-text network keys.", report.Count(model.OutcomeFound))
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeDiagnostics(md *markdown.Markdown, report *model.Report) {
	if len(report.Diagnostics) == 0 {
		return
	}
	md.H2("Hints")
	md.PlainText("")
	md.BulletList(report.Diagnostics...)
	md.PlainText("")
}

// escapeCell keeps table cells on one line and escapes column separators.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
