package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/wifikey/internal/model"
)

// SummaryWriter prints outcome counts and hints. It never prints a
// profile name or a secret, so it is safe next to a report file.
type SummaryWriter struct {
	baseWriter
}

// NewSummaryWriter creates a SummaryWriter that outputs to the given writer.
func NewSummaryWriter(output io.Writer) *SummaryWriter {
	return &SummaryWriter{baseWriter: newBaseWriter(output)}
}

// Write implements Writer.
func (w *SummaryWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%d of %d saved networks recovered.\n",
		report.Count(model.OutcomeFound), report.Len())
	if denied := report.Count(model.OutcomeDenied); denied > 0 {
		fmt.Fprintf(&sb, "%d require elevated privileges.\n", denied)
	}
	for _, d := range report.Diagnostics {
		sb.WriteString("Hint: " + d + "\n")
	}

	return io.WriteString(w.output, sb.String())
}
