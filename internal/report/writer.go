package report

import (
	"io"

	"github.com/nao1215/wifikey/internal/model"
)

// Markers printed in place of a secret.
const (
	// NotFoundMarker is shown when no secret is stored for the profile.
	NotFoundMarker = "(not found)"

	// DeniedMarker is shown when the OS refused access or timed out.
	DeniedMarker = "(requires elevated privileges)"
)

// Writer renders a report.
type Writer interface {
	// Write outputs the report and returns the number of bytes written.
	Write(report *model.Report) (int, error)
}

// MultiWriter writes the same report to several Writers in order and
// stops at the first error.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write implements Writer.
func (m *MultiWriter) Write(report *model.Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Secret returns the text displayed for a result: the secret itself or
// the marker for its outcome.
func Secret(r model.Result) string {
	switch r.Outcome {
	case model.OutcomeFound:
		return r.Secret
	case model.OutcomeDenied:
		return DeniedMarker
	default:
		return NotFoundMarker
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
