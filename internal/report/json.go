package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/wifikey/internal/model"
)

// JSONWriter outputs reports in JSON format for scripts.
type JSONWriter struct {
	baseWriter

	indentPrefix string
	indentString string
	indent       bool
	version      string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables two-space indented output.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// WithVersion records the program version in the document.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// JSONReport is the document written by JSONWriter.
type JSONReport struct {
	// Version is the wifikey version that generated the report.
	Version string `json:"version,omitempty"`

	*model.Report

	// Found is the number of recovered secrets.
	Found int `json:"found"`
}

// Write implements Writer.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	doc := JSONReport{
		Version: w.version,
		Report:  report,
		Found:   report.Count(model.OutcomeFound),
	}

	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(doc, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
