package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ManualEntryPrompt is shown when a profile name has to be typed in.
const ManualEntryPrompt = "Enter SSID to retrieve password for (or press Enter to exit): "

// Prompter asks the operator for one line of input.
type Prompter interface {
	// Prompt writes message and returns the trimmed line read. End of
	// input without text returns an empty string and no error.
	Prompt(ctx context.Context, message string) (string, error)
}

// LinePrompter reads answers line by line from a reader.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a prompter reading from in and writing
// prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

type lineResult struct {
	line string
	err  error
}

// Prompt implements Prompter. A cancelled context returns immediately
// even while the read is still blocked.
func (p *LinePrompter) Prompt(ctx context.Context, message string) (string, error) {
	if _, err := fmt.Fprint(p.out, message); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil && !errors.Is(r.err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", r.err)
		}
		return strings.TrimSpace(r.line), nil
	}
}
