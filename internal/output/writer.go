package output

import (
	"fmt"
	"io"

	"github.com/nao1215/reportchain/internal/model"
)

// Writer defines the interface for result output.
type Writer interface {
	// Write outputs the result to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(result *model.GenerationResult) (int, error)
}

// Format names an output format.
type Format string

const (
	// FormatPlain writes the generated string followed by a newline.
	FormatPlain Format = "plain"
	// FormatJSON writes the result as JSON.
	FormatJSON Format = "json"
	// FormatMarkdown writes the result as a Markdown document.
	FormatMarkdown Format = "markdown"
)

// New returns a writer for the format that writes to w.
func New(format Format, w io.Writer) (Writer, error) {
	switch format {
	case FormatPlain, "":
		return NewPlainWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w, WithPrettyPrint()), nil
	case FormatMarkdown:
		return NewMarkdownWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// baseWriter provides common functionality for result writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
