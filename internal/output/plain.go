package output

import (
	"io"

	"github.com/nao1215/reportchain/internal/model"
)

// PlainWriter writes the generated string on its own line.
// With no options the output is exactly result.Output followed by "\n".
type PlainWriter struct {
	baseWriter

	// label prefixes each line with the preset name (or chain when there is
	// no preset). Used when several results are written in one run.
	label bool
}

// PlainWriterOption configures a PlainWriter.
type PlainWriterOption func(*PlainWriter)

// WithLabel prefixes each line with "<preset>: ".
func WithLabel(label bool) PlainWriterOption {
	return func(w *PlainWriter) {
		w.label = label
	}
}

// NewPlainWriter creates a PlainWriter that outputs to the given writer.
func NewPlainWriter(output io.Writer, opts ...PlainWriterOption) *PlainWriter {
	w := &PlainWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the generated string.
func (w *PlainWriter) Write(result *model.GenerationResult) (int, error) {
	line := result.Output + "\n"
	if w.label {
		name := result.Preset
		if name == "" {
			name = result.ChainString()
		}
		line = name + ": " + line
	}
	return io.WriteString(w.output, line)
}
