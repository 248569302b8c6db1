package output

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/reportchain/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownWriter outputs results as GitHub Flavored Markdown.
type MarkdownWriter struct {
	baseWriter

	title cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		title:      cases.Title(language.English),
	}
}

// Write outputs the result in Markdown format.
func (w *MarkdownWriter) Write(result *model.GenerationResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeLayers(md, result)
	w.writeOutput(md, result)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the properties table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.GenerationResult) {
	md.H1(w.title.String(result.Report) + " Report")
	md.PlainText("")

	preset := result.Preset
	if preset == "" {
		preset = "-"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Preset", preset},
			{"Chain", "`" + result.ChainString() + "`"},
			{"Decorators", strconv.Itoa(len(result.Decorators))},
			{"Generated", result.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")
}

// writeLayers lists the layers from the base report outward.
func (w *MarkdownWriter) writeLayers(md *markdown.Markdown, result *model.GenerationResult) {
	md.H2("Layers")
	md.PlainText("")

	if len(result.Layers) == 0 {
		md.PlainText("No layers recorded.")
		md.PlainText("")
		return
	}

	md.OrderedList(result.Layers...)
	md.PlainText("")

	if !result.HasDecorators() {
		md.Note("No decorators applied; output is the base report.")
		md.PlainText("")
	}
}

// writeOutput writes the generated string.
func (w *MarkdownWriter) writeOutput(md *markdown.Markdown, result *model.GenerationResult) {
	md.H2("Output")
	md.PlainText("")
	md.PlainText("`" + result.Output + "`")
	md.PlainText("")
}

// writeFooter writes the document footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Generated by [reportchain](https://github.com/nao1215/reportchain)*")
}
