// Package output writes generation results in different formats.
//
// This package contains writers for each supported format:
//   - PlainWriter: the generated string on a single line (default)
//   - JSONWriter: structured JSON for tool integration
//   - MarkdownWriter: a Markdown document describing the chain and its output
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably.
package output
