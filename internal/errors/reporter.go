// Package errors formats lexer and parser failures as Rust-style terminal
// diagnostics: a colored header, the offending source line, and a caret
// marker under the position.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/vschwaberow/rustalize/internal/parser"
)

// Reporter renders diagnostics against one source text.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders any error produced by the parse pipeline. Errors without
// position information fall back to a single header line.
func (r *Reporter) Format(err error) string {
	switch e := err.(type) {
	case *parser.LexError:
		return r.format(e.Error(), e.Position, 1)
	case *parser.ParseError:
		return r.format(e.Error(), e.Position, markerLength(e))
	default:
		red := color.New(color.FgRed, color.Bold).SprintFunc()
		return fmt.Sprintf("%s: %v\n", red("error"), err)
	}
}

func (r *Reporter) format(message string, pos parser.Position, length int) string {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var lineContent string
	if pos.Line-1 >= 0 && pos.Line-1 < len(r.lines) {
		lineContent = r.lines[pos.Line-1]
	}

	marker := strings.Repeat(" ", max(0, pos.Column-1)) + strings.Repeat("^", max(1, length))

	lineNumberWidth := len(fmt.Sprintf("%d", pos.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", red("error"), message)
	fmt.Fprintf(&b, "%s%s %s:%d:%d\n", indent, dim("-->"), r.filename, pos.Line, pos.Column)
	fmt.Fprintf(&b, "%s%s\n", indent, dim("│"))
	fmt.Fprintf(&b, "%s%s%s\n", bold(fmt.Sprintf("%*d", lineNumberWidth, pos.Line)), dim("│"), lineContent)
	fmt.Fprintf(&b, "%s%s%s\n", indent, dim("│"), red(marker))
	return b.String()
}

// markerLength widens the caret to cover the found lexeme when one is known.
// At end of input there is no lexeme to underline.
func markerLength(e *parser.ParseError) int {
	if e.Kind == parser.UnexpectedEndOfInput {
		return 1
	}
	if found := strings.Trim(e.Found, `"`); len(found) > 1 {
		return len(found)
	}
	return 1
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
