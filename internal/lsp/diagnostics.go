package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/vschwaberow/rustalize/internal/parser"
)

// ConvertError transforms a parse pipeline failure into LSP diagnostics for
// IDE display. Parsing is fail-fast, so there is at most one diagnostic.
func ConvertError(err error) []protocol.Diagnostic {
	switch e := err.(type) {
	case nil:
		return nil
	case *parser.LexError:
		return []protocol.Diagnostic{positionDiagnostic(e.Position, 1, e.Error(), "scanner")}
	case *parser.ParseError:
		return []protocol.Diagnostic{positionDiagnostic(e.Position, foundLength(e), e.Error(), "parser")}
	default:
		return []protocol.Diagnostic{{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 1},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("rustalize"),
			Message:  err.Error(),
		}}
	}
}

func positionDiagnostic(pos parser.Position, length int, message, source string) protocol.Diagnostic {
	if length < 1 {
		length = 1
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(pos.Line - 1), // Convert to 0-based indexing
				Character: uint32(pos.Column - 1),
			},
			End: protocol.Position{
				Line:      uint32(pos.Line - 1),
				Character: uint32(pos.Column - 1 + length),
			},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("rustalize-" + source),
		Message:  message,
	}
}

// foundLength spans the diagnostic over the offending lexeme when one exists.
func foundLength(e *parser.ParseError) int {
	if e.Kind == parser.UnexpectedEndOfInput {
		return 1
	}
	found := e.Found
	if len(found) >= 2 && found[0] == '"' && found[len(found)-1] == '"' {
		found = found[1 : len(found)-1]
	}
	return len(found)
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
