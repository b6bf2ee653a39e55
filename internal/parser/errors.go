package parser

import "fmt"

// ErrorKind classifies parse failures. The set is closed: callers can switch
// exhaustively instead of matching message text.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEndOfInput
	UnknownDeclarationKind
	TrailingTokens
	NestingTooDeep
)

// ParseError is the single error surfaced by a failed parse. Parsing is
// fail-fast: the first structural mismatch aborts and no partial AST is
// returned.
type ParseError struct {
	Kind     ErrorKind
	Expected string // what the parser was looking for, e.g. "':' after field name"
	Found    string // lexeme or token description actually seen
	Position Position
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedEndOfInput:
		return fmt.Sprintf("unexpected end of input at line %d, column %d: expected %s",
			e.Position.Line, e.Position.Column, e.Expected)
	case UnknownDeclarationKind:
		return fmt.Sprintf("unknown declaration kind %s at line %d, column %d: expected 'struct', 'trait' or 'enum'",
			e.Found, e.Position.Line, e.Position.Column)
	case TrailingTokens:
		return fmt.Sprintf("unexpected trailing %s after declaration at line %d, column %d",
			e.Found, e.Position.Line, e.Position.Column)
	case NestingTooDeep:
		return fmt.Sprintf("type nesting exceeds configured maximum depth at line %d, column %d",
			e.Position.Line, e.Position.Column)
	default:
		return fmt.Sprintf("expected %s, found %s at line %d, column %d",
			e.Expected, e.Found, e.Position.Line, e.Position.Column)
	}
}

func (p *Parser) errUnexpected(expected string, found Token) *ParseError {
	if found.Type == EOF {
		return &ParseError{
			Kind:     UnexpectedEndOfInput,
			Expected: expected,
			Found:    EOF.String(),
			Position: found.Position,
		}
	}
	return &ParseError{
		Kind:     UnexpectedToken,
		Expected: expected,
		Found:    fmt.Sprintf("%q", found.Lexeme),
		Position: found.Position,
	}
}
