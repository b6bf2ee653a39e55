package parser

import (
	"fmt"
	"unicode"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

// Scanner turns raw declaration source into a flat token slice.
// Whitespace and comments never reach the parser.
type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startColumn int
	column      int
	errors      []LexError
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

func (s *Scanner) Errors() []LexError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case ',':
		s.addToken(COMMA)
	case ';':
		s.addToken(SEMICOLON)
	case '<':
		s.addToken(LESS)
	case '>':
		s.addToken(GREATER)
	case '&':
		s.addToken(AMPERSAND)
	case '+':
		s.addToken(PLUS)

	// Two-character variants
	case ':':
		if s.matchNext(':') {
			s.addToken(DOUBLE_COLON)
		} else {
			s.addToken(COLON)
		}
	case '-':
		if s.matchNext('>') {
			s.addToken(ARROW)
		} else {
			s.reportError(c)
		}
	case '/':
		if s.matchNext('/') {
			s.skipLineComment()
		} else if s.matchNext('*') {
			s.skipBlockComment()
		} else {
			s.reportError(c)
		}

	// Whitespace (ignored)
	case ' ', '\r', '\t':
	case '\n':
		// Handled in advance()

	default:
		if isAlpha(c) {
			s.scanIdentifier()
		} else {
			s.reportError(c)
		}
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType TokenType) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: text,
		Position: Position{
			Line:   s.line,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(c byte) {
	s.errors = append(s.errors, LexError{
		Char:     c,
		Position: Position{Line: s.line, Column: s.startColumn, Offset: s.start},
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	s.addToken(lookupIdentifier(s.source[s.start:s.current]))
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}

func (s *Scanner) skipLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

// skipBlockComment discards a block comment. Running off the end of input is
// tolerated: the scanner always terminates cleanly at EOF.
func (s *Scanner) skipBlockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance() // *
			s.advance() // /
			return
		}
		s.advance()
	}
}

// LexError reports an illegal character in the input.
type LexError struct {
	Char     byte
	Position Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("illegal character %q at line %d, column %d", e.Char, e.Position.Line, e.Position.Column)
}
