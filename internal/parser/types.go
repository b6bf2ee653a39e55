package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers
	IDENTIFIER

	// Keywords
	STRUCT
	TRAIT
	ENUM
	PUB
	FN
	MUT
	DYN
	BOX
	OPTION
	VEC
	FN_TYPE

	// Separators
	COMMA
	SEMICOLON
	COLON
	DOUBLE_COLON
	ARROW

	// Operators
	AMPERSAND
	PLUS

	// Brackets
	LESS
	GREATER
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
)

var tokenNames = map[TokenType]string{
	ILLEGAL:      "ILLEGAL",
	EOF:          "end of input",
	IDENTIFIER:   "identifier",
	STRUCT:       "'struct'",
	TRAIT:        "'trait'",
	ENUM:         "'enum'",
	PUB:          "'pub'",
	FN:           "'fn'",
	MUT:          "'mut'",
	DYN:          "'dyn'",
	BOX:          "'Box'",
	OPTION:       "'Option'",
	VEC:          "'Vec'",
	FN_TYPE:      "'Fn'",
	COMMA:        "','",
	SEMICOLON:    "';'",
	COLON:        "':'",
	DOUBLE_COLON: "'::'",
	ARROW:        "'->'",
	AMPERSAND:    "'&'",
	PLUS:         "'+'",
	LESS:         "'<'",
	GREATER:      "'>'",
	LEFT_PAREN:   "'('",
	RIGHT_PAREN:  "')'",
	LEFT_BRACE:   "'{'",
	RIGHT_BRACE:  "'}'",
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "unknown token"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
