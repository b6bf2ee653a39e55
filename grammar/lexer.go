package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var DeclLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\n]*|/\*[\s\S]*?\*/`, nil},

		// Keywords and Identifiers (order matters)
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Multi-character operators (must come before Punct)
		{"Arrow", `->`, nil},
		{"PathSep", `::`, nil},

		// Punctuation
		{"Punct", `[{}()<>,:;&+]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
