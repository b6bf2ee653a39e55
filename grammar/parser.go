package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

func buildParser() (*participle.Parser[Declaration], error) {
	return participle.Build[Declaration](
		participle.Lexer(DeclLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(3),
	)
}

// ParseSource parses one declaration from source text.
func ParseSource(filename, source string) (*Declaration, error) {
	parser, err := buildParser()
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return parser.ParseString(filename, source)
}

// ParseFile parses one declaration from a file on disk.
func ParseFile(path string) (*Declaration, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseSource(path, string(source))
}
