package parser

import (
	"fmt"

	"github.com/vschwaberow/rustalize/internal/ast"
)

// Parser decodes the token stream for exactly one top-level declaration.
// Parsing is single-pass with bounded lookahead and no recovery: the first
// structural mismatch aborts the whole parse.
type Parser struct {
	filename string
	tokens   []Token
	current  int
	maxDepth int // 0 means unlimited
	depth    int
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// ParseDeclaration parses a single struct/trait/enum declaration from source.
// Each call is independent and reentrant; the caller owns the returned tree.
func ParseDeclaration(source string) (ast.Declaration, error) {
	return ParseSource("", source)
}

// ParseSource is ParseDeclaration with a filename carried into AST positions,
// for tooling that reports against files.
func ParseSource(filename, source string) (ast.Declaration, error) {
	return parseWithDepth(filename, source, 0)
}

// ParseDeclarationMaxDepth bounds type-expression recursion. Inputs nesting
// deeper than maxDepth fail with a NestingTooDeep error instead of growing
// the call stack without limit.
func ParseDeclarationMaxDepth(source string, maxDepth int) (ast.Declaration, error) {
	return parseWithDepth("", source, maxDepth)
}

// ParseSourceMaxDepth combines ParseSource and ParseDeclarationMaxDepth.
func ParseSourceMaxDepth(filename, source string, maxDepth int) (ast.Declaration, error) {
	return parseWithDepth(filename, source, maxDepth)
}

func parseWithDepth(filename, source string, maxDepth int) (ast.Declaration, error) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()
	if errs := scanner.Errors(); len(errs) > 0 {
		return nil, &errs[0]
	}

	parser := NewParser(filename, tokens)
	parser.maxDepth = maxDepth
	return parser.ParseDeclaration()
}

// ParseDeclaration consumes the entire token stream. Anything left after the
// declaration's closing brace is a TrailingTokens error.
func (p *Parser) ParseDeclaration() (ast.Declaration, error) {
	start := p.peek()
	pub := p.match(PUB)

	var decl ast.Declaration
	var err error
	switch p.peek().Type {
	case STRUCT:
		decl, err = p.parseStruct(pub, start)
	case TRAIT:
		decl, err = p.parseTrait(pub, start)
	case ENUM:
		decl, err = p.parseEnum(pub, start)
	case EOF:
		return nil, &ParseError{
			Kind:     UnexpectedEndOfInput,
			Expected: "'struct', 'trait' or 'enum'",
			Found:    EOF.String(),
			Position: p.peek().Position,
		}
	default:
		return nil, &ParseError{
			Kind:     UnknownDeclarationKind,
			Found:    fmt.Sprintf("%q", p.peek().Lexeme),
			Position: p.peek().Position,
		}
	}
	if err != nil {
		return nil, err
	}

	if !p.isAtEnd() {
		return nil, &ParseError{
			Kind:     TrailingTokens,
			Found:    fmt.Sprintf("%q", p.peek().Lexeme),
			Position: p.peek().Position,
		}
	}
	return decl, nil
}

// parseGenericParams parses an optional generic parameter list:
// <Name, Name: Bound + Bound, ...> with an optional trailing comma.
func (p *Parser) parseGenericParams() ([]ast.GenericParam, error) {
	if !p.match(LESS) {
		return nil, nil
	}

	var params []ast.GenericParam
	for !p.check(GREATER) && !p.isAtEnd() {
		name, err := p.expectIdent("generic parameter name")
		if err != nil {
			return nil, err
		}

		var bounds []ast.Ident
		if p.match(COLON) {
			for {
				bound, err := p.expectIdent("bound name after ':'")
				if err != nil {
					return nil, err
				}
				bounds = append(bounds, bound)
				if !p.match(PLUS) {
					break
				}
			}
		}

		end := name.EndPos
		if len(bounds) > 0 {
			end = bounds[len(bounds)-1].EndPos
		}
		params = append(params, ast.GenericParam{
			Pos:    name.Pos,
			EndPos: end,
			Name:   name,
			Bounds: bounds,
		})

		if !p.match(COMMA) {
			break
		}
	}

	if _, err := p.expect(GREATER, "'>' to close generic parameter list"); err != nil {
		return nil, err
	}
	return params, nil
}
