package parser

import "github.com/vschwaberow/rustalize/internal/ast"

func (p *Parser) parseStruct(pub bool, start Token) (*ast.Struct, error) {
	p.advance() // 'struct'

	name, err := p.expectIdent("struct name after 'struct'")
	if err != nil {
		return nil, err
	}

	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}

	fields, end, err := p.parseFieldBlock("struct body")
	if err != nil {
		return nil, err
	}

	return &ast.Struct{
		Pos:      p.makePos(start),
		EndPos:   p.makeEndPos(end),
		Pub:      pub,
		Name:     name,
		Generics: generics,
		Fields:   fields,
	}, nil
}

// parseFieldBlock parses `{ name: Type, ... }` with an optional trailing
// comma. Shared between struct bodies and struct-style enum variants.
func (p *Parser) parseFieldBlock(what string) ([]ast.Field, Token, error) {
	if _, err := p.expect(LEFT_BRACE, "'{' to start "+what); err != nil {
		return nil, Token{}, err
	}

	var fields []ast.Field
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		field, err := p.parseField()
		if err != nil {
			return nil, Token{}, err
		}
		fields = append(fields, field)

		if !p.match(COMMA) {
			break
		}
	}

	end, err := p.expect(RIGHT_BRACE, "'}' to close "+what)
	if err != nil {
		return nil, Token{}, err
	}
	return fields, end, nil
}

// parseField parses a single field: name: Type
func (p *Parser) parseField() (ast.Field, error) {
	name, err := p.expectIdent("field name")
	if err != nil {
		return ast.Field{}, err
	}

	if _, err := p.expect(COLON, "':' after field name"); err != nil {
		return ast.Field{}, err
	}

	typ, err := p.parseTypeExpr()
	if err != nil {
		return ast.Field{}, err
	}

	return ast.Field{
		Pos:    name.Pos,
		EndPos: typ.NodeEndPos(),
		Name:   name,
		Type:   typ,
	}, nil
}
