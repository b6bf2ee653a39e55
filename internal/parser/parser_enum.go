package parser

import "github.com/vschwaberow/rustalize/internal/ast"

func (p *Parser) parseEnum(pub bool, start Token) (*ast.Enum, error) {
	p.advance() // 'enum'

	name, err := p.expectIdent("enum name after 'enum'")
	if err != nil {
		return nil, err
	}

	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(LEFT_BRACE, "'{' to start enum body"); err != nil {
		return nil, err
	}

	var variants []ast.Variant
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		variant, err := p.parseVariant()
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant)

		if !p.match(COMMA) {
			break
		}
	}

	end, err := p.expect(RIGHT_BRACE, "'}' to close enum body")
	if err != nil {
		return nil, err
	}

	return &ast.Enum{
		Pos:      p.makePos(start),
		EndPos:   p.makeEndPos(end),
		Pub:      pub,
		Name:     name,
		Generics: generics,
		Variants: variants,
	}, nil
}

// parseVariant parses one enum case: bare Name, Name(Type, ...), or
// Name { field: Type, ... }.
func (p *Parser) parseVariant() (ast.Variant, error) {
	name, err := p.expectIdent("variant name")
	if err != nil {
		return nil, err
	}

	switch {
	case p.check(LEFT_PAREN):
		p.advance()
		var elems []ast.TypeExpr
		for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
			elem, err := p.parseTypeExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			if !p.match(COMMA) {
				break
			}
		}
		end, err := p.expect(RIGHT_PAREN, "')' to close variant data")
		if err != nil {
			return nil, err
		}
		return &ast.TupleVariant{
			Pos:    name.Pos,
			EndPos: p.makeEndPos(end),
			Name:   name,
			Elems:  elems,
		}, nil

	case p.check(LEFT_BRACE):
		fields, end, err := p.parseFieldBlock("variant body")
		if err != nil {
			return nil, err
		}
		return &ast.StructVariant{
			Pos:    name.Pos,
			EndPos: p.makeEndPos(end),
			Name:   name,
			Fields: fields,
		}, nil

	default:
		return &ast.UnitVariant{
			Pos:    name.Pos,
			EndPos: name.EndPos,
			Name:   name,
		}, nil
	}
}
