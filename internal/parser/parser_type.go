package parser

import "github.com/vschwaberow/rustalize/internal/ast"

// parseTypeExpr consumes exactly the tokens composing one type expression.
// One level of recursion per nesting depth; the cursor advances past the
// expression and nothing else.
func (p *Parser) parseTypeExpr() (ast.TypeExpr, error) {
	if p.maxDepth > 0 {
		p.depth++
		defer func() { p.depth-- }()
		if p.depth > p.maxDepth {
			return nil, &ParseError{
				Kind:     NestingTooDeep,
				Position: p.peek().Position,
			}
		}
	}

	switch p.peek().Type {
	case AMPERSAND:
		return p.parseReference()
	case BOX:
		return p.parseBoxed()
	case DYN:
		return p.parseDyn()
	case VEC:
		return p.parseSequence()
	case OPTION:
		return p.parseOptional()
	case FN_TYPE:
		return p.parseFunctionType()
	case IDENTIFIER:
		return p.parseNamed()
	default:
		return nil, p.errUnexpected("a type expression", p.peek())
	}
}

// parseReference handles &T and &mut T.
func (p *Parser) parseReference() (ast.TypeExpr, error) {
	start := p.advance()
	mut := p.match(MUT)
	inner, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Reference{
		Pos:    p.makePos(start),
		EndPos: inner.NodeEndPos(),
		Mut:    mut,
		Inner:  inner,
	}, nil
}

// parseBoxed handles Box<T> and Box<dyn T>. The dyn marker collapses into
// the same node, so Box<dyn Fn(T) -> U> is one Boxed wrapping one
// FunctionType.
func (p *Parser) parseBoxed() (ast.TypeExpr, error) {
	start := p.advance()
	if _, err := p.expect(LESS, "'<' after 'Box'"); err != nil {
		return nil, err
	}
	dynamic := p.match(DYN)
	inner, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(GREATER, "'>' to close 'Box<'")
	if err != nil {
		return nil, err
	}
	return &ast.Boxed{
		Pos:     p.makePos(start),
		EndPos:  p.makeEndPos(end),
		Heap:    true,
		Dynamic: dynamic,
		Inner:   inner,
	}, nil
}

// parseDyn handles a bare dyn marker, which applies to the remainder of the
// current type position and needs no angle brackets.
func (p *Parser) parseDyn() (ast.TypeExpr, error) {
	start := p.advance()
	inner, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Boxed{
		Pos:     p.makePos(start),
		EndPos:  inner.NodeEndPos(),
		Dynamic: true,
		Inner:   inner,
	}, nil
}

func (p *Parser) parseSequence() (ast.TypeExpr, error) {
	start := p.advance()
	if _, err := p.expect(LESS, "'<' after 'Vec'"); err != nil {
		return nil, err
	}
	element, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(GREATER, "'>' to close 'Vec<'")
	if err != nil {
		return nil, err
	}
	return &ast.Sequence{
		Pos:     p.makePos(start),
		EndPos:  p.makeEndPos(end),
		Element: element,
	}, nil
}

func (p *Parser) parseOptional() (ast.TypeExpr, error) {
	start := p.advance()
	if _, err := p.expect(LESS, "'<' after 'Option'"); err != nil {
		return nil, err
	}
	inner, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(GREATER, "'>' to close 'Option<'")
	if err != nil {
		return nil, err
	}
	return &ast.Optional{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Inner:  inner,
	}, nil
}

// parseFunctionType handles Fn(params...) with an optional -> return clause.
func (p *Parser) parseFunctionType() (ast.TypeExpr, error) {
	start := p.advance()
	if _, err := p.expect(LEFT_PAREN, "'(' after 'Fn'"); err != nil {
		return nil, err
	}

	var params []ast.TypeExpr
	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		param, err := p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.match(COMMA) {
			break
		}
	}
	end, err := p.expect(RIGHT_PAREN, "')' to close 'Fn('")
	if err != nil {
		return nil, err
	}

	var ret ast.TypeExpr
	if p.match(ARROW) {
		ret, err = p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
	}

	endPos := p.makeEndPos(end)
	if ret != nil {
		endPos = ret.NodeEndPos()
	}
	return &ast.FunctionType{
		Pos:    p.makePos(start),
		EndPos: endPos,
		Params: params,
		Return: ret,
	}, nil
}

// parseNamed handles plain and generic type references, joining
// ::-qualified path segments into one name.
func (p *Parser) parseNamed() (ast.TypeExpr, error) {
	start := p.advance()
	name := start.Lexeme
	for p.match(DOUBLE_COLON) {
		segment, err := p.expect(IDENTIFIER, "path segment after '::'")
		if err != nil {
			return nil, err
		}
		name += "::" + segment.Lexeme
	}

	var args []ast.TypeExpr
	if p.match(LESS) {
		for {
			arg, err := p.parseTypeExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(COMMA) {
				break
			}
		}
		if _, err := p.expect(GREATER, "'>' to close generic argument list"); err != nil {
			return nil, err
		}
	}

	return &ast.Named{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(p.previous()),
		Name:   name,
		Args:   args,
	}, nil
}
