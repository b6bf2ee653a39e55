package parser

import "github.com/vschwaberow/rustalize/internal/ast"

func (p *Parser) parseTrait(pub bool, start Token) (*ast.Trait, error) {
	p.advance() // 'trait'

	name, err := p.expectIdent("trait name after 'trait'")
	if err != nil {
		return nil, err
	}

	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(LEFT_BRACE, "'{' to start trait body"); err != nil {
		return nil, err
	}

	var methods []ast.MethodSignature
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		method, err := p.parseMethodSignature()
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	end, err := p.expect(RIGHT_BRACE, "'}' to close trait body")
	if err != nil {
		return nil, err
	}

	return &ast.Trait{
		Pos:      p.makePos(start),
		EndPos:   p.makeEndPos(end),
		Pub:      pub,
		Name:     name,
		Generics: generics,
		Methods:  methods,
	}, nil
}

// parseMethodSignature parses one required method:
// fn name(params...) [-> Type] ;
func (p *Parser) parseMethodSignature() (ast.MethodSignature, error) {
	start, err := p.expect(FN, "'fn' to start a method signature")
	if err != nil {
		return ast.MethodSignature{}, err
	}

	name, err := p.expectIdent("method name after 'fn'")
	if err != nil {
		return ast.MethodSignature{}, err
	}

	if _, err := p.expect(LEFT_PAREN, "'(' after method name"); err != nil {
		return ast.MethodSignature{}, err
	}

	var params []ast.MethodParam
	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		param, err := p.parseMethodParam()
		if err != nil {
			return ast.MethodSignature{}, err
		}
		params = append(params, param)

		if !p.match(COMMA) {
			break
		}
	}

	if _, err := p.expect(RIGHT_PAREN, "')' to close parameter list"); err != nil {
		return ast.MethodSignature{}, err
	}

	var ret ast.TypeExpr
	if p.match(ARROW) {
		ret, err = p.parseTypeExpr()
		if err != nil {
			return ast.MethodSignature{}, err
		}
	}

	end, err := p.expect(SEMICOLON, "';' after method signature")
	if err != nil {
		return ast.MethodSignature{}, err
	}

	return ast.MethodSignature{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Params: params,
		Return: ret,
	}, nil
}

// parseMethodParam parses `name: Type` or a receiver. Receivers become a
// param named "self" typed Self, matching how the trait's implementor would
// see them.
func (p *Parser) parseMethodParam() (ast.MethodParam, error) {
	// &self / &mut self
	if p.check(AMPERSAND) && (p.isSelfAt(1) || (p.checkAt(1, MUT) && p.isSelfAt(2))) {
		amp := p.advance()
		mut := p.match(MUT)
		selfTok := p.advance()
		name := p.makeIdent(selfTok)
		selfType := &ast.Named{
			Pos:    name.Pos,
			EndPos: name.EndPos,
			Name:   "Self",
		}
		return ast.MethodParam{
			Pos:    p.makePos(amp),
			EndPos: name.EndPos,
			Name:   name,
			Type: &ast.Reference{
				Pos:    p.makePos(amp),
				EndPos: name.EndPos,
				Mut:    mut,
				Inner:  selfType,
			},
		}, nil
	}

	// bare self
	if p.isSelfAt(0) {
		selfTok := p.advance()
		name := p.makeIdent(selfTok)
		return ast.MethodParam{
			Pos:    name.Pos,
			EndPos: name.EndPos,
			Name:   name,
			Type: &ast.Named{
				Pos:    name.Pos,
				EndPos: name.EndPos,
				Name:   "Self",
			},
		}, nil
	}

	name, err := p.expectIdent("parameter name")
	if err != nil {
		return ast.MethodParam{}, err
	}

	if _, err := p.expect(COLON, "':' after parameter name"); err != nil {
		return ast.MethodParam{}, err
	}

	typ, err := p.parseTypeExpr()
	if err != nil {
		return ast.MethodParam{}, err
	}

	return ast.MethodParam{
		Pos:    name.Pos,
		EndPos: typ.NodeEndPos(),
		Name:   name,
		Type:   typ,
	}, nil
}

func (p *Parser) isSelfAt(offset int) bool {
	tok := p.peekAt(offset)
	return tok.Type == IDENTIFIER && tok.Lexeme == "self"
}
