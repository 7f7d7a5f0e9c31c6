package slang

import (
	"fmt"
	"strconv"
)

// Expression grammar, lowest precedence first. Each level parses one
// sub-level and then folds left while its own operators keep appearing:
//
//	expression     = logicalAnd ("||" logicalAnd)*
//	logicalAnd     = comparison ("&&" comparison)*
//	comparison     = additive (("==" | "!=" | "<" | "<=" | ">" | ">=") additive)*
//	additive       = multiplicative (("+" | "-") multiplicative)*
//	multiplicative = unary (("*" | "/" | "%") unary)*
//	unary          = ("!" | "-") unary | primary
//	primary        = NUMBER | "true" | "false" | IDENT ("[" expression "]" | "(" args ")")?
//	               | "[" (expression ("," expression)*)? "]" | "(" expression ")"
func (p *parser) parseExpression() (Expression, error) {
	expr, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Type == tokenOr {
		opTok := p.advance()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: opTok.Type, Right: right, position: opTok.Pos}
	}
	return expr, nil
}

func (p *parser) parseLogicalAnd() (Expression, error) {
	expr, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.current().Type == tokenAnd {
		opTok := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: opTok.Type, Right: right, position: opTok.Pos}
	}
	return expr, nil
}

func (p *parser) parseComparison() (Expression, error) {
	expr, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for isComparisonOp(p.current().Type) {
		opTok := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: opTok.Type, Right: right, position: opTok.Pos}
	}
	return expr, nil
}

func isComparisonOp(tt TokenType) bool {
	switch tt {
	case tokenEQ, tokenNotEQ, tokenLT, tokenLTE, tokenGT, tokenGTE:
		return true
	}
	return false
}

func (p *parser) parseAdditive() (Expression, error) {
	expr, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.current().Type == tokenPlus || p.current().Type == tokenMinus {
		opTok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: opTok.Type, Right: right, position: opTok.Pos}
	}
	return expr, nil
}

func (p *parser) parseMultiplicative() (Expression, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.current().Type == tokenAsterisk || p.current().Type == tokenSlash || p.current().Type == tokenPercent {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: opTok.Type, Right: right, position: opTok.Pos}
	}
	return expr, nil
}

// parseUnary is right-recursive, so !!x and --x nest.
func (p *parser) parseUnary() (Expression, error) {
	if p.current().Type == tokenBang || p.current().Type == tokenMinus {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: opTok.Type, Right: right, position: opTok.Pos}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expression, error) {
	tok := p.current()

	switch tok.Type {
	case tokenNumber:
		p.advance()
		value, err := strconv.Atoi(tok.Literal)
		if err != nil {
			return nil, &SyntaxError{Msg: fmt.Sprintf("invalid integer literal %q", tok.Literal), Pos: tok.Pos}
		}
		return &IntLiteral{Value: value, position: tok.Pos}, nil

	case tokenTrue, tokenFalse:
		p.advance()
		return &BoolLiteral{Value: tok.Type == tokenTrue, position: tok.Pos}, nil

	case tokenIdent:
		p.advance()
		switch p.current().Type {
		case tokenLBracket:
			p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokenRBracket); err != nil {
				return nil, err
			}
			return &IndexExpr{
				Array:    &Identifier{Name: tok.Literal, position: tok.Pos},
				Index:    index,
				position: tok.Pos,
			}, nil
		case tokenLParen:
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			return &CallExpr{Name: tok.Literal, Args: args, position: tok.Pos}, nil
		}
		return &Identifier{Name: tok.Literal, position: tok.Pos}, nil

	case tokenLBracket:
		p.advance()
		elements := []Expression{}
		if p.current().Type != tokenRBracket {
			for {
				elem, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				elements = append(elements, elem)
				if p.current().Type != tokenComma {
					break
				}
				p.advance()
			}
		}
		if _, err := p.expect(tokenRBracket); err != nil {
			return nil, err
		}
		return &ArrayLiteral{Elements: elements, position: tok.Pos}, nil

	case tokenLParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, &SyntaxError{
			Msg: fmt.Sprintf("unexpected token %s, expected expression", tok.Type),
			Pos: tok.Pos,
		}
	}
}

func (p *parser) parseCallArgs() ([]Expression, error) {
	if _, err := p.expect(tokenLParen); err != nil {
		return nil, err
	}
	args := []Expression{}
	if p.current().Type != tokenRParen {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.current().Type != tokenComma {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(tokenRParen); err != nil {
		return nil, err
	}
	return args, nil
}
