package slang

import "fmt"

// Parse consumes the token sequence produced by Tokenize and builds the
// program AST. It fails fast with a SyntaxError on the first unmet grammar
// expectation.
//
// Grammar:
//
//	program     = statement* EOF
//	statement   = declaration | assignment | printStmt | ifStmt
//	            | whileStmt | forStmt | functionDecl | returnStmt
//	declaration = ("int" | "bool") IDENT "=" expression ";"
//	assignment  = IDENT ("[" expression "]")? "=" expression ";"
//	printStmt   = "print" "(" expression ")" ";"
//	ifStmt      = "if" "(" expression ")" block ("else" block)?
//	whileStmt   = "while" "(" expression ")" block
//	forStmt     = "for" "(" forInit? ";"? expression? ";" forUpdate? ")" block
//	functionDecl = "function" IDENT "(" params? ")" block
//	returnStmt  = "return" expression? ";"
//	block       = "{" statement* "}"
func Parse(tokens []Token) (*Program, error) {
	p := &parser{tokens: tokens}
	return p.parseProgram()
}

type parser struct {
	tokens []Token
	pos    int
}

// current returns the token under the cursor; past the end it keeps
// returning the terminal EOF token.
func (p *parser) current() Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(tt TokenType) (Token, error) {
	tok := p.current()
	if tok.Type != tt {
		return Token{}, p.errorExpected(tok, string(tt))
	}
	return p.advance(), nil
}

func (p *parser) errorExpected(tok Token, expected string) error {
	return &SyntaxError{
		Msg: fmt.Sprintf("expected %s, got %s", expected, tok.Type),
		Pos: tok.Pos,
	}
}

func (p *parser) parseProgram() (*Program, error) {
	program := &Program{}
	for p.current().Type != tokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

func (p *parser) parseStatement() (Statement, error) {
	switch p.current().Type {
	case tokenInt, tokenBool:
		return p.parseDeclaration()
	case tokenPrint:
		return p.parsePrintStatement()
	case tokenIf:
		return p.parseIfStatement()
	case tokenWhile:
		return p.parseWhileStatement()
	case tokenFor:
		return p.parseForStatement()
	case tokenFunction:
		return p.parseFunctionDeclaration()
	case tokenReturn:
		return p.parseReturnStatement()
	case tokenIdent:
		return p.parseAssignment(true)
	default:
		tok := p.current()
		return nil, &SyntaxError{
			Msg: fmt.Sprintf("unexpected token %s, expected statement", tok.Type),
			Pos: tok.Pos,
		}
	}
}

func (p *parser) parseDeclaration() (Statement, error) {
	typeTok := p.advance()
	varType := TypeInt
	if typeTok.Type == tokenBool {
		varType = TypeBool
	}

	nameTok, err := p.expect(tokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenAssign); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenSemicolon); err != nil {
		return nil, err
	}

	return &VarDeclStmt{Type: varType, Name: nameTok.Literal, Value: value, position: typeTok.Pos}, nil
}

// parseAssignment handles both plain and indexed targets. The update
// clause of a for header reuses it with consumeSemicolon false, since that
// clause is terminated by the closing parenthesis instead.
func (p *parser) parseAssignment(consumeSemicolon bool) (*AssignStmt, error) {
	nameTok, err := p.expect(tokenIdent)
	if err != nil {
		return nil, err
	}

	var target AssignTarget = PlainTarget{Name: nameTok.Literal}
	if p.current().Type == tokenLBracket {
		p.advance()
		index, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRBracket); err != nil {
			return nil, err
		}
		target = IndexedTarget{Name: nameTok.Literal, Index: index}
	}

	if _, err := p.expect(tokenAssign); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if consumeSemicolon {
		if _, err := p.expect(tokenSemicolon); err != nil {
			return nil, err
		}
	}

	return &AssignStmt{Target: target, Value: value, position: nameTok.Pos}, nil
}

func (p *parser) parsePrintStatement() (Statement, error) {
	printTok := p.advance()
	if _, err := p.expect(tokenLParen); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenRParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenSemicolon); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: expr, position: printTok.Pos}, nil
}

func (p *parser) parseIfStatement() (Statement, error) {
	ifTok := p.advance()
	if _, err := p.expect(tokenLParen); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenRParen); err != nil {
		return nil, err
	}
	consequent, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var alternate []Statement
	if p.current().Type == tokenElse {
		p.advance()
		alternate, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &IfStmt{Condition: condition, Consequent: consequent, Alternate: alternate, position: ifTok.Pos}, nil
}

func (p *parser) parseWhileStatement() (Statement, error) {
	whileTok := p.advance()
	if _, err := p.expect(tokenLParen); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenRParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Condition: condition, Body: body, position: whileTok.Pos}, nil
}

func (p *parser) parseForStatement() (Statement, error) {
	forTok := p.advance()
	if _, err := p.expect(tokenLParen); err != nil {
		return nil, err
	}

	// Init is a full statement that consumes its own semicolon; when it is
	// absent the separating semicolon still has to go.
	var init Statement
	switch p.current().Type {
	case tokenSemicolon:
		p.advance()
	case tokenInt, tokenBool:
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		init = decl
	case tokenIdent:
		assign, err := p.parseAssignment(true)
		if err != nil {
			return nil, err
		}
		init = assign
	default:
		return nil, p.errorExpected(p.current(), "for-loop initializer")
	}

	var condition Expression
	if p.current().Type != tokenSemicolon {
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		condition = cond
	}
	if _, err := p.expect(tokenSemicolon); err != nil {
		return nil, err
	}

	var update *AssignStmt
	if p.current().Type != tokenRParen {
		assign, err := p.parseAssignment(false)
		if err != nil {
			return nil, err
		}
		update = assign
	}
	if _, err := p.expect(tokenRParen); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ForStmt{Init: init, Condition: condition, Update: update, Body: body, position: forTok.Pos}, nil
}

func (p *parser) parseFunctionDeclaration() (Statement, error) {
	fnTok := p.advance()
	nameTok, err := p.expect(tokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenLParen); err != nil {
		return nil, err
	}

	var params []Param
	if p.current().Type != tokenRParen {
		for {
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if p.current().Type != tokenComma {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(tokenRParen); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	// The grammar has no return-type syntax; every function is int.
	return &FunctionStmt{
		Name:       nameTok.Literal,
		Params:     params,
		ReturnType: TypeInt,
		Body:       body,
		position:   fnTok.Pos,
	}, nil
}

func (p *parser) parseParam() (Param, error) {
	typeTok := p.current()
	if typeTok.Type != tokenInt && typeTok.Type != tokenBool {
		return Param{}, p.errorExpected(typeTok, "parameter type")
	}
	p.advance()
	paramType := TypeInt
	if typeTok.Type == tokenBool {
		paramType = TypeBool
	}

	nameTok, err := p.expect(tokenIdent)
	if err != nil {
		return Param{}, err
	}
	return Param{Type: paramType, Name: nameTok.Literal}, nil
}

func (p *parser) parseReturnStatement() (Statement, error) {
	returnTok := p.advance()

	var value Expression
	if p.current().Type != tokenSemicolon {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = expr
	}
	if _, err := p.expect(tokenSemicolon); err != nil {
		return nil, err
	}

	return &ReturnStmt{Value: value, position: returnTok.Pos}, nil
}

func (p *parser) parseBlock() ([]Statement, error) {
	if _, err := p.expect(tokenLBrace); err != nil {
		return nil, err
	}
	stmts := []Statement{}
	for p.current().Type != tokenRBrace && p.current().Type != tokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(tokenRBrace); err != nil {
		return nil, err
	}
	return stmts, nil
}
