package slang

import "fmt"

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenEOF TokenType = "EOF"

	tokenIdent  TokenType = "IDENT"
	tokenNumber TokenType = "NUMBER"

	tokenInt      TokenType = "INT"
	tokenBool     TokenType = "BOOL"
	tokenPrint    TokenType = "PRINT"
	tokenIf       TokenType = "IF"
	tokenElse     TokenType = "ELSE"
	tokenWhile    TokenType = "WHILE"
	tokenFor      TokenType = "FOR"
	tokenFunction TokenType = "FUNCTION"
	tokenReturn   TokenType = "RETURN"
	tokenTrue     TokenType = "TRUE"
	tokenFalse    TokenType = "FALSE"

	tokenAssign   TokenType = "="
	tokenPlus     TokenType = "+"
	tokenMinus    TokenType = "-"
	tokenAsterisk TokenType = "*"
	tokenSlash    TokenType = "/"
	tokenPercent  TokenType = "%"
	tokenBang     TokenType = "!"
	tokenEQ       TokenType = "=="
	tokenNotEQ    TokenType = "!="
	tokenLT       TokenType = "<"
	tokenLTE      TokenType = "<="
	tokenGT       TokenType = ">"
	tokenGTE      TokenType = ">="
	tokenAnd      TokenType = "&&"
	tokenOr       TokenType = "||"

	tokenSemicolon TokenType = ";"
	tokenComma     TokenType = ","
	tokenLParen    TokenType = "("
	tokenRParen    TokenType = ")"
	tokenLBrace    TokenType = "{"
	tokenRBrace    TokenType = "}"
	tokenLBracket  TokenType = "["
	tokenRBracket  TokenType = "]"
)

// Token is a single lexical unit with its source position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position is a 1-based line/column location in the source text.
type Position struct {
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%-9s %-12q %d:%d", string(t.Type), t.Literal, t.Pos.Line, t.Pos.Column)
}

func lookupIdent(ident string) TokenType {
	switch ident {
	case "int":
		return tokenInt
	case "bool":
		return tokenBool
	case "print":
		return tokenPrint
	case "if":
		return tokenIf
	case "else":
		return tokenElse
	case "while":
		return tokenWhile
	case "for":
		return tokenFor
	case "function":
		return tokenFunction
	case "return":
		return tokenReturn
	case "true":
		return tokenTrue
	case "false":
		return tokenFalse
	}
	return tokenIdent
}
