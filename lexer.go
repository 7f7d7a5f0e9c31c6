package slang

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Tokenize converts source text into the complete token sequence,
// terminated by an EOF token. It either returns the full sequence or the
// first lexical error; nothing is partially consumed.
func Tokenize(source string) ([]Token, error) {
	l := newLexer(source)
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == tokenEOF {
			return tokens, nil
		}
	}
}

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readRune()
	return l
}

func (l *lexer) readRune() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w

	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}

	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *lexer) next() (Token, error) {
	l.skipWhitespace()

	tok := Token{Pos: Position{Line: l.line, Column: l.column}}

	switch l.ch {
	case 0:
		tok.Type = tokenEOF
	case '+':
		tok = l.makeToken(tokenPlus, "+")
		l.readRune()
	case '-':
		tok = l.makeToken(tokenMinus, "-")
		l.readRune()
	case '*':
		tok = l.makeToken(tokenAsterisk, "*")
		l.readRune()
	case '/':
		tok = l.makeToken(tokenSlash, "/")
		l.readRune()
	case '%':
		tok = l.makeToken(tokenPercent, "%")
		l.readRune()
	case ';':
		tok = l.makeToken(tokenSemicolon, ";")
		l.readRune()
	case ',':
		tok = l.makeToken(tokenComma, ",")
		l.readRune()
	case '(':
		tok = l.makeToken(tokenLParen, "(")
		l.readRune()
	case ')':
		tok = l.makeToken(tokenRParen, ")")
		l.readRune()
	case '{':
		tok = l.makeToken(tokenLBrace, "{")
		l.readRune()
	case '}':
		tok = l.makeToken(tokenRBrace, "}")
		l.readRune()
	case '[':
		tok = l.makeToken(tokenLBracket, "[")
		l.readRune()
	case ']':
		tok = l.makeToken(tokenRBracket, "]")
		l.readRune()
	case '=':
		if l.peekRune() == '=' {
			l.readRune()
			tok = Token{Type: tokenEQ, Literal: "==", Pos: tok.Pos}
			l.readRune()
		} else {
			tok = l.makeToken(tokenAssign, "=")
			l.readRune()
		}
	case '!':
		if l.peekRune() == '=' {
			l.readRune()
			tok = Token{Type: tokenNotEQ, Literal: "!=", Pos: tok.Pos}
			l.readRune()
		} else {
			tok = l.makeToken(tokenBang, "!")
			l.readRune()
		}
	case '<':
		if l.peekRune() == '=' {
			l.readRune()
			tok = Token{Type: tokenLTE, Literal: "<=", Pos: tok.Pos}
			l.readRune()
		} else {
			tok = l.makeToken(tokenLT, "<")
			l.readRune()
		}
	case '>':
		if l.peekRune() == '=' {
			l.readRune()
			tok = Token{Type: tokenGTE, Literal: ">=", Pos: tok.Pos}
			l.readRune()
		} else {
			tok = l.makeToken(tokenGT, ">")
			l.readRune()
		}
	case '&':
		if l.peekRune() == '&' {
			l.readRune()
			tok = Token{Type: tokenAnd, Literal: "&&", Pos: tok.Pos}
			l.readRune()
		} else {
			return Token{}, &LexError{Msg: "Unexpected character '&' (did you mean '&&'?)", Pos: tok.Pos}
		}
	case '|':
		if l.peekRune() == '|' {
			l.readRune()
			tok = Token{Type: tokenOr, Literal: "||", Pos: tok.Pos}
			l.readRune()
		} else {
			return Token{}, &LexError{Msg: "Unexpected character '|' (did you mean '||'?)", Pos: tok.Pos}
		}
	default:
		switch {
		case isIdentifierStart(l.ch):
			literal := l.readIdentifier()
			tok.Type = lookupIdent(literal)
			tok.Literal = literal
		case unicode.IsDigit(l.ch):
			tok.Type = tokenNumber
			tok.Literal = l.readNumber()
		default:
			return Token{}, &LexError{Msg: fmt.Sprintf("Unexpected character %q", l.ch), Pos: tok.Pos}
		}
	}

	return tok, nil
}

func (l *lexer) currentOffset() int {
	return l.offset - l.width
}

func (l *lexer) makeToken(tt TokenType, literal string) Token {
	return Token{Type: tt, Literal: literal, Pos: Position{Line: l.line, Column: l.column}}
}

func (l *lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readRune()
	}
}

func (l *lexer) readIdentifier() string {
	start := l.currentOffset()
	for isIdentifierRune(l.peekRune()) {
		l.readRune()
	}
	literal := l.input[start:l.offset]
	l.readRune()
	return literal
}

func (l *lexer) readNumber() string {
	start := l.currentOffset()
	for unicode.IsDigit(l.peekRune()) {
		l.readRune()
	}
	literal := l.input[start:l.offset]
	l.readRune()
	return literal
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
