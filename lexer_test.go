package slang

import (
	"errors"
	"strings"
	"testing"
)

func TestTokenizeDeclaration(t *testing.T) {
	tokens, err := Tokenize("int x = 42;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		tt      TokenType
		literal string
		line    int
		column  int
	}{
		{tokenInt, "int", 1, 1},
		{tokenIdent, "x", 1, 5},
		{tokenAssign, "=", 1, 7},
		{tokenNumber, "42", 1, 9},
		{tokenSemicolon, ";", 1, 11},
		{tokenEOF, "", 1, 11},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, w := range want {
		tok := tokens[i]
		if tok.Type != w.tt || tok.Literal != w.literal {
			t.Fatalf("token %d: expected %s %q, got %s %q", i, w.tt, w.literal, tok.Type, tok.Literal)
		}
		if tok.Pos.Line != w.line || tok.Pos.Column != w.column {
			t.Fatalf("token %d (%s): expected position %d:%d, got %d:%d",
				i, tok.Type, w.line, w.column, tok.Pos.Line, tok.Pos.Column)
		}
	}
}

func TestTokenizeKeywords(t *testing.T) {
	source := "int bool print if else while for function return true false"
	tokens, err := Tokenize(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []TokenType{
		tokenInt, tokenBool, tokenPrint, tokenIf, tokenElse, tokenWhile,
		tokenFor, tokenFunction, tokenReturn, tokenTrue, tokenFalse, tokenEOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
}

func TestTokenizeKeywordPrefixIsIdentifier(t *testing.T) {
	tokens, err := Tokenize("integer iffy format truelove")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tok := range tokens[:4] {
		if tok.Type != tokenIdent {
			t.Fatalf("expected IDENT for %q, got %s", tok.Literal, tok.Type)
		}
	}
}

func TestTokenizeTwoCharOperators(t *testing.T) {
	tests := []struct {
		source string
		tt     TokenType
	}{
		{"==", tokenEQ},
		{"!=", tokenNotEQ},
		{"<=", tokenLTE},
		{">=", tokenGTE},
		{"&&", tokenAnd},
		{"||", tokenOr},
	}
	for _, tc := range tests {
		tokens, err := Tokenize(tc.source)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.source, err)
		}
		if len(tokens) != 2 {
			t.Fatalf("%q: expected operator and EOF, got %d tokens", tc.source, len(tokens))
		}
		if tokens[0].Type != tc.tt || tokens[0].Literal != tc.source {
			t.Fatalf("%q: expected %s, got %s %q", tc.source, tc.tt, tokens[0].Type, tokens[0].Literal)
		}
	}
}

func TestTokenizeSingleCharOperatorBeforeOther(t *testing.T) {
	tokens, err := Tokenize("a = b == c < d <= e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TokenType{
		tokenIdent, tokenAssign, tokenIdent, tokenEQ, tokenIdent,
		tokenLT, tokenIdent, tokenLTE, tokenIdent, tokenEOF,
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
}

func TestTokenizeLoneAmpersand(t *testing.T) {
	_, err := Tokenize("a & b")
	if err == nil {
		t.Fatalf("expected error for lone &")
	}
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected LexError, got %T", err)
	}
	if lexErr.Msg != "Unexpected character '&' (did you mean '&&'?)" {
		t.Fatalf("unexpected message: %q", lexErr.Msg)
	}
	if lexErr.Pos.Line != 1 || lexErr.Pos.Column != 3 {
		t.Fatalf("expected position 1:3, got %d:%d", lexErr.Pos.Line, lexErr.Pos.Column)
	}
}

func TestTokenizeLonePipe(t *testing.T) {
	_, err := Tokenize("a | b")
	if err == nil {
		t.Fatalf("expected error for lone |")
	}
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected LexError, got %T", err)
	}
	if lexErr.Msg != "Unexpected character '|' (did you mean '||'?)" {
		t.Fatalf("unexpected message: %q", lexErr.Msg)
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("int x = 1 @ 2;")
	if err == nil {
		t.Fatalf("expected error for @")
	}
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected LexError, got %T", err)
	}
	if !strings.Contains(lexErr.Msg, "Unexpected character") || !strings.Contains(lexErr.Msg, "@") {
		t.Fatalf("unexpected message: %q", lexErr.Msg)
	}
}

func TestTokenizeMultiLinePositions(t *testing.T) {
	tokens, err := Tokenize("int x = 1;\nbool b = true;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	boolTok := tokens[5]
	if boolTok.Type != tokenBool {
		t.Fatalf("expected BOOL at index 5, got %s", boolTok.Type)
	}
	if boolTok.Pos.Line != 2 || boolTok.Pos.Column != 1 {
		t.Fatalf("expected position 2:1, got %d:%d", boolTok.Pos.Line, boolTok.Pos.Column)
	}
	trueTok := tokens[8]
	if trueTok.Type != tokenTrue {
		t.Fatalf("expected TRUE at index 8, got %s", trueTok.Type)
	}
	if trueTok.Pos.Line != 2 || trueTok.Pos.Column != 10 {
		t.Fatalf("expected position 2:10, got %d:%d", trueTok.Pos.Line, trueTok.Pos.Column)
	}
}

func TestTokenizeIdentifierWithUnderscoresAndDigits(t *testing.T) {
	tokens, err := Tokenize("_private x2 total_sum3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"_private", "x2", "total_sum3"}
	for i, literal := range want {
		if tokens[i].Type != tokenIdent || tokens[i].Literal != literal {
			t.Fatalf("token %d: expected IDENT %q, got %s %q", i, literal, tokens[i].Type, tokens[i].Literal)
		}
	}
}

func TestTokenizeNumberThenIdentifier(t *testing.T) {
	tokens, err := Tokenize("123abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Type != tokenNumber || tokens[0].Literal != "123" {
		t.Fatalf("expected NUMBER \"123\", got %s %q", tokens[0].Type, tokens[0].Literal)
	}
	if tokens[1].Type != tokenIdent || tokens[1].Literal != "abc" {
		t.Fatalf("expected IDENT \"abc\", got %s %q", tokens[1].Type, tokens[1].Literal)
	}
}

func TestTokenizeEmptySource(t *testing.T) {
	tokens, err := Tokenize("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Type != tokenEOF {
		t.Fatalf("expected a single EOF token, got %v", tokens)
	}
}

func TestTokenizeWhitespaceOnly(t *testing.T) {
	tokens, err := Tokenize("  \t\r\n \n\t ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Type != tokenEOF {
		t.Fatalf("expected a single EOF token, got %v", tokens)
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	source := "function f(int a, bool b) { return a; }\nint y = f(1, true);"
	first, err := Tokenize(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Tokenize(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("token counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("token %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}
