package slang

import "testing"

func FuzzCompileDoesNotPanic(f *testing.F) {
	f.Add("")
	f.Add("int x = 42;")
	f.Add("bool flag = true && !false;")
	f.Add("function f(int a, bool b) { return a; }")
	f.Add("for (int i = 0; i < 10; i = i + 1) { print(i); }")
	f.Add("int xs = [1, 2, 3];\nxs[0] = xs[1] + xs[2];")
	f.Add("if (true) { x = 1; } else { y = 2; }")
	f.Add("int x = ((((1))));")
	f.Add("function broken(")
	f.Add("int x = 1 &")
	f.Add("@#$%^")
	f.Add("for (;;) {}")
	f.Add(";;;;")

	f.Fuzz(func(t *testing.T, source string) {
		output, err := Compile(source)
		if err != nil && output != "" {
			t.Fatalf("non-empty output alongside error: %q", output)
		}
	})
}

func FuzzTokenizeRoundTripPositions(f *testing.F) {
	f.Add("int x = 1;\nbool b = x == 1;")
	f.Add("print(a[i](j));")
	f.Add("<=>=!===&&||")

	f.Fuzz(func(t *testing.T, source string) {
		tokens, err := Tokenize(source)
		if err != nil {
			return
		}
		if len(tokens) == 0 || tokens[len(tokens)-1].Type != tokenEOF {
			t.Fatalf("token stream not terminated by EOF: %v", tokens)
		}
		prev := Position{Line: 1}
		for _, tok := range tokens {
			if tok.Pos.Line < prev.Line {
				t.Fatalf("token positions went backwards: %v after %v", tok.Pos, prev)
			}
			prev = tok.Pos
		}
	})
}
