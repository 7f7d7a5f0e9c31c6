package slang

// Compile runs the full pipeline: tokenize, parse, analyze, generate. It
// is a pure function of the source text; each call builds its own token
// sequence, AST, and symbol table, so concurrent calls need no
// coordination. The first failing stage short-circuits the rest.
func Compile(source string) (string, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return "", err
	}

	program, err := Parse(tokens)
	if err != nil {
		return "", err
	}

	if err := Analyze(program); err != nil {
		return "", err
	}

	return Generate(program), nil
}
