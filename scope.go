package slang

// scope is one frame of the analyzer's symbol table. The program body uses
// a single flat frame; a child frame is pushed only for the duration of a
// function-body check, so parameters can shadow globals without leaking.
type scope struct {
	parent  *scope
	symbols map[string]Type
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, symbols: make(map[string]Type)}
}

// resolve walks the frame chain outward.
func (s *scope) resolve(name string) (Type, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if t, ok := cur.symbols[name]; ok {
			return t, true
		}
	}
	return TypeInt, false
}

// declare reports an error when the name is visible anywhere in the chain,
// so a local clashing with a global fails exactly like a global clashing
// with a global.
func (s *scope) declare(name string, t Type, pos Position) error {
	if _, ok := s.resolve(name); ok {
		return &SemanticError{Msg: "Variable '" + name + "' already declared", Pos: pos}
	}
	s.symbols[name] = t
	return nil
}

// bind inserts without a visibility check; parameter bindings are allowed
// to shadow same-named globals.
func (s *scope) bind(name string, t Type) {
	s.symbols[name] = t
}
