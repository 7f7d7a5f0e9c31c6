package slang

// Node is implemented by every AST node.
type Node interface {
	Pos() Position
}

// Statement is the closed set of statement nodes.
type Statement interface {
	Node
	stmtNode()
}

// Expression is the closed set of expression nodes.
type Expression interface {
	Node
	exprNode()
}

// Program is the root node: an ordered sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() Position {
	if len(p.Statements) == 0 {
		return Position{}
	}
	return p.Statements[0].Pos()
}

// VarDeclStmt declares and initializes a variable: `type name = expr;`.
type VarDeclStmt struct {
	Type     Type
	Name     string
	Value    Expression
	position Position
}

func (s *VarDeclStmt) stmtNode()     {}
func (s *VarDeclStmt) Pos() Position { return s.position }

// AssignTarget is either a plain variable or an indexed array element.
type AssignTarget interface {
	targetNode()
}

// PlainTarget assigns to a variable.
type PlainTarget struct {
	Name string
}

func (PlainTarget) targetNode() {}

// IndexedTarget assigns to an array element.
type IndexedTarget struct {
	Name  string
	Index Expression
}

func (IndexedTarget) targetNode() {}

type AssignStmt struct {
	Target   AssignTarget
	Value    Expression
	position Position
}

func (s *AssignStmt) stmtNode()     {}
func (s *AssignStmt) Pos() Position { return s.position }

type PrintStmt struct {
	Expr     Expression
	position Position
}

func (s *PrintStmt) stmtNode()     {}
func (s *PrintStmt) Pos() Position { return s.position }

// IfStmt has an optional else branch; Alternate is nil when absent.
type IfStmt struct {
	Condition  Expression
	Consequent []Statement
	Alternate  []Statement
	position   Position
}

func (s *IfStmt) stmtNode()     {}
func (s *IfStmt) Pos() Position { return s.position }

type WhileStmt struct {
	Condition Expression
	Body      []Statement
	position  Position
}

func (s *WhileStmt) stmtNode()     {}
func (s *WhileStmt) Pos() Position { return s.position }

// ForStmt is the C-style header. Init is nil or a *VarDeclStmt/*AssignStmt,
// Condition is nil for an always-true loop, Update is nil or an assignment
// parsed without its trailing semicolon.
type ForStmt struct {
	Init      Statement
	Condition Expression
	Update    *AssignStmt
	Body      []Statement
	position  Position
}

func (s *ForStmt) stmtNode()     {}
func (s *ForStmt) Pos() Position { return s.position }

// Param is a typed function parameter.
type Param struct {
	Type Type
	Name string
}

// FunctionStmt declares a function. ReturnType is always TypeInt; the
// surface syntax has no way to spell anything else.
type FunctionStmt struct {
	Name       string
	Params     []Param
	ReturnType Type
	Body       []Statement
	position   Position
}

func (s *FunctionStmt) stmtNode()     {}
func (s *FunctionStmt) Pos() Position { return s.position }

// ReturnStmt has a nil Value for a bare `return;`.
type ReturnStmt struct {
	Value    Expression
	position Position
}

func (s *ReturnStmt) stmtNode()     {}
func (s *ReturnStmt) Pos() Position { return s.position }

type IntLiteral struct {
	Value    int
	position Position
}

func (e *IntLiteral) exprNode()     {}
func (e *IntLiteral) Pos() Position { return e.position }

type BoolLiteral struct {
	Value    bool
	position Position
}

func (e *BoolLiteral) exprNode()     {}
func (e *BoolLiteral) Pos() Position { return e.position }

type Identifier struct {
	Name     string
	position Position
}

func (e *Identifier) exprNode()     {}
func (e *Identifier) Pos() Position { return e.position }

type UnaryExpr struct {
	Operator TokenType
	Right    Expression
	position Position
}

func (e *UnaryExpr) exprNode()     {}
func (e *UnaryExpr) Pos() Position { return e.position }

type BinaryExpr struct {
	Left     Expression
	Operator TokenType
	Right    Expression
	position Position
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Pos() Position { return e.position }

type ArrayLiteral struct {
	Elements []Expression
	position Position
}

func (e *ArrayLiteral) exprNode()     {}
func (e *ArrayLiteral) Pos() Position { return e.position }

// IndexExpr reads an array element: `base[index]`.
type IndexExpr struct {
	Array    Expression
	Index    Expression
	position Position
}

func (e *IndexExpr) exprNode()     {}
func (e *IndexExpr) Pos() Position { return e.position }

type CallExpr struct {
	Name     string
	Args     []Expression
	position Position
}

func (e *CallExpr) exprNode()     {}
func (e *CallExpr) Pos() Position { return e.position }
