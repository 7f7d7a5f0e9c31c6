package slang

import "fmt"

// Analyze walks the program depth-first and left to right, enforcing the
// scope and type rules. It returns the first violation found and never
// mutates the AST.
func Analyze(program *Program) error {
	a := &analyzer{scope: newScope(nil)}
	for _, stmt := range program.Statements {
		if err := a.checkStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

type analyzer struct {
	scope *scope
}

func (a *analyzer) checkStatement(stmt Statement) error {
	switch s := stmt.(type) {
	case *VarDeclStmt:
		return a.checkVarDecl(s)
	case *AssignStmt:
		return a.checkAssign(s)
	case *PrintStmt:
		_, err := a.checkExpression(s.Expr)
		return err
	case *IfStmt:
		return a.checkIf(s)
	case *WhileStmt:
		return a.checkWhile(s)
	case *ForStmt:
		return a.checkFor(s)
	case *FunctionStmt:
		return a.checkFunction(s)
	case *ReturnStmt:
		if s.Value == nil {
			return nil
		}
		_, err := a.checkExpression(s.Value)
		return err
	default:
		return &SemanticError{Msg: fmt.Sprintf("unknown statement type %T", stmt), Pos: stmt.Pos()}
	}
}

// checkVarDecl type-checks the initializer before the name becomes
// visible, so `int x = x;` fails as an undefined use.
func (a *analyzer) checkVarDecl(s *VarDeclStmt) error {
	valueType, err := a.checkExpression(s.Value)
	if err != nil {
		return err
	}
	if valueType != s.Type {
		return &SemanticError{
			Msg: fmt.Sprintf("Type mismatch: cannot assign %s to %s", valueType, s.Type),
			Pos: s.Pos(),
		}
	}
	return a.scope.declare(s.Name, s.Type, s.Pos())
}

func (a *analyzer) checkAssign(s *AssignStmt) error {
	switch target := s.Target.(type) {
	case PlainTarget:
		varType, ok := a.scope.resolve(target.Name)
		if !ok {
			return &SemanticError{Msg: "Undefined variable '" + target.Name + "'", Pos: s.Pos()}
		}
		valueType, err := a.checkExpression(s.Value)
		if err != nil {
			return err
		}
		if valueType != varType {
			return &SemanticError{
				Msg: fmt.Sprintf("Type mismatch: cannot assign %s to %s", valueType, varType),
				Pos: s.Pos(),
			}
		}
		return nil

	case IndexedTarget:
		if _, ok := a.scope.resolve(target.Name); !ok {
			return &SemanticError{Msg: "Undefined variable '" + target.Name + "'", Pos: s.Pos()}
		}
		// The index expression only has to be well-formed; arrays carry no
		// element typing beyond the int-only store rule below.
		if _, err := a.checkExpression(target.Index); err != nil {
			return err
		}
		valueType, err := a.checkExpression(s.Value)
		if err != nil {
			return err
		}
		if valueType != TypeInt {
			return &SemanticError{
				Msg: fmt.Sprintf("Type mismatch: cannot assign %s to array element", valueType),
				Pos: s.Pos(),
			}
		}
		return nil

	default:
		return &SemanticError{Msg: fmt.Sprintf("unknown assignment target %T", s.Target), Pos: s.Pos()}
	}
}

// Branch bodies share the enclosing flat scope: declarations inside a
// branch stay visible after it, and clashes across branches are errors.
func (a *analyzer) checkIf(s *IfStmt) error {
	condType, err := a.checkExpression(s.Condition)
	if err != nil {
		return err
	}
	if condType != TypeBool {
		return &SemanticError{
			Msg: fmt.Sprintf("if condition must be bool, got %s", condType),
			Pos: s.Condition.Pos(),
		}
	}
	for _, stmt := range s.Consequent {
		if err := a.checkStatement(stmt); err != nil {
			return err
		}
	}
	for _, stmt := range s.Alternate {
		if err := a.checkStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (a *analyzer) checkWhile(s *WhileStmt) error {
	condType, err := a.checkExpression(s.Condition)
	if err != nil {
		return err
	}
	if condType != TypeBool {
		return &SemanticError{
			Msg: fmt.Sprintf("while condition must be bool, got %s", condType),
			Pos: s.Condition.Pos(),
		}
	}
	for _, stmt := range s.Body {
		if err := a.checkStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// checkFor checks the condition for well-formedness only; unlike if and
// while it is not required to be bool. Tests lock this asymmetry in.
func (a *analyzer) checkFor(s *ForStmt) error {
	if s.Init != nil {
		if err := a.checkStatement(s.Init); err != nil {
			return err
		}
	}
	if s.Condition != nil {
		if _, err := a.checkExpression(s.Condition); err != nil {
			return err
		}
	}
	if s.Update != nil {
		if err := a.checkStatement(s.Update); err != nil {
			return err
		}
	}
	for _, stmt := range s.Body {
		if err := a.checkStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// checkFunction declares the function name first so recursive bodies can
// refer to it, then checks the body in a child frame holding the
// parameters. Popping the frame afterwards means nothing declared inside
// the body survives it.
func (a *analyzer) checkFunction(s *FunctionStmt) error {
	if err := a.scope.declare(s.Name, s.ReturnType, s.Pos()); err != nil {
		return err
	}

	a.scope = newScope(a.scope)
	for _, param := range s.Params {
		a.scope.bind(param.Name, param.Type)
	}
	for _, stmt := range s.Body {
		if err := a.checkStatement(stmt); err != nil {
			a.scope = a.scope.parent
			return err
		}
	}
	a.scope = a.scope.parent
	return nil
}

func (a *analyzer) checkExpression(expr Expression) (Type, error) {
	switch e := expr.(type) {
	case *IntLiteral:
		return TypeInt, nil

	case *BoolLiteral:
		return TypeBool, nil

	case *Identifier:
		t, ok := a.scope.resolve(e.Name)
		if !ok {
			return TypeInt, &SemanticError{Msg: "Undefined variable '" + e.Name + "'", Pos: e.Pos()}
		}
		return t, nil

	case *UnaryExpr:
		return a.checkUnary(e)

	case *BinaryExpr:
		return a.checkBinary(e)

	case *ArrayLiteral:
		// Elements are checked individually but not against each other;
		// the whole literal types as int.
		for _, elem := range e.Elements {
			if _, err := a.checkExpression(elem); err != nil {
				return TypeInt, err
			}
		}
		return TypeInt, nil

	case *IndexExpr:
		if _, err := a.checkExpression(e.Array); err != nil {
			return TypeInt, err
		}
		if _, err := a.checkExpression(e.Index); err != nil {
			return TypeInt, err
		}
		return TypeInt, nil

	case *CallExpr:
		// Arguments are checked individually; the callee is not matched
		// against its declaration and every call types as int.
		for _, arg := range e.Args {
			if _, err := a.checkExpression(arg); err != nil {
				return TypeInt, err
			}
		}
		return TypeInt, nil

	default:
		return TypeInt, &SemanticError{Msg: fmt.Sprintf("unknown expression type %T", expr), Pos: expr.Pos()}
	}
}

func (a *analyzer) checkUnary(e *UnaryExpr) (Type, error) {
	operandType, err := a.checkExpression(e.Right)
	if err != nil {
		return TypeInt, err
	}
	switch e.Operator {
	case tokenBang:
		if operandType != TypeBool {
			return TypeInt, &SemanticError{
				Msg: fmt.Sprintf("Operator '!' requires bool operand, got %s", operandType),
				Pos: e.Pos(),
			}
		}
		return TypeBool, nil
	case tokenMinus:
		if operandType != TypeInt {
			return TypeInt, &SemanticError{
				Msg: fmt.Sprintf("Operator '-' requires int operand, got %s", operandType),
				Pos: e.Pos(),
			}
		}
		return TypeInt, nil
	}
	return TypeInt, &SemanticError{Msg: fmt.Sprintf("unknown unary operator %s", e.Operator), Pos: e.Pos()}
}

func (a *analyzer) checkBinary(e *BinaryExpr) (Type, error) {
	leftType, err := a.checkExpression(e.Left)
	if err != nil {
		return TypeInt, err
	}
	rightType, err := a.checkExpression(e.Right)
	if err != nil {
		return TypeInt, err
	}

	switch e.Operator {
	case tokenPlus, tokenMinus, tokenAsterisk, tokenSlash, tokenPercent:
		if leftType != TypeInt || rightType != TypeInt {
			return TypeInt, &SemanticError{
				Msg: fmt.Sprintf("Binary operation '%s' requires int operands", e.Operator),
				Pos: e.Pos(),
			}
		}
		return TypeInt, nil

	case tokenLT, tokenLTE, tokenGT, tokenGTE:
		if leftType != TypeInt || rightType != TypeInt {
			return TypeInt, &SemanticError{
				Msg: fmt.Sprintf("Comparison '%s' requires int operands", e.Operator),
				Pos: e.Pos(),
			}
		}
		return TypeBool, nil

	case tokenEQ, tokenNotEQ:
		if leftType != rightType {
			return TypeInt, &SemanticError{
				Msg: fmt.Sprintf("Comparison '%s' requires operands of the same type", e.Operator),
				Pos: e.Pos(),
			}
		}
		return TypeBool, nil

	case tokenAnd, tokenOr:
		if leftType != TypeBool || rightType != TypeBool {
			return TypeInt, &SemanticError{
				Msg: fmt.Sprintf("Logical operation '%s' requires bool operands", e.Operator),
				Pos: e.Pos(),
			}
		}
		return TypeBool, nil
	}

	return TypeInt, &SemanticError{Msg: fmt.Sprintf("unknown binary operator %s", e.Operator), Pos: e.Pos()}
}
