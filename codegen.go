package slang

import (
	"fmt"
	"strconv"
	"strings"
)

const indentUnit = "    "

// Generate lowers a previously analyzed program to Python source text. It
// assumes the AST is well formed and never rejects one.
func Generate(program *Program) string {
	g := &generator{}
	for _, stmt := range program.Statements {
		g.emitStatement(stmt)
	}
	return strings.Join(g.lines, "\n")
}

type generator struct {
	lines  []string
	indent int
}

func (g *generator) emit(line string) {
	g.lines = append(g.lines, strings.Repeat(indentUnit, g.indent)+line)
}

func (g *generator) emitStatement(stmt Statement) {
	switch s := stmt.(type) {
	case *VarDeclStmt:
		g.emit(fmt.Sprintf("%s: %s = %s", s.Name, s.Type, g.expression(s.Value)))

	case *AssignStmt:
		switch target := s.Target.(type) {
		case PlainTarget:
			g.emit(fmt.Sprintf("%s = %s", target.Name, g.expression(s.Value)))
		case IndexedTarget:
			g.emit(fmt.Sprintf("%s[%s] = %s", target.Name, g.expression(target.Index), g.expression(s.Value)))
		}

	case *PrintStmt:
		g.emit(fmt.Sprintf("print(%s)", g.expression(s.Expr)))

	case *IfStmt:
		g.emit(fmt.Sprintf("if %s:", g.expression(s.Condition)))
		g.emitBlock(s.Consequent)
		if s.Alternate != nil {
			g.emit("else:")
			g.emitBlock(s.Alternate)
		}

	case *WhileStmt:
		g.emit(fmt.Sprintf("while %s:", g.expression(s.Condition)))
		g.emitBlock(s.Body)

	case *ForStmt:
		g.emitFor(s)

	case *FunctionStmt:
		g.emitFunction(s)

	case *ReturnStmt:
		if s.Value == nil {
			g.emit("return")
		} else {
			g.emit("return " + g.expression(s.Value))
		}
	}
}

// emitBlock indents one level and emits pass when nothing renders, since
// Python rejects a guard line with no body.
func (g *generator) emitBlock(stmts []Statement) {
	g.indent++
	mark := len(g.lines)
	for _, stmt := range stmts {
		g.emitStatement(stmt)
	}
	if len(g.lines) == mark {
		g.emit("pass")
	}
	g.indent--
}

// emitFor desugars the C-style loop into a while: the init runs once
// before the loop, and the update runs at the end of every iteration, so
// it never runs when the initial condition already fails.
func (g *generator) emitFor(s *ForStmt) {
	if s.Init != nil {
		g.emitStatement(s.Init)
	}

	condition := "True"
	if s.Condition != nil {
		condition = g.expression(s.Condition)
	}
	g.emit(fmt.Sprintf("while %s:", condition))

	g.indent++
	mark := len(g.lines)
	for _, stmt := range s.Body {
		g.emitStatement(stmt)
	}
	if s.Update != nil {
		g.emitStatement(s.Update)
	}
	if len(g.lines) == mark {
		g.emit("pass")
	}
	g.indent--
}

func (g *generator) emitFunction(s *FunctionStmt) {
	params := make([]string, len(s.Params))
	for i, param := range s.Params {
		params[i] = fmt.Sprintf("%s: %s", param.Name, param.Type)
	}
	g.emit(fmt.Sprintf("def %s(%s) -> %s:", s.Name, strings.Join(params, ", "), s.ReturnType))

	g.indent++
	if len(s.Body) == 0 {
		g.emit("pass")
	} else {
		for _, stmt := range s.Body {
			g.emitStatement(stmt)
		}
	}
	g.indent--
	// Separator stays unindented so nested functions never leave a
	// whitespace-only line.
	g.lines = append(g.lines, "")
}

// expression renders an expression, wrapping every unary and binary node
// in parentheses so operator precedence never needs reconstructing.
func (g *generator) expression(expr Expression) string {
	switch e := expr.(type) {
	case *IntLiteral:
		return strconv.Itoa(e.Value)

	case *BoolLiteral:
		if e.Value {
			return "True"
		}
		return "False"

	case *Identifier:
		return e.Name

	case *UnaryExpr:
		return fmt.Sprintf("(%s %s)", pythonOperator(e.Operator), g.expression(e.Right))

	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", g.expression(e.Left), pythonOperator(e.Operator), g.expression(e.Right))

	case *ArrayLiteral:
		elements := make([]string, len(e.Elements))
		for i, elem := range e.Elements {
			elements[i] = g.expression(elem)
		}
		return "[" + strings.Join(elements, ", ") + "]"

	case *IndexExpr:
		return fmt.Sprintf("%s[%s]", g.expression(e.Array), g.expression(e.Index))

	case *CallExpr:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = g.expression(arg)
		}
		return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
	}
	return ""
}

// pythonOperator maps operator tokens to their Python spellings. Division
// must floor-divide to stay inside int, and the logical connectives are
// keywords rather than bitwise operators.
func pythonOperator(tt TokenType) string {
	switch tt {
	case tokenSlash:
		return "//"
	case tokenAnd:
		return "and"
	case tokenOr:
		return "or"
	case tokenBang:
		return "not"
	}
	return string(tt)
}
