package slang

import (
	"fmt"
	"strings"
)

// DumpTokens renders the token sequence one token per line, for the
// driver's -tokens flag.
func DumpTokens(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DumpAST renders the program as an indented tree, for the driver's -ast
// flag.
func DumpAST(program *Program) string {
	d := &dumper{}
	d.line(0, "Program")
	for _, stmt := range program.Statements {
		d.statement(1, stmt)
	}
	return d.sb.String()
}

type dumper struct {
	sb strings.Builder
}

func (d *dumper) line(depth int, format string, args ...any) {
	d.sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(&d.sb, format, args...)
	d.sb.WriteByte('\n')
}

func (d *dumper) statement(depth int, stmt Statement) {
	switch s := stmt.(type) {
	case *VarDeclStmt:
		d.line(depth, "VarDecl %s %s", s.Type, s.Name)
		d.expression(depth+1, s.Value)
	case *AssignStmt:
		switch target := s.Target.(type) {
		case PlainTarget:
			d.line(depth, "Assign %s", target.Name)
		case IndexedTarget:
			d.line(depth, "Assign %s[...]", target.Name)
			d.expression(depth+1, target.Index)
		}
		d.expression(depth+1, s.Value)
	case *PrintStmt:
		d.line(depth, "Print")
		d.expression(depth+1, s.Expr)
	case *IfStmt:
		d.line(depth, "If")
		d.expression(depth+1, s.Condition)
		d.line(depth+1, "Then")
		for _, stmt := range s.Consequent {
			d.statement(depth+2, stmt)
		}
		if s.Alternate != nil {
			d.line(depth+1, "Else")
			for _, stmt := range s.Alternate {
				d.statement(depth+2, stmt)
			}
		}
	case *WhileStmt:
		d.line(depth, "While")
		d.expression(depth+1, s.Condition)
		for _, stmt := range s.Body {
			d.statement(depth+1, stmt)
		}
	case *ForStmt:
		d.line(depth, "For")
		if s.Init != nil {
			d.line(depth+1, "Init")
			d.statement(depth+2, s.Init)
		}
		if s.Condition != nil {
			d.line(depth+1, "Condition")
			d.expression(depth+2, s.Condition)
		}
		if s.Update != nil {
			d.line(depth+1, "Update")
			d.statement(depth+2, s.Update)
		}
		d.line(depth+1, "Body")
		for _, stmt := range s.Body {
			d.statement(depth+2, stmt)
		}
	case *FunctionStmt:
		params := make([]string, len(s.Params))
		for i, param := range s.Params {
			params[i] = param.Type.String() + " " + param.Name
		}
		d.line(depth, "Function %s(%s) -> %s", s.Name, strings.Join(params, ", "), s.ReturnType)
		for _, stmt := range s.Body {
			d.statement(depth+1, stmt)
		}
	case *ReturnStmt:
		d.line(depth, "Return")
		if s.Value != nil {
			d.expression(depth+1, s.Value)
		}
	}
}

func (d *dumper) expression(depth int, expr Expression) {
	switch e := expr.(type) {
	case *IntLiteral:
		d.line(depth, "Int %d", e.Value)
	case *BoolLiteral:
		d.line(depth, "Bool %t", e.Value)
	case *Identifier:
		d.line(depth, "Ident %s", e.Name)
	case *UnaryExpr:
		d.line(depth, "Unary %s", e.Operator)
		d.expression(depth+1, e.Right)
	case *BinaryExpr:
		d.line(depth, "Binary %s", e.Operator)
		d.expression(depth+1, e.Left)
		d.expression(depth+1, e.Right)
	case *ArrayLiteral:
		d.line(depth, "Array (%d elements)", len(e.Elements))
		for _, elem := range e.Elements {
			d.expression(depth+1, elem)
		}
	case *IndexExpr:
		d.line(depth, "Index")
		d.expression(depth+1, e.Array)
		d.expression(depth+1, e.Index)
	case *CallExpr:
		d.line(depth, "Call %s", e.Name)
		for _, arg := range e.Args {
			d.expression(depth+1, arg)
		}
	}
}
