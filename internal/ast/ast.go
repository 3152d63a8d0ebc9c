// Package ast defines the abstract syntax produced by the Tiger parser and
// consumed by the semantic analyzer.
package ast

import "github.com/sunholo/tigerc/internal/symbol"

// Pos is a byte offset into the source file. The analyzer treats it as an
// opaque token attached to diagnostics.
type Pos int

// Node is the base interface for all AST nodes.
type Node interface {
	Position() Pos
}

// Exp is an expression node.
type Exp interface {
	Node
	expNode()
}

// Var is an lvalue node.
type Var interface {
	Node
	varNode()
}

// Dec is a declaration node inside a let.
type Dec interface {
	Node
	decNode()
}

// Ty is the right-hand side of a type declaration.
type Ty interface {
	Node
	tyNode()
}

// Oper enumerates the binary operators.
type Oper int

const (
	Plus Oper = iota
	Minus
	Times
	Divide
	Eq
	Neq
	Lt
	Le
	Gt
	Ge
)

func (o Oper) String() string {
	switch o {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Divide:
		return "/"
	case Eq:
		return "="
	case Neq:
		return "<>"
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	}
	return "?"
}

// Arithmetic reports whether the operator requires integer operands.
// Equality operators instead accept operands of any shared type.
func (o Oper) Arithmetic() bool { return o != Eq && o != Neq }

// Expressions

// NilExp is the null record literal.
type NilExp struct {
	Pos Pos
}

// IntExp is an integer literal.
type IntExp struct {
	Value int64
	Pos   Pos
}

// StringExp is a string literal.
type StringExp struct {
	Value string
	Pos   Pos
}

// VarExp reads an lvalue.
type VarExp struct {
	Var Var
}

// CallExp applies a named function to arguments.
type CallExp struct {
	Func symbol.Symbol
	Args []Exp
	Pos  Pos
}

// OpExp is a binary operation.
type OpExp struct {
	Left  Exp
	Op    Oper
	Right Exp
	Pos   Pos
}

// EField is one field initializer in a record literal.
type EField struct {
	Name symbol.Symbol
	Exp  Exp
	Pos  Pos
}

// RecordExp constructs a record of a named type.
type RecordExp struct {
	Fields []EField
	Type   symbol.Symbol
	Pos    Pos
}

// SeqExp evaluates expressions in order; its value is the last one's.
type SeqExp struct {
	Exps []Exp
	Pos  Pos
}

// AssignExp stores into an lvalue.
type AssignExp struct {
	Var Var
	Exp Exp
	Pos Pos
}

// IfExp is a conditional; Else is nil for the one-armed form.
type IfExp struct {
	Test Exp
	Then Exp
	Else Exp
	Pos  Pos
}

// WhileExp loops while Test is nonzero.
type WhileExp struct {
	Test Exp
	Body Exp
	Pos  Pos
}

// ForExp iterates an induction variable over an integer range.
type ForExp struct {
	Var    symbol.Symbol
	Escape bool
	Lo     Exp
	Hi     Exp
	Body   Exp
	Pos    Pos
}

// LetExp introduces declarations scoped to Body.
type LetExp struct {
	Decs []Dec
	Body Exp
	Pos  Pos
}

// ArrayExp constructs an array of a named type.
type ArrayExp struct {
	Type symbol.Symbol
	Size Exp
	Init Exp
	Pos  Pos
}

// BreakExp exits the nearest enclosing loop.
type BreakExp struct {
	Pos Pos
}

func (e *NilExp) expNode()    {}
func (e *IntExp) expNode()    {}
func (e *StringExp) expNode() {}
func (e *VarExp) expNode()    {}
func (e *CallExp) expNode()   {}
func (e *OpExp) expNode()     {}
func (e *RecordExp) expNode() {}
func (e *SeqExp) expNode()    {}
func (e *AssignExp) expNode() {}
func (e *IfExp) expNode()     {}
func (e *WhileExp) expNode()  {}
func (e *ForExp) expNode()    {}
func (e *LetExp) expNode()    {}
func (e *ArrayExp) expNode()  {}
func (e *BreakExp) expNode()  {}

func (e *NilExp) Position() Pos    { return e.Pos }
func (e *IntExp) Position() Pos    { return e.Pos }
func (e *StringExp) Position() Pos { return e.Pos }
func (e *VarExp) Position() Pos    { return e.Var.Position() }
func (e *CallExp) Position() Pos   { return e.Pos }
func (e *OpExp) Position() Pos     { return e.Pos }
func (e *RecordExp) Position() Pos { return e.Pos }
func (e *SeqExp) Position() Pos    { return e.Pos }
func (e *AssignExp) Position() Pos { return e.Pos }
func (e *IfExp) Position() Pos     { return e.Pos }
func (e *WhileExp) Position() Pos  { return e.Pos }
func (e *ForExp) Position() Pos    { return e.Pos }
func (e *LetExp) Position() Pos    { return e.Pos }
func (e *ArrayExp) Position() Pos  { return e.Pos }
func (e *BreakExp) Position() Pos  { return e.Pos }

// Lvalues

// SimpleVar is a bare variable reference.
type SimpleVar struct {
	Sym symbol.Symbol
	Pos Pos
}

// FieldVar selects a record field.
type FieldVar struct {
	Var Var
	Sym symbol.Symbol
	Pos Pos
}

// SubscriptVar indexes an array.
type SubscriptVar struct {
	Var   Var
	Index Exp
	Pos   Pos
}

func (v *SimpleVar) varNode()    {}
func (v *FieldVar) varNode()     {}
func (v *SubscriptVar) varNode() {}

func (v *SimpleVar) Position() Pos    { return v.Pos }
func (v *FieldVar) Position() Pos     { return v.Pos }
func (v *SubscriptVar) Position() Pos { return v.Pos }

// Declarations

// Field is a formal parameter or record-type field declaration.
type Field struct {
	Name   symbol.Symbol
	Escape bool
	Type   symbol.Symbol
	Pos    Pos
}

// TypeRef is a reference to a named type, used for annotations.
type TypeRef struct {
	Sym symbol.Symbol
	Pos Pos
}

// FunDec is a single function declaration; Result is nil for procedures.
type FunDec struct {
	Name   symbol.Symbol
	Params []Field
	Result *TypeRef
	Body   Exp
	Pos    Pos
}

func (d *FunDec) Position() Pos { return d.Pos }

// FunctionDec is a block of mutually recursive function declarations.
type FunctionDec struct {
	Functions []*FunDec
}

// VarDec declares a variable; Type is nil when the type is inferred from
// the initializer.
type VarDec struct {
	Name   symbol.Symbol
	Escape bool
	Type   *TypeRef
	Init   Exp
	Pos    Pos
}

// TypeDecl is a single type declaration inside a TypeDec block.
type TypeDecl struct {
	Name symbol.Symbol
	Ty   Ty
	Pos  Pos
}

// TypeDec is a block of mutually recursive type declarations.
type TypeDec struct {
	Types []*TypeDecl
}

func (d *FunctionDec) decNode() {}
func (d *VarDec) decNode()      {}
func (d *TypeDec) decNode()     {}

func (d *FunctionDec) Position() Pos {
	if len(d.Functions) > 0 {
		return d.Functions[0].Pos
	}
	return 0
}
func (d *VarDec) Position() Pos { return d.Pos }
func (d *TypeDec) Position() Pos {
	if len(d.Types) > 0 {
		return d.Types[0].Pos
	}
	return 0
}

// Type bodies

// NameTy aliases another named type.
type NameTy struct {
	Sym symbol.Symbol
	Pos Pos
}

// RecordTy declares a record type.
type RecordTy struct {
	Fields []Field
	Pos    Pos
}

// ArrayTy declares an array type over a named element type.
type ArrayTy struct {
	Sym symbol.Symbol
	Pos Pos
}

func (t *NameTy) tyNode()   {}
func (t *RecordTy) tyNode() {}
func (t *ArrayTy) tyNode()  {}

func (t *NameTy) Position() Pos   { return t.Pos }
func (t *RecordTy) Position() Pos { return t.Pos }
func (t *ArrayTy) Position() Pos  { return t.Pos }
