// Package types defines the Tiger type lattice: the primitive types, nominal
// record and array types, named forward references, and the TOP/BOTTOM
// absorbers used for error recovery.
package types

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sunholo/tigerc/internal/symbol"
)

// Type is a type in the Tiger type system.
type Type interface {
	String() string
	typeNode()
}

// basic covers the variants that carry no payload. Each is a singleton, so
// identity is pointer identity.
type basic struct {
	name string
}

func (b *basic) typeNode()      {}
func (b *basic) String() string { return b.name }

var (
	// Int is the type of integer literals and arithmetic.
	Int Type = &basic{"int"}
	// String is the type of string literals.
	String Type = &basic{"string"}
	// Unit is the type of statements and empty sequences.
	Unit Type = &basic{"unit"}
	// Nil is the type of the nil literal; a subtype of every record type.
	Nil Type = &basic{"nil"}
	// Top is the universal type. It marks a type error that has already
	// been reported; further checks against it are suppressed.
	Top Type = &basic{"<error>"}
	// Bottom is the empty type, given to break and to the unconstrained
	// operand of an equality comparison.
	Bottom Type = &basic{"<any>"}
)

// Field is one named component of a record type.
type Field struct {
	Name symbol.Symbol
	Type Type
}

// Record is a record type. Identity is nominal: two record types are the
// same type only when they share ID, never by structure.
type Record struct {
	Fields []Field
	ID     uuid.UUID

	sym   symbol.Symbol
	named bool
}

// NewRecord creates a record type with a fresh identity.
func NewRecord(fields []Field) *Record {
	return &Record{Fields: fields, ID: uuid.New()}
}

func (r *Record) typeNode() {}

func (r *Record) String() string {
	if r.named {
		return r.sym.Name()
	}
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.Name.Name() + ": " + f.Type.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// SetName stamps the declared name used when printing the type. The first
// stamp wins; later aliases do not rename the type.
func (r *Record) SetName(s symbol.Symbol) {
	if !r.named {
		r.sym, r.named = s, true
	}
}

// FieldType returns the declared type of the named field.
func (r *Record) FieldType(name symbol.Symbol) (Type, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// Array is an array type. Identity is nominal, as for Record.
type Array struct {
	Elem Type
	ID   uuid.UUID

	sym   symbol.Symbol
	named bool
}

// NewArray creates an array type with a fresh identity.
func NewArray(elem Type) *Array {
	return &Array{Elem: elem, ID: uuid.New()}
}

func (a *Array) typeNode() {}

func (a *Array) String() string {
	if a.named {
		return a.sym.Name()
	}
	return "array of " + a.Elem.String()
}

// SetName stamps the declared name used when printing the type.
func (a *Array) SetName(s symbol.Symbol) {
	if !a.named {
		a.sym, a.named = s, true
	}
}

// Name is a reference to a named type whose definition may not be known at
// the point of first use. Its slot is written at most once, by the
// type-declaration resolver; afterwards the slot holds a non-Name type.
type Name struct {
	Sym  symbol.Symbol
	slot Type
}

// NewName creates an unresolved named-type reference.
func NewName(s symbol.Symbol) *Name { return &Name{Sym: s} }

func (n *Name) typeNode()      {}
func (n *Name) String() string { return n.Sym.Name() }

// Binding returns the resolved type, if the slot has been written.
func (n *Name) Binding() (Type, bool) {
	if n.slot == nil {
		return nil, false
	}
	return n.slot, true
}

// Bind writes the resolution slot. The first write wins; rebinding an
// already-resolved name is a no-op, which makes re-running the resolver
// over a resolved environment harmless.
func (n *Name) Bind(t Type) {
	if n.slot == nil {
		n.slot = t
	}
}
