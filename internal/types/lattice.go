package types

// Actual follows Name indirection until a structural type is reached. An
// unresolved Name is an error that the resolver has already reported, so it
// collapses to Top rather than failing.
func Actual(t Type) Type {
	for {
		n, ok := t.(*Name)
		if !ok {
			return t
		}
		b, ok := n.Binding()
		if !ok {
			return Top
		}
		t = b
	}
}

// Subtype reports whether a value of type a may be used where b is
// expected: Bottom is below everything, everything is below Top, Nil is
// below every record type, and otherwise the two must be the same nominal
// type.
func Subtype(a, b Type) bool {
	a, b = Actual(a), Actual(b)
	if a == b {
		return true
	}
	if a == Bottom || b == Top {
		return true
	}
	if a == Nil {
		_, ok := b.(*Record)
		return ok
	}
	switch x := a.(type) {
	case *Record:
		if y, ok := b.(*Record); ok {
			return x.ID == y.ID
		}
	case *Array:
		if y, ok := b.(*Array); ok {
			return x.ID == y.ID
		}
	}
	return false
}

// Join is the least upper bound of a and b; Top when the two are unrelated.
func Join(a, b Type) Type {
	if Subtype(a, b) {
		return b
	}
	if Subtype(b, a) {
		return a
	}
	return Top
}

// Equal checks strict type identity, with no Nil-record or Bottom
// allowance. It backs the rules that must tell Nil apart from a record
// type, such as rejecting nil initializers without an annotation.
func Equal(a, b Type) bool {
	a, b = Actual(a), Actual(b)
	if a == b {
		return true
	}
	switch x := a.(type) {
	case *Record:
		if y, ok := b.(*Record); ok {
			return x.ID == y.ID
		}
	case *Array:
		if y, ok := b.(*Array); ok {
			return x.ID == y.ID
		}
	}
	return false
}

// WellTyped reports whether t is a real type rather than the residue of an
// already-reported error.
func WellTyped(t Type) bool { return Actual(t) != Top }
