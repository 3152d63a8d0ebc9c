package semant

import (
	"github.com/sirupsen/logrus"

	"github.com/sunholo/tigerc/internal/ast"
	"github.com/sunholo/tigerc/internal/diag"
	"github.com/sunholo/tigerc/internal/symbol"
	"github.com/sunholo/tigerc/internal/types"
)

// transTypeDecs converts a block of mutually recursive type declarations
// into an extended type environment in which every name reaches a concrete
// type.
//
// Pass 1 introduces a preliminary type per declaration, using unresolved
// Name references for symbols that are not bound yet. Pass 2 walks every
// Name reachable from the new bindings and writes its resolution slot,
// collapsing pure alias cycles and references to nowhere into Top. Cycles
// that pass through a record or array are the intended way to declare
// recursive data and are not cycles here: the walk stops at the record or
// array without descending into it.
func (c *Checker) transTypeDecs(tenv TEnv, decs []*ast.TypeDecl) TEnv {
	type introduced struct {
		name symbol.Symbol
		pos  ast.Pos
		ty   types.Type
	}

	seen := make(map[symbol.Symbol]bool, len(decs))
	var intro []introduced
	env := tenv
	for _, d := range decs {
		if seen[d.Name] {
			c.sink.Log(diag.TypeRedefined(d.Pos, d.Name))
			continue
		}
		seen[d.Name] = true
		ty := c.transTy(env, d.Ty)
		switch t := ty.(type) {
		case *types.Record:
			t.SetName(d.Name)
		case *types.Array:
			t.SetName(d.Name)
		}
		env = env.Insert(d.Name, ty)
		intro = append(intro, introduced{name: d.Name, pos: d.Pos, ty: ty})
		c.log.WithFields(logrus.Fields{"type": d.Name.Name(), "body": ast.Sprint(d.Ty)}).Debug("introduced type")
	}

	for _, in := range intro {
		switch t := in.ty.(type) {
		case *types.Name:
			// An alias: walk from the declared name so a cycle report
			// carries it.
			c.resolveChain(env, in.pos, []symbol.Symbol{in.name}, t)
		case *types.Record:
			for _, f := range t.Fields {
				if n, ok := f.Type.(*types.Name); ok {
					c.resolveChain(env, in.pos, nil, n)
				}
			}
		case *types.Array:
			if n, ok := t.Elem.(*types.Name); ok {
				c.resolveChain(env, in.pos, nil, n)
			}
		}
	}
	return env
}

// transTy builds the preliminary type for a declaration body. Symbols not
// yet bound become unresolved Name references for pass 2 to stitch.
func (c *Checker) transTy(tenv TEnv, ty ast.Ty) types.Type {
	switch t := ty.(type) {
	case *ast.NameTy:
		return lookupOrFresh(tenv, t.Sym)
	case *ast.RecordTy:
		fields := make([]types.Field, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = types.Field{Name: f.Name, Type: lookupOrFresh(tenv, f.Type)}
		}
		return types.NewRecord(fields)
	case *ast.ArrayTy:
		return types.NewArray(lookupOrFresh(tenv, t.Sym))
	}
	return types.Top
}

func lookupOrFresh(tenv TEnv, sym symbol.Symbol) types.Type {
	if t, ok := tenv.Lookup(sym); ok {
		return t
	}
	return types.NewName(sym)
}

// resolveChain walks a chain of named-type references until it reaches a
// structural type, then writes that type into every reference on the path,
// so a resolved Name's slot never holds another Name. Revisiting an
// unresolved reference on the current path is a pure alias cycle: it is
// reported once and every participant collapses to Top. syms accumulates
// the names for that report.
func (c *Checker) resolveChain(tenv TEnv, pos ast.Pos, syms []symbol.Symbol, start types.Type) {
	var path []*types.Name
	cur := start
	for {
		n, ok := cur.(*types.Name)
		if !ok {
			for _, p := range path {
				p.Bind(cur)
			}
			return
		}
		if bound, ok := n.Binding(); ok {
			for _, p := range path {
				p.Bind(bound)
			}
			return
		}
		for _, p := range path {
			if p == n {
				c.sink.Log(diag.CyclicTypeDec(pos, dedupeSyms(syms)))
				for _, q := range path {
					q.Bind(types.Top)
				}
				return
			}
		}
		path = append(path, n)
		syms = append(syms, n.Sym)
		next, ok := tenv.Lookup(n.Sym)
		if !ok {
			c.sink.Log(diag.UnresolvedType(pos, n.Sym))
			for _, p := range path {
				p.Bind(types.Top)
			}
			return
		}
		cur = next
	}
}

func dedupeSyms(syms []symbol.Symbol) []symbol.Symbol {
	seen := make(map[symbol.Symbol]bool, len(syms))
	out := syms[:0:0]
	for _, s := range syms {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
