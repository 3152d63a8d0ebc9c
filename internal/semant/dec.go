package semant

import (
	"github.com/sirupsen/logrus"

	"github.com/sunholo/tigerc/internal/ast"
	"github.com/sunholo/tigerc/internal/diag"
	"github.com/sunholo/tigerc/internal/symbol"
	"github.com/sunholo/tigerc/internal/types"
)

// transDec checks one declaration and returns the extended environments.
func (c *Checker) transDec(venv VEnv, tenv TEnv, inLoop bool, dec ast.Dec) (VEnv, TEnv) {
	switch d := dec.(type) {
	case *ast.VarDec:
		return c.transVarDec(venv, tenv, inLoop, d), tenv

	case *ast.TypeDec:
		return venv, c.transTypeDecs(tenv, d.Types)

	case *ast.FunctionDec:
		return c.transFunDecs(venv, tenv, d.Functions), tenv
	}
	return venv, tenv
}

func (c *Checker) transVarDec(venv VEnv, tenv TEnv, inLoop bool, d *ast.VarDec) VEnv {
	init := c.transExp(venv, tenv, inLoop, d.Init)
	declared := init.Ty
	if d.Type != nil {
		declared = c.lookupType(tenv, d.Type.Sym, d.Type.Pos)
	}
	if types.Equal(declared, types.Nil) {
		// The record type of a nil initializer cannot be inferred.
		c.sink.Log(diag.NilInitialization(d.Pos, d.Name))
		declared = types.Top
	}
	if !types.Subtype(init.Ty, declared) && types.WellTyped(init.Ty) && types.WellTyped(declared) {
		c.sink.Log(diag.AssignmentMismatch(d.Pos, init.Ty, declared))
	}
	c.log.WithFields(logrus.Fields{"var": d.Name.Name(), "type": declared.String()}).Debug("bound variable")
	return venv.Insert(d.Name, &VarEntry{Type: declared})
}

// transFunDecs checks a block of mutually recursive function declarations:
// first every header is bound, then each body is checked with all headers
// visible and the loop flag cleared.
func (c *Checker) transFunDecs(venv VEnv, tenv TEnv, decs []*ast.FunDec) VEnv {
	sigs := make([]*FunEntry, len(decs))
	env := venv
	for i, f := range decs {
		seen := make(map[symbol.Symbol]bool, len(f.Params))
		formals := make([]types.Type, len(f.Params))
		for j, p := range f.Params {
			if seen[p.Name] {
				c.sink.Log(diag.ArgumentRedefined(p.Pos, f.Name, p.Name))
			}
			seen[p.Name] = true
			formals[j] = c.lookupType(tenv, p.Type, p.Pos)
		}
		result := types.Type(types.Unit)
		if f.Result != nil {
			result = c.lookupType(tenv, f.Result.Sym, f.Result.Pos)
		}
		sigs[i] = &FunEntry{Formals: formals, Result: result}
		env = env.Insert(f.Name, sigs[i])
	}

	for i, f := range decs {
		benv := env
		for j, p := range f.Params {
			benv = benv.Insert(p.Name, &VarEntry{Type: sigs[i].Formals[j]})
		}
		body := c.transExp(benv, tenv, false, f.Body)
		if f.Result == nil {
			if !types.Subtype(body.Ty, types.Unit) && types.WellTyped(body.Ty) {
				c.sink.Log(diag.NonUnitProcedure(f.Pos, f.Name, body.Ty))
			}
		} else if !types.Subtype(body.Ty, sigs[i].Result) && types.WellTyped(body.Ty) && types.WellTyped(sigs[i].Result) {
			c.sink.Log(diag.TypeMismatch(f.Body.Position(), body.Ty, sigs[i].Result))
		}
		c.log.WithField("function", f.Name.Name()).Debug("checked function body")
	}
	return env
}

// lookupType resolves a type annotation symbol.
func (c *Checker) lookupType(tenv TEnv, sym symbol.Symbol, pos ast.Pos) types.Type {
	if t, ok := tenv.Lookup(sym); ok {
		return t
	}
	c.sink.Log(diag.UnboundType(pos, sym))
	return types.Top
}
