package semant

import (
	"testing"

	"github.com/sunholo/tigerc/internal/ast"
	"github.com/sunholo/tigerc/internal/diag"
	"github.com/sunholo/tigerc/internal/symbol"
	"github.com/sunholo/tigerc/internal/types"
)

// AST construction helpers. The helpers leave every position at zero; a
// test that checks a diagnostic's position sets it on the node directly.

func sym(s string) symbol.Symbol { return symbol.Intern(s) }

func intE(n int64) ast.Exp { return &ast.IntExp{Value: n} }

func strE(s string) ast.Exp { return &ast.StringExp{Value: s} }

func nilE() ast.Exp { return &ast.NilExp{} }

func varE(name string) ast.Exp {
	return &ast.VarExp{Var: simpleV(name)}
}

func simpleV(name string) ast.Var { return &ast.SimpleVar{Sym: sym(name)} }

func callE(name string, args ...ast.Exp) ast.Exp {
	return &ast.CallExp{Func: sym(name), Args: args}
}

func opE(left ast.Exp, op ast.Oper, right ast.Exp) ast.Exp {
	return &ast.OpExp{Left: left, Op: op, Right: right}
}

func seqE(exps ...ast.Exp) ast.Exp { return &ast.SeqExp{Exps: exps} }

func assignE(v ast.Var, e ast.Exp) ast.Exp { return &ast.AssignExp{Var: v, Exp: e} }

func letE(decs []ast.Dec, body ast.Exp) ast.Exp {
	return &ast.LetExp{Decs: decs, Body: body}
}

func varDec(name string, typ string, init ast.Exp) *ast.VarDec {
	d := &ast.VarDec{Name: sym(name), Init: init}
	if typ != "" {
		d.Type = &ast.TypeRef{Sym: sym(typ)}
	}
	return d
}

func typeDec(decls ...*ast.TypeDecl) *ast.TypeDec { return &ast.TypeDec{Types: decls} }

func aliasTy(name, target string) *ast.TypeDecl {
	return &ast.TypeDecl{Name: sym(name), Ty: &ast.NameTy{Sym: sym(target)}}
}

func recordTy(name string, fields ...ast.Field) *ast.TypeDecl {
	return &ast.TypeDecl{Name: sym(name), Ty: &ast.RecordTy{Fields: fields}}
}

func arrayTy(name, elem string) *ast.TypeDecl {
	return &ast.TypeDecl{Name: sym(name), Ty: &ast.ArrayTy{Sym: sym(elem)}}
}

func field(name, typ string) ast.Field {
	return ast.Field{Name: sym(name), Type: sym(typ)}
}

func funDec(name string, params []ast.Field, result string, body ast.Exp) *ast.FunDec {
	d := &ast.FunDec{Name: sym(name), Params: params, Body: body}
	if result != "" {
		d.Result = &ast.TypeRef{Sym: sym(result)}
	}
	return d
}

// check runs the whole analyzer over exp and returns the result type and
// the collected diagnostics.
func check(t *testing.T, exp ast.Exp) (types.Type, []diag.Diagnostic) {
	t.Helper()
	sink := diag.NewSink()
	result := TransProg(exp, sink)
	return result.Ty, sink.Diagnostics()
}

// codes projects diagnostics onto their codes, keeping order.
func codes(diags []diag.Diagnostic) []diag.Code {
	if len(diags) == 0 {
		return nil
	}
	out := make([]diag.Code, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}
