// Package astjson decodes the serialized AST documents that the upstream
// parser hands to the analyzer. Documents are YAML, which makes plain JSON
// accepted as well. Decoding is all-or-nothing: a malformed node fails the
// whole document with an error naming the node's path.
package astjson

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sunholo/tigerc/internal/ast"
	"github.com/sunholo/tigerc/internal/symbol"
)

// Decode parses one serialized expression document.
func Decode(src []byte) (ast.Exp, error) {
	var doc any
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("astjson: %w", err)
	}
	return decodeExp(doc, "$")
}

var opers = map[string]ast.Oper{
	"+":  ast.Plus,
	"-":  ast.Minus,
	"*":  ast.Times,
	"/":  ast.Divide,
	"=":  ast.Eq,
	"<>": ast.Neq,
	"<":  ast.Lt,
	"<=": ast.Le,
	">":  ast.Gt,
	">=": ast.Ge,
}

type node struct {
	m    map[string]any
	path string
}

func asNode(v any, path string) (node, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return node{}, fmt.Errorf("astjson: %s: expected a mapping, found %T", path, v)
	}
	return node{m: m, path: path}, nil
}

func (n node) kind() (string, error) {
	return n.str("kind")
}

func (n node) str(key string) (string, error) {
	v, ok := n.m[key]
	if !ok {
		return "", fmt.Errorf("astjson: %s: missing %q", n.path, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("astjson: %s.%s: expected a string, found %T", n.path, key, v)
	}
	return s, nil
}

func (n node) sym(key string) (symbol.Symbol, error) {
	s, err := n.str(key)
	if err != nil {
		return symbol.Symbol{}, err
	}
	return symbol.Intern(s), nil
}

func (n node) pos() ast.Pos {
	switch v := n.m["pos"].(type) {
	case int:
		return ast.Pos(v)
	case int64:
		return ast.Pos(v)
	case uint64:
		return ast.Pos(v)
	}
	return 0
}

func (n node) boolOpt(key string) bool {
	b, _ := n.m[key].(bool)
	return b
}

func (n node) child(key string) (any, bool) {
	v, ok := n.m[key]
	return v, ok && v != nil
}

func (n node) exp(key string) (ast.Exp, error) {
	v, ok := n.child(key)
	if !ok {
		return nil, fmt.Errorf("astjson: %s: missing %q", n.path, key)
	}
	return decodeExp(v, n.path+"."+key)
}

func (n node) lvalue(key string) (ast.Var, error) {
	v, ok := n.child(key)
	if !ok {
		return nil, fmt.Errorf("astjson: %s: missing %q", n.path, key)
	}
	return decodeVar(v, n.path+"."+key)
}

func (n node) list(key string) ([]any, error) {
	v, ok := n.m[key]
	if !ok || v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("astjson: %s.%s: expected a sequence, found %T", n.path, key, v)
	}
	return items, nil
}

func (n node) typeRef(key string) (*ast.TypeRef, error) {
	v, ok := n.child(key)
	if !ok {
		return nil, nil
	}
	ref, err := asNode(v, n.path+"."+key)
	if err != nil {
		return nil, err
	}
	sym, err := ref.sym("name")
	if err != nil {
		return nil, err
	}
	return &ast.TypeRef{Sym: sym, Pos: ref.pos()}, nil
}

func decodeExp(v any, path string) (ast.Exp, error) {
	n, err := asNode(v, path)
	if err != nil {
		return nil, err
	}
	kind, err := n.kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case "nil":
		return &ast.NilExp{Pos: n.pos()}, nil

	case "int":
		var value int64
		switch x := n.m["value"].(type) {
		case int:
			value = int64(x)
		case int64:
			value = x
		case uint64:
			value = int64(x)
		default:
			return nil, fmt.Errorf("astjson: %s.value: expected an integer, found %T", path, n.m["value"])
		}
		return &ast.IntExp{Value: value, Pos: n.pos()}, nil

	case "string":
		value, err := n.str("value")
		if err != nil {
			return nil, err
		}
		return &ast.StringExp{Value: value, Pos: n.pos()}, nil

	case "var":
		lv, err := n.lvalue("var")
		if err != nil {
			return nil, err
		}
		return &ast.VarExp{Var: lv}, nil

	case "call":
		fn, err := n.sym("func")
		if err != nil {
			return nil, err
		}
		items, err := n.list("args")
		if err != nil {
			return nil, err
		}
		args := make([]ast.Exp, len(items))
		for i, item := range items {
			if args[i], err = decodeExp(item, fmt.Sprintf("%s.args[%d]", path, i)); err != nil {
				return nil, err
			}
		}
		return &ast.CallExp{Func: fn, Args: args, Pos: n.pos()}, nil

	case "op":
		opName, err := n.str("op")
		if err != nil {
			return nil, err
		}
		op, ok := opers[opName]
		if !ok {
			return nil, fmt.Errorf("astjson: %s.op: unknown operator %q", path, opName)
		}
		left, err := n.exp("left")
		if err != nil {
			return nil, err
		}
		right, err := n.exp("right")
		if err != nil {
			return nil, err
		}
		return &ast.OpExp{Left: left, Op: op, Right: right, Pos: n.pos()}, nil

	case "record":
		typ, err := n.sym("type")
		if err != nil {
			return nil, err
		}
		items, err := n.list("fields")
		if err != nil {
			return nil, err
		}
		fields := make([]ast.EField, len(items))
		for i, item := range items {
			fpath := fmt.Sprintf("%s.fields[%d]", path, i)
			fn, err := asNode(item, fpath)
			if err != nil {
				return nil, err
			}
			name, err := fn.sym("name")
			if err != nil {
				return nil, err
			}
			value, err := fn.exp("value")
			if err != nil {
				return nil, err
			}
			fields[i] = ast.EField{Name: name, Exp: value, Pos: fn.pos()}
		}
		return &ast.RecordExp{Fields: fields, Type: typ, Pos: n.pos()}, nil

	case "seq":
		items, err := n.list("exps")
		if err != nil {
			return nil, err
		}
		exps := make([]ast.Exp, len(items))
		for i, item := range items {
			if exps[i], err = decodeExp(item, fmt.Sprintf("%s.exps[%d]", path, i)); err != nil {
				return nil, err
			}
		}
		return &ast.SeqExp{Exps: exps, Pos: n.pos()}, nil

	case "assign":
		lv, err := n.lvalue("var")
		if err != nil {
			return nil, err
		}
		value, err := n.exp("exp")
		if err != nil {
			return nil, err
		}
		return &ast.AssignExp{Var: lv, Exp: value, Pos: n.pos()}, nil

	case "if":
		test, err := n.exp("test")
		if err != nil {
			return nil, err
		}
		then, err := n.exp("then")
		if err != nil {
			return nil, err
		}
		var els ast.Exp
		if _, ok := n.child("else"); ok {
			if els, err = n.exp("else"); err != nil {
				return nil, err
			}
		}
		return &ast.IfExp{Test: test, Then: then, Else: els, Pos: n.pos()}, nil

	case "while":
		test, err := n.exp("test")
		if err != nil {
			return nil, err
		}
		body, err := n.exp("body")
		if err != nil {
			return nil, err
		}
		return &ast.WhileExp{Test: test, Body: body, Pos: n.pos()}, nil

	case "for":
		sym, err := n.sym("var")
		if err != nil {
			return nil, err
		}
		lo, err := n.exp("lo")
		if err != nil {
			return nil, err
		}
		hi, err := n.exp("hi")
		if err != nil {
			return nil, err
		}
		body, err := n.exp("body")
		if err != nil {
			return nil, err
		}
		return &ast.ForExp{Var: sym, Escape: n.boolOpt("escape"), Lo: lo, Hi: hi, Body: body, Pos: n.pos()}, nil

	case "let":
		items, err := n.list("decs")
		if err != nil {
			return nil, err
		}
		decs := make([]ast.Dec, len(items))
		for i, item := range items {
			if decs[i], err = decodeDec(item, fmt.Sprintf("%s.decs[%d]", path, i)); err != nil {
				return nil, err
			}
		}
		body, err := n.exp("body")
		if err != nil {
			return nil, err
		}
		return &ast.LetExp{Decs: decs, Body: body, Pos: n.pos()}, nil

	case "array":
		typ, err := n.sym("type")
		if err != nil {
			return nil, err
		}
		size, err := n.exp("size")
		if err != nil {
			return nil, err
		}
		init, err := n.exp("init")
		if err != nil {
			return nil, err
		}
		return &ast.ArrayExp{Type: typ, Size: size, Init: init, Pos: n.pos()}, nil

	case "break":
		return &ast.BreakExp{Pos: n.pos()}, nil
	}
	return nil, fmt.Errorf("astjson: %s: unknown expression kind %q", path, kind)
}

func decodeVar(v any, path string) (ast.Var, error) {
	n, err := asNode(v, path)
	if err != nil {
		return nil, err
	}
	kind, err := n.kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case "simple":
		sym, err := n.sym("name")
		if err != nil {
			return nil, err
		}
		return &ast.SimpleVar{Sym: sym, Pos: n.pos()}, nil

	case "field":
		base, err := n.lvalue("var")
		if err != nil {
			return nil, err
		}
		sym, err := n.sym("name")
		if err != nil {
			return nil, err
		}
		return &ast.FieldVar{Var: base, Sym: sym, Pos: n.pos()}, nil

	case "subscript":
		base, err := n.lvalue("var")
		if err != nil {
			return nil, err
		}
		index, err := n.exp("index")
		if err != nil {
			return nil, err
		}
		return &ast.SubscriptVar{Var: base, Index: index, Pos: n.pos()}, nil
	}
	return nil, fmt.Errorf("astjson: %s: unknown lvalue kind %q", path, kind)
}

func decodeDec(v any, path string) (ast.Dec, error) {
	n, err := asNode(v, path)
	if err != nil {
		return nil, err
	}
	kind, err := n.kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case "var":
		name, err := n.sym("name")
		if err != nil {
			return nil, err
		}
		ref, err := n.typeRef("type")
		if err != nil {
			return nil, err
		}
		init, err := n.exp("init")
		if err != nil {
			return nil, err
		}
		return &ast.VarDec{Name: name, Escape: n.boolOpt("escape"), Type: ref, Init: init, Pos: n.pos()}, nil

	case "type":
		items, err := n.list("types")
		if err != nil {
			return nil, err
		}
		decls := make([]*ast.TypeDecl, len(items))
		for i, item := range items {
			dpath := fmt.Sprintf("%s.types[%d]", path, i)
			dn, err := asNode(item, dpath)
			if err != nil {
				return nil, err
			}
			name, err := dn.sym("name")
			if err != nil {
				return nil, err
			}
			tv, ok := dn.child("ty")
			if !ok {
				return nil, fmt.Errorf("astjson: %s: missing %q", dpath, "ty")
			}
			ty, err := decodeTy(tv, dpath+".ty")
			if err != nil {
				return nil, err
			}
			decls[i] = &ast.TypeDecl{Name: name, Ty: ty, Pos: dn.pos()}
		}
		return &ast.TypeDec{Types: decls}, nil

	case "function":
		items, err := n.list("functions")
		if err != nil {
			return nil, err
		}
		funcs := make([]*ast.FunDec, len(items))
		for i, item := range items {
			fpath := fmt.Sprintf("%s.functions[%d]", path, i)
			fn, err := asNode(item, fpath)
			if err != nil {
				return nil, err
			}
			name, err := fn.sym("name")
			if err != nil {
				return nil, err
			}
			params, err := decodeFields(fn, "params", fpath)
			if err != nil {
				return nil, err
			}
			result, err := fn.typeRef("result")
			if err != nil {
				return nil, err
			}
			body, err := fn.exp("body")
			if err != nil {
				return nil, err
			}
			funcs[i] = &ast.FunDec{Name: name, Params: params, Result: result, Body: body, Pos: fn.pos()}
		}
		return &ast.FunctionDec{Functions: funcs}, nil
	}
	return nil, fmt.Errorf("astjson: %s: unknown declaration kind %q", path, kind)
}

func decodeTy(v any, path string) (ast.Ty, error) {
	n, err := asNode(v, path)
	if err != nil {
		return nil, err
	}
	kind, err := n.kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case "name":
		sym, err := n.sym("name")
		if err != nil {
			return nil, err
		}
		return &ast.NameTy{Sym: sym, Pos: n.pos()}, nil

	case "record":
		fields, err := decodeFields(n, "fields", path)
		if err != nil {
			return nil, err
		}
		return &ast.RecordTy{Fields: fields, Pos: n.pos()}, nil

	case "array":
		sym, err := n.sym("name")
		if err != nil {
			return nil, err
		}
		return &ast.ArrayTy{Sym: sym, Pos: n.pos()}, nil
	}
	return nil, fmt.Errorf("astjson: %s: unknown type kind %q", path, kind)
}

func decodeFields(n node, key, path string) ([]ast.Field, error) {
	items, err := n.list(key)
	if err != nil {
		return nil, err
	}
	fields := make([]ast.Field, len(items))
	for i, item := range items {
		fpath := fmt.Sprintf("%s.%s[%d]", path, key, i)
		fn, err := asNode(item, fpath)
		if err != nil {
			return nil, err
		}
		name, err := fn.sym("name")
		if err != nil {
			return nil, err
		}
		typ, err := fn.sym("type")
		if err != nil {
			return nil, err
		}
		fields[i] = ast.Field{Name: name, Escape: fn.boolOpt("escape"), Type: typ, Pos: fn.pos()}
	}
	return fields, nil
}
