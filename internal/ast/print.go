package ast

import (
	"fmt"
	"strings"
)

// Sprint renders a node as a compact one-line form, mainly for tests and
// trace logging.
func Sprint(n Node) string {
	switch n := n.(type) {
	case *NilExp:
		return "nil"
	case *IntExp:
		return fmt.Sprintf("%d", n.Value)
	case *StringExp:
		return fmt.Sprintf("%q", n.Value)
	case *VarExp:
		return Sprint(n.Var)
	case *CallExp:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = Sprint(a)
		}
		return fmt.Sprintf("%s(%s)", n.Func, strings.Join(args, ", "))
	case *OpExp:
		return fmt.Sprintf("(%s %s %s)", Sprint(n.Left), n.Op, Sprint(n.Right))
	case *RecordExp:
		fields := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = fmt.Sprintf("%s = %s", f.Name, Sprint(f.Exp))
		}
		return fmt.Sprintf("%s{%s}", n.Type, strings.Join(fields, ", "))
	case *SeqExp:
		exps := make([]string, len(n.Exps))
		for i, e := range n.Exps {
			exps[i] = Sprint(e)
		}
		return "(" + strings.Join(exps, "; ") + ")"
	case *AssignExp:
		return fmt.Sprintf("%s := %s", Sprint(n.Var), Sprint(n.Exp))
	case *IfExp:
		if n.Else == nil {
			return fmt.Sprintf("if %s then %s", Sprint(n.Test), Sprint(n.Then))
		}
		return fmt.Sprintf("if %s then %s else %s", Sprint(n.Test), Sprint(n.Then), Sprint(n.Else))
	case *WhileExp:
		return fmt.Sprintf("while %s do %s", Sprint(n.Test), Sprint(n.Body))
	case *ForExp:
		return fmt.Sprintf("for %s := %s to %s do %s", n.Var, Sprint(n.Lo), Sprint(n.Hi), Sprint(n.Body))
	case *LetExp:
		decs := make([]string, len(n.Decs))
		for i, d := range n.Decs {
			decs[i] = Sprint(d)
		}
		return fmt.Sprintf("let %s in %s end", strings.Join(decs, " "), Sprint(n.Body))
	case *ArrayExp:
		return fmt.Sprintf("%s[%s] of %s", n.Type, Sprint(n.Size), Sprint(n.Init))
	case *BreakExp:
		return "break"
	case *SimpleVar:
		return n.Sym.Name()
	case *FieldVar:
		return fmt.Sprintf("%s.%s", Sprint(n.Var), n.Sym)
	case *SubscriptVar:
		return fmt.Sprintf("%s[%s]", Sprint(n.Var), Sprint(n.Index))
	case *VarDec:
		if n.Type != nil {
			return fmt.Sprintf("var %s : %s := %s", n.Name, n.Type.Sym, Sprint(n.Init))
		}
		return fmt.Sprintf("var %s := %s", n.Name, Sprint(n.Init))
	case *TypeDec:
		decs := make([]string, len(n.Types))
		for i, d := range n.Types {
			decs[i] = fmt.Sprintf("type %s = %s", d.Name, Sprint(d.Ty))
		}
		return strings.Join(decs, " ")
	case *FunctionDec:
		decs := make([]string, len(n.Functions))
		for i, f := range n.Functions {
			decs[i] = Sprint(f)
		}
		return strings.Join(decs, " ")
	case *FunDec:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = fmt.Sprintf("%s: %s", p.Name, p.Type)
		}
		sig := fmt.Sprintf("function %s(%s)", n.Name, strings.Join(params, ", "))
		if n.Result != nil {
			sig += fmt.Sprintf(": %s", n.Result.Sym)
		}
		return fmt.Sprintf("%s = %s", sig, Sprint(n.Body))
	case *NameTy:
		return n.Sym.Name()
	case *RecordTy:
		fields := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = fmt.Sprintf("%s: %s", f.Name, f.Type)
		}
		return "{" + strings.Join(fields, ", ") + "}"
	case *ArrayTy:
		return "array of " + n.Sym.Name()
	}
	return fmt.Sprintf("<%T>", n)
}
