// Package semant is the semantic analyzer: a single-threaded recursive walk
// over the AST that resolves type declarations, enforces the typing rules,
// and reports every independent error it finds without ever aborting.
package semant

import (
	"github.com/sirupsen/logrus"

	"github.com/sunholo/tigerc/internal/ast"
	"github.com/sunholo/tigerc/internal/diag"
	"github.com/sunholo/tigerc/internal/translate"
	"github.com/sunholo/tigerc/internal/types"
)

// ExpTy pairs a translated-expression placeholder with the expression's
// type. Real translation is left to later passes.
type ExpTy struct {
	Exp translate.Exp
	Ty  types.Type
}

// Checker threads the error sink through the traversal. Environments and
// the loop flag are passed per call; there is no other state.
type Checker struct {
	sink *diag.Sink
	log  logrus.FieldLogger
}

// NewChecker creates a checker reporting into sink.
func NewChecker(sink *diag.Sink) *Checker {
	return &Checker{
		sink: sink,
		log:  logrus.StandardLogger().WithField("phase", "semant"),
	}
}

// TransProg type checks a whole program under the base environments. The
// result type is always present; it is Top when the program is ill-typed
// in a way that reaches the root.
func TransProg(exp ast.Exp, sink *diag.Sink) ExpTy {
	return NewChecker(sink).transExp(BaseVEnv(), BaseTEnv(), false, exp)
}

func expTy(t types.Type) ExpTy {
	return ExpTy{Exp: translate.Placeholder(), Ty: t}
}

// transExp checks an expression under the given environments. inLoop
// records whether a break is legal here; function bodies reset it.
func (c *Checker) transExp(venv VEnv, tenv TEnv, inLoop bool, exp ast.Exp) ExpTy {
	switch e := exp.(type) {
	case *ast.NilExp:
		return expTy(types.Nil)

	case *ast.IntExp:
		return expTy(types.Int)

	case *ast.StringExp:
		return expTy(types.String)

	case *ast.VarExp:
		return c.transVar(venv, tenv, inLoop, e.Var)

	case *ast.CallExp:
		return c.transCall(venv, tenv, inLoop, e)

	case *ast.OpExp:
		left := c.transExp(venv, tenv, inLoop, e.Left)
		right := c.transExp(venv, tenv, inLoop, e.Right)
		expected := types.Type(types.Bottom)
		if e.Op.Arithmetic() {
			expected = types.Int
		}
		leftJoin := types.Join(left.Ty, expected)
		if !types.WellTyped(leftJoin) {
			if types.WellTyped(left.Ty) {
				c.sink.Log(diag.OperandMismatch(e.Left.Position(), e.Op, left.Ty, expected))
			}
		} else if actual := types.Join(leftJoin, right.Ty); !types.WellTyped(actual) && types.WellTyped(right.Ty) {
			c.sink.Log(diag.OperandMismatch(e.Right.Position(), e.Op, right.Ty, leftJoin))
		}
		return expTy(types.Int)

	case *ast.RecordExp:
		return c.transRecord(venv, tenv, inLoop, e)

	case *ast.SeqExp:
		result := types.Type(types.Unit)
		for _, sub := range e.Exps {
			result = c.transExp(venv, tenv, inLoop, sub).Ty
		}
		return expTy(result)

	case *ast.AssignExp:
		target := c.transVar(venv, tenv, inLoop, e.Var)
		value := c.transExp(venv, tenv, inLoop, e.Exp)
		if !types.Subtype(value.Ty, target.Ty) && types.WellTyped(value.Ty) && types.WellTyped(target.Ty) {
			c.sink.Log(diag.AssignmentMismatch(e.Pos, value.Ty, target.Ty))
		}
		return expTy(types.Unit)

	case *ast.IfExp:
		test := c.transExp(venv, tenv, inLoop, e.Test)
		if !types.Subtype(test.Ty, types.Int) && types.WellTyped(test.Ty) {
			c.sink.Log(diag.ConditionMismatch(e.Test.Position(), test.Ty))
		}
		then := c.transExp(venv, tenv, inLoop, e.Then)
		if e.Else == nil {
			if !types.Subtype(then.Ty, types.Unit) && types.WellTyped(then.Ty) {
				c.sink.Log(diag.NonUnitIf(e.Then.Position(), then.Ty))
			}
			return expTy(types.Unit)
		}
		els := c.transExp(venv, tenv, inLoop, e.Else)
		result := types.Join(then.Ty, els.Ty)
		if !types.WellTyped(result) && types.WellTyped(then.Ty) && types.WellTyped(els.Ty) {
			c.sink.Log(diag.IfBranchMismatch(e.Pos, then.Ty, els.Ty))
		}
		return expTy(result)

	case *ast.WhileExp:
		test := c.transExp(venv, tenv, inLoop, e.Test)
		if !types.Subtype(test.Ty, types.Int) && types.WellTyped(test.Ty) {
			c.sink.Log(diag.ConditionMismatch(e.Test.Position(), test.Ty))
		}
		body := c.transExp(venv, tenv, true, e.Body)
		if !types.Subtype(body.Ty, types.Unit) && types.WellTyped(body.Ty) {
			c.sink.Log(diag.NonUnitWhile(e.Body.Position(), body.Ty))
		}
		return expTy(types.Unit)

	case *ast.ForExp:
		lo := c.transExp(venv, tenv, inLoop, e.Lo)
		if !types.Subtype(lo.Ty, types.Int) && types.WellTyped(lo.Ty) {
			c.sink.Log(diag.ForRangeMismatch(e.Lo.Position(), "lower", lo.Ty))
		}
		hi := c.transExp(venv, tenv, inLoop, e.Hi)
		if !types.Subtype(hi.Ty, types.Int) && types.WellTyped(hi.Ty) {
			c.sink.Log(diag.ForRangeMismatch(e.Hi.Position(), "upper", hi.Ty))
		}
		inner := venv.Insert(e.Var, &VarEntry{Type: types.Int})
		body := c.transExp(inner, tenv, true, e.Body)
		if !types.Subtype(body.Ty, types.Unit) && types.WellTyped(body.Ty) {
			c.sink.Log(diag.NonUnitFor(e.Body.Position(), body.Ty))
		}
		return expTy(types.Unit)

	case *ast.LetExp:
		for _, d := range e.Decs {
			venv, tenv = c.transDec(venv, tenv, inLoop, d)
		}
		return c.transExp(venv, tenv, inLoop, e.Body)

	case *ast.ArrayExp:
		return c.transArray(venv, tenv, inLoop, e)

	case *ast.BreakExp:
		if !inLoop {
			c.sink.Log(diag.IllegalBreak(e.Pos))
		}
		return expTy(types.Bottom)
	}
	return expTy(types.Top)
}

func (c *Checker) transCall(venv VEnv, tenv TEnv, inLoop bool, e *ast.CallExp) ExpTy {
	entry, ok := venv.Lookup(e.Func)
	if !ok {
		c.sink.Log(diag.UndefinedFunction(e.Pos, e.Func))
		return expTy(types.Top)
	}
	fn, ok := entry.(*FunEntry)
	if !ok {
		c.sink.Log(diag.NameBoundToVar(e.Pos, e.Func))
		return expTy(types.Top)
	}
	if len(e.Args) != len(fn.Formals) {
		c.sink.Log(diag.ArityMismatch(e.Pos, e.Func, len(e.Args), len(fn.Formals)))
	}
	// Argument checking proceeds pairwise up to the shorter list.
	for i := 0; i < min(len(e.Args), len(fn.Formals)); i++ {
		arg := c.transExp(venv, tenv, inLoop, e.Args[i])
		if !types.Subtype(arg.Ty, fn.Formals[i]) && types.WellTyped(arg.Ty) && types.WellTyped(fn.Formals[i]) {
			c.sink.Log(diag.ArgumentMismatch(e.Args[i].Position(), arg.Ty, fn.Formals[i]))
		}
	}
	return expTy(fn.Result)
}

func (c *Checker) transRecord(venv VEnv, tenv TEnv, inLoop bool, e *ast.RecordExp) ExpTy {
	t, ok := tenv.Lookup(e.Type)
	if !ok {
		c.sink.Log(diag.UnboundRecordType(e.Pos, e.Type))
		return expTy(types.Top)
	}
	rec, isRec := types.Actual(t).(*types.Record)
	if !isRec {
		if types.WellTyped(t) {
			c.sink.Log(diag.NonRecordType(e.Pos, e.Type, t))
		}
		return expTy(types.Top)
	}
	for _, f := range rec.Fields {
		var init *ast.EField
		for i := range e.Fields {
			if e.Fields[i].Name == f.Name {
				init = &e.Fields[i]
				break
			}
		}
		if init == nil {
			c.sink.Log(diag.MissingField(e.Pos, f.Name, f.Type))
			continue
		}
		value := c.transExp(venv, tenv, inLoop, init.Exp)
		if !types.Subtype(value.Ty, f.Type) && types.WellTyped(value.Ty) && types.WellTyped(f.Type) {
			c.sink.Log(diag.FieldMismatch(init.Pos, f.Name, value.Ty, f.Type))
		}
	}
	// Initializer fields that the record type does not declare are not
	// reported, and their expressions are never checked.
	return expTy(t)
}

func (c *Checker) transArray(venv VEnv, tenv TEnv, inLoop bool, e *ast.ArrayExp) ExpTy {
	size := c.transExp(venv, tenv, inLoop, e.Size)
	if !types.Subtype(size.Ty, types.Int) && types.WellTyped(size.Ty) {
		c.sink.Log(diag.ArraySizeMismatch(e.Size.Position(), size.Ty))
	}
	t, ok := tenv.Lookup(e.Type)
	if !ok {
		c.sink.Log(diag.UnboundType(e.Pos, e.Type))
		return expTy(types.Top)
	}
	arr, isArr := types.Actual(t).(*types.Array)
	if !isArr {
		if types.WellTyped(t) {
			c.sink.Log(diag.NonArrayType(e.Pos, e.Type, t))
		}
		return expTy(types.Top)
	}
	init := c.transExp(venv, tenv, inLoop, e.Init)
	if !types.Subtype(init.Ty, arr.Elem) && types.WellTyped(init.Ty) && types.WellTyped(arr.Elem) {
		c.sink.Log(diag.ArrayInitMismatch(e.Init.Position(), init.Ty, arr.Elem))
	}
	return expTy(t)
}

// transVar checks an lvalue and yields the type of the storage it denotes.
func (c *Checker) transVar(venv VEnv, tenv TEnv, inLoop bool, v ast.Var) ExpTy {
	switch v := v.(type) {
	case *ast.SimpleVar:
		entry, ok := venv.Lookup(v.Sym)
		if !ok {
			c.sink.Log(diag.UndefinedVar(v.Pos, v.Sym))
			return expTy(types.Top)
		}
		if _, isFun := entry.(*FunEntry); isFun {
			c.sink.Log(diag.NameBoundToFunction(v.Pos, v.Sym))
			return expTy(types.Top)
		}
		return expTy(entry.(*VarEntry).Type)

	case *ast.FieldVar:
		base := c.transVar(venv, tenv, inLoop, v.Var)
		rec, ok := types.Actual(base.Ty).(*types.Record)
		if !ok {
			if types.WellTyped(base.Ty) {
				c.sink.Log(diag.NonRecordAccess(v.Pos, v.Sym, base.Ty))
			}
			return expTy(types.Top)
		}
		ft, ok := rec.FieldType(v.Sym)
		if !ok {
			c.sink.Log(diag.NoSuchField(v.Pos, v.Sym, base.Ty))
			return expTy(types.Top)
		}
		return expTy(ft)

	case *ast.SubscriptVar:
		base := c.transVar(venv, tenv, inLoop, v.Var)
		idx := c.transExp(venv, tenv, inLoop, v.Index)
		if !types.Subtype(idx.Ty, types.Int) && types.WellTyped(idx.Ty) {
			c.sink.Log(diag.NonIntSubscript(v.Index.Position(), idx.Ty))
		}
		arr, ok := types.Actual(base.Ty).(*types.Array)
		if !ok {
			// Reported for any well-typed non-array base, nil included.
			if types.WellTyped(base.Ty) {
				c.sink.Log(diag.NonArrayAccess(v.Pos, base.Ty))
			}
			return expTy(types.Top)
		}
		return expTy(arr.Elem)
	}
	return expTy(types.Top)
}
