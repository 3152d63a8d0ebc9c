package semant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/tigerc/internal/ast"
	"github.com/sunholo/tigerc/internal/diag"
	"github.com/sunholo/tigerc/internal/types"
)

func TestLiterals(t *testing.T) {
	tests := []struct {
		name string
		exp  ast.Exp
		want types.Type
	}{
		{"int", intE(42), types.Int},
		{"string", strE("hi"), types.String},
		{"nil", nilE(), types.Nil},
		{"empty seq", seqE(), types.Unit},
		{"seq takes last", seqE(strE("x"), intE(1)), types.Int},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ty, diags := check(t, tt.exp)
			assert.Empty(t, diags)
			assert.Same(t, tt.want, types.Actual(ty))
		})
	}
}

func TestCyclicTypeDeclaration(t *testing.T) {
	// let type a = b  type b = a in 0 end
	ty, diags := check(t, letE(
		[]ast.Dec{typeDec(aliasTy("a", "b"), aliasTy("b", "a"))},
		intE(0),
	))
	require.Len(t, diags, 1)
	assert.Equal(t, diag.SEM003, diags[0].Code)
	assert.Equal(t, []string{"a", "b"}, diags[0].Data["cycle"])
	assert.Same(t, types.Int, types.Actual(ty), "the program still has a type")
}

func TestRecursiveListWithNil(t *testing.T) {
	// let type list = {hd: int, tl: list}  var l : list := nil in l end
	ty, diags := check(t, letE(
		[]ast.Dec{
			typeDec(recordTy("list", field("hd", "int"), field("tl", "list"))),
			varDec("l", "list", nilE()),
		},
		varE("l"),
	))
	assert.Empty(t, diags)
	rec, ok := types.Actual(ty).(*types.Record)
	require.True(t, ok)
	assert.Equal(t, "list", rec.String())
}

func TestVarDecMismatch(t *testing.T) {
	// let var x : int := "hi" in x end
	ty, diags := check(t, letE(
		[]ast.Dec{varDec("x", "int", strE("hi"))},
		varE("x"),
	))
	require.Len(t, diags, 1)
	assert.Equal(t, diag.SEM021, diags[0].Code)
	assert.Equal(t, "string", diags[0].Data["actual"])
	assert.Equal(t, "int", diags[0].Data["expected"])
	assert.Same(t, types.Int, types.Actual(ty), "x is bound at the declared type")
}

func TestRecursiveFunction(t *testing.T) {
	// let function f(x: int): int = f(x) in f(3) end
	ty, diags := check(t, letE(
		[]ast.Dec{&ast.FunctionDec{Functions: []*ast.FunDec{
			funDec("f", []ast.Field{field("x", "int")}, "int", callE("f", varE("x"))),
		}}},
		callE("f", intE(3)),
	))
	assert.Empty(t, diags)
	assert.Same(t, types.Int, types.Actual(ty))
}

func TestMutuallyRecursiveFunctions(t *testing.T) {
	// let function even(n: int): int = odd(n - 1)
	//     function odd(n: int): int = even(n - 1) in even(4) end
	ty, diags := check(t, letE(
		[]ast.Dec{&ast.FunctionDec{Functions: []*ast.FunDec{
			funDec("even", []ast.Field{field("n", "int")}, "int",
				callE("odd", opE(varE("n"), ast.Minus, intE(1)))),
			funDec("odd", []ast.Field{field("n", "int")}, "int",
				callE("even", opE(varE("n"), ast.Minus, intE(1)))),
		}}},
		callE("even", intE(4)),
	))
	assert.Empty(t, diags)
	assert.Same(t, types.Int, types.Actual(ty))
}

func TestDuplicateParameter(t *testing.T) {
	// let function f(x: int, x: int) = () in () end
	_, diags := check(t, letE(
		[]ast.Dec{&ast.FunctionDec{Functions: []*ast.FunDec{
			funDec("f", []ast.Field{field("x", "int"), field("x", "int")}, "", seqE()),
		}}},
		seqE(),
	))
	require.Len(t, diags, 1)
	assert.Equal(t, diag.SEM015, diags[0].Code)
	assert.Equal(t, "f", diags[0].Data["function"])
	assert.Equal(t, "x", diags[0].Data["argument"])
}

func TestIfBranchMismatch(t *testing.T) {
	// if 1 then "a" else 2
	ty, diags := check(t, &ast.IfExp{Test: intE(1), Then: strE("a"), Else: intE(2)})
	require.Len(t, diags, 1)
	assert.Equal(t, diag.SEM028, diags[0].Code)
	assert.Equal(t, "string", diags[0].Data["then"])
	assert.Equal(t, "int", diags[0].Data["else"])
	assert.False(t, types.WellTyped(ty))
}

func TestIfJoinsNilWithRecord(t *testing.T) {
	// let type p = {x: int} var v : p := nil
	// in if 1 then v else nil end
	ty, diags := check(t, letE(
		[]ast.Dec{
			typeDec(recordTy("p", field("x", "int"))),
			varDec("v", "p", nilE()),
		},
		&ast.IfExp{Test: intE(1), Then: varE("v"), Else: nilE()},
	))
	assert.Empty(t, diags)
	_, ok := types.Actual(ty).(*types.Record)
	assert.True(t, ok, "join of record and nil is the record")
}

func TestBreakInsideFor(t *testing.T) {
	// for i := 0 to 10 do break
	_, diags := check(t, &ast.ForExp{
		Var: sym("i"), Lo: intE(0), Hi: intE(10), Body: &ast.BreakExp{},
	})
	assert.Empty(t, diags)
}

func TestBreakOutsideLoop(t *testing.T) {
	// let var i := 0 in (while 1 do (i := i + 1; break); break) end
	_, diags := check(t, letE(
		[]ast.Dec{varDec("i", "", intE(0))},
		seqE(
			&ast.WhileExp{Test: intE(1), Body: seqE(
				assignE(simpleV("i"), opE(varE("i"), ast.Plus, intE(1))),
				&ast.BreakExp{Pos: 10},
			)},
			&ast.BreakExp{Pos: 20},
		),
	))
	require.Len(t, diags, 1, "only the second break is outside a loop")
	assert.Equal(t, diag.SEM034, diags[0].Code)
	assert.Equal(t, ast.Pos(20), diags[0].Pos)
}

func TestBreakInFunctionBodyInsideLoop(t *testing.T) {
	// The loop flag does not cross a function boundary.
	_, diags := check(t, &ast.WhileExp{
		Test: intE(1),
		Body: letE(
			[]ast.Dec{&ast.FunctionDec{Functions: []*ast.FunDec{
				funDec("f", nil, "", &ast.BreakExp{}),
			}}},
			seqE(),
		),
	})
	require.Len(t, diags, 1)
	assert.Equal(t, diag.SEM034, diags[0].Code)
}

func TestArrayElementAssignment(t *testing.T) {
	// let type arr = array of int  var a : arr := arr[3] of 0
	// in a[1] := "x" end
	_, diags := check(t, letE(
		[]ast.Dec{
			typeDec(arrayTy("arr", "int")),
			varDec("a", "arr", &ast.ArrayExp{Type: sym("arr"), Size: intE(3), Init: intE(0)}),
		},
		assignE(&ast.SubscriptVar{Var: simpleV("a"), Index: intE(1)}, strE("x")),
	))
	require.Len(t, diags, 1)
	assert.Equal(t, diag.SEM021, diags[0].Code)
	assert.Equal(t, "string", diags[0].Data["actual"])
	assert.Equal(t, "int", diags[0].Data["expected"])
}

func TestOperators(t *testing.T) {
	tests := []struct {
		name  string
		exp   ast.Exp
		codes []diag.Code
	}{
		{"arithmetic", opE(intE(1), ast.Plus, intE(2)), nil},
		{"comparison", opE(intE(1), ast.Lt, intE(2)), nil},
		{"left operand not int", opE(strE("a"), ast.Plus, intE(1)), []diag.Code{diag.SEM016}},
		{"right operand not int", opE(intE(1), ast.Times, strE("a")), []diag.Code{diag.SEM016}},
		{"int equality", opE(intE(1), ast.Eq, intE(2)), nil},
		{"string inequality", opE(strE("a"), ast.Neq, strE("b")), nil},
		{"unit equality is permitted", opE(seqE(), ast.Eq, seqE()), nil},
		{"mixed equality", opE(intE(1), ast.Eq, strE("a")), []diag.Code{diag.SEM016}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ty, diags := check(t, tt.exp)
			assert.Equal(t, tt.codes, codes(diags))
			assert.Same(t, types.Int, types.Actual(ty), "operators always yield int")
		})
	}
}

func TestEqualityOnRecords(t *testing.T) {
	decs := []ast.Dec{
		typeDec(recordTy("p", field("x", "int"))),
		varDec("v", "p", nilE()),
	}

	t.Run("record against nil", func(t *testing.T) {
		_, diags := check(t, letE(decs, opE(varE("v"), ast.Eq, nilE())))
		assert.Empty(t, diags)
	})

	t.Run("nil against record", func(t *testing.T) {
		_, diags := check(t, letE(decs, opE(nilE(), ast.Eq, varE("v"))))
		assert.Empty(t, diags)
	})

	t.Run("nil against nil", func(t *testing.T) {
		_, diags := check(t, opE(nilE(), ast.Eq, nilE()))
		assert.Empty(t, diags)
	})
}

func TestCallErrors(t *testing.T) {
	tests := []struct {
		name  string
		exp   ast.Exp
		codes []diag.Code
	}{
		{
			"undefined function",
			callE("missing"),
			[]diag.Code{diag.SEM006},
		},
		{
			"variable called as function",
			letE([]ast.Dec{varDec("v", "", intE(1))}, callE("v")),
			[]diag.Code{diag.SEM008},
		},
		{
			"arity mismatch still checks shared prefix",
			callE("substring", strE("s"), strE("not-int")),
			[]diag.Code{diag.SEM013, diag.SEM014},
		},
		{
			"argument mismatch",
			callE("print", intE(1)),
			[]diag.Code{diag.SEM014},
		},
		{
			"ok",
			callE("concat", strE("a"), callE("chr", intE(65))),
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := check(t, tt.exp)
			assert.Equal(t, tt.codes, codes(diags))
		})
	}
}

func TestCallResultType(t *testing.T) {
	ty, diags := check(t, callE("ord", strE("a")))
	assert.Empty(t, diags)
	assert.Same(t, types.Int, types.Actual(ty))
}

func TestFunctionBodyChecks(t *testing.T) {
	tests := []struct {
		name  string
		dec   *ast.FunDec
		codes []diag.Code
	}{
		{
			"procedure returning int",
			funDec("p", nil, "", intE(1)),
			[]diag.Code{diag.SEM027},
		},
		{
			"body type mismatch",
			funDec("f", nil, "int", strE("x")),
			[]diag.Code{diag.SEM033},
		},
		{
			"unbound result type",
			funDec("f", nil, "mystery", intE(1)),
			[]diag.Code{diag.SEM001},
		},
		{
			"unbound formal type",
			funDec("f", []ast.Field{field("x", "mystery")}, "", seqE()),
			[]diag.Code{diag.SEM001},
		},
		{
			"ok procedure",
			funDec("p", []ast.Field{field("s", "string")}, "", callE("print", varE("s"))),
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := check(t, letE(
				[]ast.Dec{&ast.FunctionDec{Functions: []*ast.FunDec{tt.dec}}},
				seqE(),
			))
			assert.Equal(t, tt.codes, codes(diags))
		})
	}
}

func TestRecordLiteral(t *testing.T) {
	pointDec := typeDec(recordTy("point", field("x", "int"), field("y", "int")))

	t.Run("ok", func(t *testing.T) {
		ty, diags := check(t, letE(
			[]ast.Dec{pointDec},
			&ast.RecordExp{Type: sym("point"), Fields: []ast.EField{
				{Name: sym("x"), Exp: intE(1)},
				{Name: sym("y"), Exp: intE(2)},
			}},
		))
		assert.Empty(t, diags)
		assert.Equal(t, "point", types.Actual(ty).String())
	})

	t.Run("missing field", func(t *testing.T) {
		_, diags := check(t, letE(
			[]ast.Dec{pointDec},
			&ast.RecordExp{Type: sym("point"), Fields: []ast.EField{
				{Name: sym("x"), Exp: intE(1)},
			}},
		))
		require.Len(t, diags, 1)
		assert.Equal(t, diag.SEM018, diags[0].Code)
		assert.Equal(t, "y", diags[0].Data["field"])
	})

	t.Run("field type mismatch", func(t *testing.T) {
		_, diags := check(t, letE(
			[]ast.Dec{pointDec},
			&ast.RecordExp{Type: sym("point"), Fields: []ast.EField{
				{Name: sym("x"), Exp: strE("no")},
				{Name: sym("y"), Exp: intE(2)},
			}},
		))
		require.Len(t, diags, 1)
		assert.Equal(t, diag.SEM017, diags[0].Code)
		assert.Equal(t, "x", diags[0].Data["field"])
	})

	t.Run("extra fields are not reported", func(t *testing.T) {
		_, diags := check(t, letE(
			[]ast.Dec{pointDec},
			&ast.RecordExp{Type: sym("point"), Fields: []ast.EField{
				{Name: sym("x"), Exp: intE(1)},
				{Name: sym("y"), Exp: intE(2)},
				{Name: sym("z"), Exp: strE("ignored")},
			}},
		))
		assert.Empty(t, diags)
	})

	t.Run("unbound type", func(t *testing.T) {
		ty, diags := check(t, &ast.RecordExp{Type: sym("ghost")})
		require.Len(t, diags, 1)
		assert.Equal(t, diag.SEM020, diags[0].Code)
		assert.False(t, types.WellTyped(ty))
	})

	t.Run("not a record type", func(t *testing.T) {
		_, diags := check(t, &ast.RecordExp{Type: sym("int")})
		require.Len(t, diags, 1)
		assert.Equal(t, diag.SEM019, diags[0].Code)
	})
}

func TestNominalRecordsNotAssignable(t *testing.T) {
	// Two record types with identical structure stay distinct.
	_, diags := check(t, letE(
		[]ast.Dec{
			typeDec(
				recordTy("a", field("x", "int")),
				recordTy("b", field("x", "int")),
			),
			varDec("va", "a", &ast.RecordExp{Type: sym("a"), Fields: []ast.EField{{Name: sym("x"), Exp: intE(1)}}}),
			varDec("vb", "b", &ast.RecordExp{Type: sym("b"), Fields: []ast.EField{{Name: sym("x"), Exp: intE(1)}}}),
		},
		assignE(simpleV("va"), varE("vb")),
	))
	require.Len(t, diags, 1)
	assert.Equal(t, diag.SEM021, diags[0].Code)
	assert.Equal(t, "b", diags[0].Data["actual"])
	assert.Equal(t, "a", diags[0].Data["expected"])
}

func TestVariableErrors(t *testing.T) {
	recordDecs := []ast.Dec{
		typeDec(recordTy("p", field("x", "int"))),
		varDec("v", "p", nilE()),
	}

	tests := []struct {
		name  string
		exp   ast.Exp
		codes []diag.Code
	}{
		{
			"undefined variable",
			varE("ghost"),
			[]diag.Code{diag.SEM005},
		},
		{
			"function used as variable",
			varE("print"),
			[]diag.Code{diag.SEM007},
		},
		{
			"no such field",
			letE(recordDecs, &ast.VarExp{Var: &ast.FieldVar{Var: simpleV("v"), Sym: sym("nope")}}),
			[]diag.Code{diag.SEM009},
		},
		{
			"field access on non-record",
			letE([]ast.Dec{varDec("i", "", intE(1))},
				&ast.VarExp{Var: &ast.FieldVar{Var: simpleV("i"), Sym: sym("x")}}),
			[]diag.Code{diag.SEM010},
		},
		{
			"subscript on non-array",
			letE([]ast.Dec{varDec("i", "", intE(1))},
				&ast.VarExp{Var: &ast.SubscriptVar{Var: simpleV("i"), Index: intE(0)}}),
			[]diag.Code{diag.SEM012},
		},
		{
			"non-int subscript",
			letE(
				[]ast.Dec{
					typeDec(arrayTy("arr", "int")),
					varDec("a", "arr", &ast.ArrayExp{Type: sym("arr"), Size: intE(1), Init: intE(0)}),
				},
				&ast.VarExp{Var: &ast.SubscriptVar{Var: simpleV("a"), Index: strE("i")}},
			),
			[]diag.Code{diag.SEM011},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := check(t, tt.exp)
			assert.Equal(t, tt.codes, codes(diags))
		})
	}
}

func TestSubscriptOnRecordIsReported(t *testing.T) {
	// Any well-typed non-array base is reported, records included.
	_, diags := check(t, letE(
		[]ast.Dec{
			typeDec(recordTy("p", field("x", "int"))),
			varDec("v", "p", nilE()),
		},
		&ast.VarExp{Var: &ast.SubscriptVar{Var: simpleV("v"), Index: intE(0)}},
	))
	require.Len(t, diags, 1)
	assert.Equal(t, diag.SEM012, diags[0].Code)
	assert.Equal(t, "p", diags[0].Data["actual"])
}

func TestLoopsAndConditions(t *testing.T) {
	tests := []struct {
		name  string
		exp   ast.Exp
		codes []diag.Code
	}{
		{
			"string condition in if",
			&ast.IfExp{Test: strE("s"), Then: seqE()},
			[]diag.Code{diag.SEM023},
		},
		{
			"non-unit then without else",
			&ast.IfExp{Test: intE(1), Then: intE(2)},
			[]diag.Code{diag.SEM024},
		},
		{
			"string condition in while",
			&ast.WhileExp{Test: strE("s"), Body: seqE()},
			[]diag.Code{diag.SEM023},
		},
		{
			"non-unit while body",
			&ast.WhileExp{Test: intE(1), Body: intE(2)},
			[]diag.Code{diag.SEM025},
		},
		{
			"non-unit for body",
			&ast.ForExp{Var: sym("i"), Lo: intE(0), Hi: intE(1), Body: intE(2)},
			[]diag.Code{diag.SEM026},
		},
		{
			"bad lower bound",
			&ast.ForExp{Var: sym("i"), Lo: strE("a"), Hi: intE(1), Body: seqE()},
			[]diag.Code{diag.SEM029},
		},
		{
			"bad upper bound",
			&ast.ForExp{Var: sym("i"), Lo: intE(0), Hi: strE("b"), Body: seqE()},
			[]diag.Code{diag.SEM029},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := check(t, tt.exp)
			assert.Equal(t, tt.codes, codes(diags))
		})
	}
}

func TestForRangePayload(t *testing.T) {
	_, diags := check(t, &ast.ForExp{Var: sym("i"), Lo: strE("a"), Hi: strE("b"), Body: seqE()})
	require.Len(t, diags, 2)
	assert.Equal(t, "lower", diags[0].Data["which"])
	assert.Equal(t, "upper", diags[1].Data["which"])
}

func TestForBindsInductionVariable(t *testing.T) {
	// The induction variable is an int inside the body and gone after.
	_, diags := check(t, seqE(
		&ast.ForExp{
			Var: sym("i"), Lo: intE(0), Hi: intE(9),
			Body: callE("print", callE("chr", varE("i"))),
		},
		varE("i"),
	))
	require.Len(t, diags, 1)
	assert.Equal(t, diag.SEM005, diags[0].Code)
}

func TestForInductionVariableAssignable(t *testing.T) {
	// The checker accepts assignment to the induction variable even
	// though the language reference forbids it.
	_, diags := check(t, &ast.ForExp{
		Var: sym("i"), Lo: intE(0), Hi: intE(9),
		Body: assignE(simpleV("i"), intE(0)),
	})
	assert.Empty(t, diags)
}

func TestArrayExpression(t *testing.T) {
	arrDec := typeDec(arrayTy("arr", "int"))

	tests := []struct {
		name  string
		exp   ast.Exp
		codes []diag.Code
	}{
		{
			"ok",
			letE([]ast.Dec{arrDec}, &ast.ArrayExp{Type: sym("arr"), Size: intE(3), Init: intE(0)}),
			nil,
		},
		{
			"string size",
			letE([]ast.Dec{arrDec}, &ast.ArrayExp{Type: sym("arr"), Size: strE("n"), Init: intE(0)}),
			[]diag.Code{diag.SEM030},
		},
		{
			"init mismatch",
			letE([]ast.Dec{arrDec}, &ast.ArrayExp{Type: sym("arr"), Size: intE(3), Init: strE("x")}),
			[]diag.Code{diag.SEM031},
		},
		{
			"unbound array type",
			&ast.ArrayExp{Type: sym("ghost"), Size: intE(3), Init: intE(0)},
			[]diag.Code{diag.SEM001},
		},
		{
			"not an array type",
			&ast.ArrayExp{Type: sym("string"), Size: intE(3), Init: strE("x")},
			[]diag.Code{diag.SEM032},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := check(t, tt.exp)
			assert.Equal(t, tt.codes, codes(diags))
		})
	}
}

func TestNilInitializationRejected(t *testing.T) {
	// var x := nil has no inferrable type.
	_, diags := check(t, letE(
		[]ast.Dec{varDec("x", "", nilE())},
		seqE(),
	))
	require.Len(t, diags, 1)
	assert.Equal(t, diag.SEM022, diags[0].Code)
	assert.Equal(t, "x", diags[0].Data["name"])
}

func TestNilInitializationUseDoesNotCascade(t *testing.T) {
	// The bad binding absorbs later checks instead of multiplying them.
	_, diags := check(t, letE(
		[]ast.Dec{varDec("x", "", nilE())},
		opE(varE("x"), ast.Plus, intE(1)),
	))
	assert.Equal(t, []diag.Code{diag.SEM022}, codes(diags))
}

func TestUnboundAnnotation(t *testing.T) {
	_, diags := check(t, letE(
		[]ast.Dec{varDec("x", "mystery", intE(1))},
		varE("x"),
	))
	assert.Equal(t, []diag.Code{diag.SEM001}, codes(diags))
}

func TestTopAbsorption(t *testing.T) {
	tests := []struct {
		name  string
		exp   ast.Exp
		codes []diag.Code
	}{
		{
			"undefined var in arithmetic reports once",
			opE(varE("ghost"), ast.Plus, intE(1)),
			[]diag.Code{diag.SEM005},
		},
		{
			"undefined var in both operands reports each lookup only",
			opE(varE("ghost"), ast.Plus, varE("phantom")),
			[]diag.Code{diag.SEM005, diag.SEM005},
		},
		{
			"undefined var in condition",
			&ast.IfExp{Test: varE("ghost"), Then: seqE()},
			[]diag.Code{diag.SEM005},
		},
		{
			"field access chain on undefined base",
			&ast.VarExp{Var: &ast.FieldVar{
				Var: &ast.FieldVar{Var: &ast.SimpleVar{Sym: sym("ghost")}, Sym: sym("a")},
				Sym: sym("b"),
			}},
			[]diag.Code{diag.SEM005},
		},
		{
			"subscript on undefined base",
			&ast.VarExp{Var: &ast.SubscriptVar{Var: &ast.SimpleVar{Sym: sym("ghost")}, Index: intE(0)}},
			[]diag.Code{diag.SEM005},
		},
		{
			"assignment to undefined target",
			assignE(simpleV("ghost"), intE(1)),
			[]diag.Code{diag.SEM005},
		},
		{
			"if branches with one broken side",
			&ast.IfExp{Test: intE(1), Then: varE("ghost"), Else: intE(2)},
			[]diag.Code{diag.SEM005},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := check(t, tt.exp)
			assert.Equal(t, tt.codes, codes(diags))
		})
	}
}

func TestEnvironmentIsolation(t *testing.T) {
	sink := diag.NewSink()
	c := NewChecker(sink)
	venv, tenv := BaseVEnv(), BaseTEnv()

	venv2, tenv2 := c.transDec(venv, tenv, false, varDec("fresh", "", intE(1)))
	_, ok := venv2.Lookup(sym("fresh"))
	assert.True(t, ok)

	// The parent environments are untouched.
	_, ok = venv.Lookup(sym("fresh"))
	assert.False(t, ok)
	assert.Equal(t, tenv, tenv2, "a var dec does not touch the type environment")

	// Declarations inside a let are invisible afterwards.
	_, diags := check(t, seqE(
		letE([]ast.Dec{varDec("inner", "", intE(1))}, varE("inner")),
		varE("inner"),
	))
	assert.Equal(t, []diag.Code{diag.SEM005}, codes(diags))
}

func TestShadowing(t *testing.T) {
	// An inner declaration shadows without clobbering.
	ty, diags := check(t, letE(
		[]ast.Dec{varDec("x", "", intE(1))},
		seqE(
			letE([]ast.Dec{varDec("x", "", strE("inner"))}, callE("print", varE("x"))),
			varE("x"),
		),
	))
	assert.Empty(t, diags)
	assert.Same(t, types.Int, types.Actual(ty))
}

func TestLetDecsSeeEarlierDecs(t *testing.T) {
	ty, diags := check(t, letE(
		[]ast.Dec{
			varDec("a", "", intE(1)),
			varDec("b", "", opE(varE("a"), ast.Plus, intE(1))),
		},
		varE("b"),
	))
	assert.Empty(t, diags)
	assert.Same(t, types.Int, types.Actual(ty))
}

func TestProgramTypeAlwaysPresent(t *testing.T) {
	// Even a thoroughly broken program yields a type.
	ty, diags := check(t, letE(
		[]ast.Dec{
			typeDec(aliasTy("a", "a")),
			varDec("x", "a", nilE()),
		},
		opE(varE("x"), ast.Plus, callE("nothing")),
	))
	assert.NotEmpty(t, diags)
	assert.NotNil(t, ty)
}
