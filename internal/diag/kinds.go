package diag

import (
	"fmt"
	"strings"

	"github.com/sunholo/tigerc/internal/ast"
	"github.com/sunholo/tigerc/internal/symbol"
	"github.com/sunholo/tigerc/internal/types"
)

// Constructors for each diagnostic kind. The checker builds diagnostics
// exclusively through these, so Message wording and Data keys stay uniform.

func UnboundType(pos ast.Pos, sym symbol.Symbol) Diagnostic {
	return Diagnostic{
		Code:    SEM001,
		Pos:     pos,
		Message: fmt.Sprintf("unbound type %s", sym),
		Data:    map[string]any{"type": sym.Name()},
	}
}

func UnresolvedType(pos ast.Pos, sym symbol.Symbol) Diagnostic {
	return Diagnostic{
		Code:    SEM002,
		Pos:     pos,
		Message: fmt.Sprintf("type %s is not defined", sym),
		Data:    map[string]any{"type": sym.Name()},
	}
}

func CyclicTypeDec(pos ast.Pos, syms []symbol.Symbol) Diagnostic {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name()
	}
	return Diagnostic{
		Code:    SEM003,
		Pos:     pos,
		Message: fmt.Sprintf("cyclic type declaration: %s", strings.Join(names, " -> ")),
		Data:    map[string]any{"cycle": names},
	}
}

func TypeRedefined(pos ast.Pos, name symbol.Symbol) Diagnostic {
	return Diagnostic{
		Code:    SEM004,
		Pos:     pos,
		Message: fmt.Sprintf("type %s redefined in the same block", name),
		Data:    map[string]any{"name": name.Name()},
	}
}

func UndefinedVar(pos ast.Pos, sym symbol.Symbol) Diagnostic {
	return Diagnostic{
		Code:    SEM005,
		Pos:     pos,
		Message: fmt.Sprintf("undefined variable %s", sym),
		Data:    map[string]any{"name": sym.Name()},
	}
}

func UndefinedFunction(pos ast.Pos, sym symbol.Symbol) Diagnostic {
	return Diagnostic{
		Code:    SEM006,
		Pos:     pos,
		Message: fmt.Sprintf("undefined function %s", sym),
		Data:    map[string]any{"name": sym.Name()},
	}
}

func NameBoundToFunction(pos ast.Pos, sym symbol.Symbol) Diagnostic {
	return Diagnostic{
		Code:    SEM007,
		Pos:     pos,
		Message: fmt.Sprintf("%s is a function, not a variable", sym),
		Data:    map[string]any{"name": sym.Name()},
	}
}

func NameBoundToVar(pos ast.Pos, sym symbol.Symbol) Diagnostic {
	return Diagnostic{
		Code:    SEM008,
		Pos:     pos,
		Message: fmt.Sprintf("%s is a variable, not a function", sym),
		Data:    map[string]any{"name": sym.Name()},
	}
}

func NoSuchField(pos ast.Pos, field symbol.Symbol, record types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM009,
		Pos:     pos,
		Message: fmt.Sprintf("type %s has no field %s", record, field),
		Data:    map[string]any{"field": field.Name(), "record": record.String()},
	}
}

func NonRecordAccess(pos ast.Pos, field symbol.Symbol, actual types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM010,
		Pos:     pos,
		Message: fmt.Sprintf("cannot select field %s from non-record type %s", field, actual),
		Data:    map[string]any{"field": field.Name(), "actual": actual.String()},
	}
}

func NonIntSubscript(pos ast.Pos, actual types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM011,
		Pos:     pos,
		Message: fmt.Sprintf("array subscript must be int, found %s", actual),
		Data:    map[string]any{"actual": actual.String()},
	}
}

func NonArrayAccess(pos ast.Pos, actual types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM012,
		Pos:     pos,
		Message: fmt.Sprintf("cannot subscript non-array type %s", actual),
		Data:    map[string]any{"actual": actual.String()},
	}
}

func ArityMismatch(pos ast.Pos, name symbol.Symbol, actual, expected int) Diagnostic {
	return Diagnostic{
		Code:    SEM013,
		Pos:     pos,
		Message: fmt.Sprintf("%s expects %d argument(s), found %d", name, expected, actual),
		Data:    map[string]any{"name": name.Name(), "actual": actual, "expected": expected},
	}
}

func ArgumentMismatch(pos ast.Pos, actual, expected types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM014,
		Pos:     pos,
		Message: fmt.Sprintf("argument type %s does not match formal type %s", actual, expected),
		Data:    map[string]any{"actual": actual.String(), "expected": expected.String()},
	}
}

func ArgumentRedefined(pos ast.Pos, function, argument symbol.Symbol) Diagnostic {
	return Diagnostic{
		Code:    SEM015,
		Pos:     pos,
		Message: fmt.Sprintf("parameter %s declared twice in function %s", argument, function),
		Data:    map[string]any{"function": function.Name(), "argument": argument.Name()},
	}
}

func OperandMismatch(pos ast.Pos, op ast.Oper, actual, expected types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM016,
		Pos:     pos,
		Message: fmt.Sprintf("operand of %s has type %s, expected %s", op, actual, expected),
		Data:    map[string]any{"operator": op.String(), "actual": actual.String(), "expected": expected.String()},
	}
}

func FieldMismatch(pos ast.Pos, field symbol.Symbol, actual, expected types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM017,
		Pos:     pos,
		Message: fmt.Sprintf("field %s has type %s, expected %s", field, actual, expected),
		Data:    map[string]any{"field": field.Name(), "actual": actual.String(), "expected": expected.String()},
	}
}

func MissingField(pos ast.Pos, field symbol.Symbol, expected types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM018,
		Pos:     pos,
		Message: fmt.Sprintf("missing field %s of type %s", field, expected),
		Data:    map[string]any{"field": field.Name(), "expected": expected.String()},
	}
}

func NonRecordType(pos ast.Pos, sym symbol.Symbol, actual types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM019,
		Pos:     pos,
		Message: fmt.Sprintf("%s is not a record type (found %s)", sym, actual),
		Data:    map[string]any{"type": sym.Name(), "actual": actual.String()},
	}
}

func UnboundRecordType(pos ast.Pos, sym symbol.Symbol) Diagnostic {
	return Diagnostic{
		Code:    SEM020,
		Pos:     pos,
		Message: fmt.Sprintf("unbound record type %s", sym),
		Data:    map[string]any{"type": sym.Name()},
	}
}

func AssignmentMismatch(pos ast.Pos, actual, expected types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM021,
		Pos:     pos,
		Message: fmt.Sprintf("cannot assign %s where %s is expected", actual, expected),
		Data:    map[string]any{"actual": actual.String(), "expected": expected.String()},
	}
}

func NilInitialization(pos ast.Pos, name symbol.Symbol) Diagnostic {
	return Diagnostic{
		Code:    SEM022,
		Pos:     pos,
		Message: fmt.Sprintf("cannot infer a type for %s from nil; add a record type annotation", name),
		Data:    map[string]any{"name": name.Name()},
	}
}

func ConditionMismatch(pos ast.Pos, actual types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM023,
		Pos:     pos,
		Message: fmt.Sprintf("condition must be int, found %s", actual),
		Data:    map[string]any{"actual": actual.String()},
	}
}

func NonUnitIf(pos ast.Pos, actual types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM024,
		Pos:     pos,
		Message: fmt.Sprintf("if-then without else must produce no value, found %s", actual),
		Data:    map[string]any{"actual": actual.String()},
	}
}

func NonUnitWhile(pos ast.Pos, actual types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM025,
		Pos:     pos,
		Message: fmt.Sprintf("while body must produce no value, found %s", actual),
		Data:    map[string]any{"actual": actual.String()},
	}
}

func NonUnitFor(pos ast.Pos, actual types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM026,
		Pos:     pos,
		Message: fmt.Sprintf("for body must produce no value, found %s", actual),
		Data:    map[string]any{"actual": actual.String()},
	}
}

func NonUnitProcedure(pos ast.Pos, name symbol.Symbol, actual types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM027,
		Pos:     pos,
		Message: fmt.Sprintf("procedure %s must produce no value, found %s", name, actual),
		Data:    map[string]any{"name": name.Name(), "actual": actual.String()},
	}
}

func IfBranchMismatch(pos ast.Pos, thenTy, elseTy types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM028,
		Pos:     pos,
		Message: fmt.Sprintf("if branches have incompatible types %s and %s", thenTy, elseTy),
		Data:    map[string]any{"then": thenTy.String(), "else": elseTy.String()},
	}
}

func ForRangeMismatch(pos ast.Pos, which string, actual types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM029,
		Pos:     pos,
		Message: fmt.Sprintf("%s bound of for must be int, found %s", which, actual),
		Data:    map[string]any{"which": which, "actual": actual.String()},
	}
}

func ArraySizeMismatch(pos ast.Pos, actual types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM030,
		Pos:     pos,
		Message: fmt.Sprintf("array size must be int, found %s", actual),
		Data:    map[string]any{"actual": actual.String()},
	}
}

func ArrayInitMismatch(pos ast.Pos, actual, expected types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM031,
		Pos:     pos,
		Message: fmt.Sprintf("array initializer has type %s, element type is %s", actual, expected),
		Data:    map[string]any{"actual": actual.String(), "expected": expected.String()},
	}
}

func NonArrayType(pos ast.Pos, sym symbol.Symbol, actual types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM032,
		Pos:     pos,
		Message: fmt.Sprintf("%s is not an array type (found %s)", sym, actual),
		Data:    map[string]any{"type": sym.Name(), "actual": actual.String()},
	}
}

func TypeMismatch(pos ast.Pos, actual, expected types.Type) Diagnostic {
	return Diagnostic{
		Code:    SEM033,
		Pos:     pos,
		Message: fmt.Sprintf("body has type %s, declared result is %s", actual, expected),
		Data:    map[string]any{"actual": actual.String(), "expected": expected.String()},
	}
}

func IllegalBreak(pos ast.Pos) Diagnostic {
	return Diagnostic{
		Code:    SEM034,
		Pos:     pos,
		Message: "break outside of a loop",
	}
}
