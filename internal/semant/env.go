package semant

import (
	"github.com/sunholo/tigerc/internal/symbol"
	"github.com/sunholo/tigerc/internal/types"
)

// Entry is a value-environment binding: a variable or a function.
type Entry interface {
	entryNode()
}

// VarEntry binds a name to a variable of a known type.
type VarEntry struct {
	Type types.Type
}

// FunEntry binds a name to a function signature.
type FunEntry struct {
	Formals []types.Type
	Result  types.Type
}

func (e *VarEntry) entryNode() {}
func (e *FunEntry) entryNode() {}

// VEnv maps names to value entries; TEnv maps names to types. Both are
// persistent, so extending one inside a scope never disturbs the parent.
type (
	VEnv = *symbol.Table[Entry]
	TEnv = *symbol.Table[types.Type]
)

// BaseTEnv returns the type environment with the language primitives.
func BaseTEnv() TEnv {
	env := symbol.EmptyTable[types.Type]()
	env = env.Insert(symbol.Intern("int"), types.Int)
	env = env.Insert(symbol.Intern("string"), types.String)
	return env
}

// BaseVEnv returns the value environment with the built-in procedures.
func BaseVEnv() VEnv {
	env := symbol.EmptyTable[Entry]()
	bind := func(name string, formals []types.Type, result types.Type) {
		env = env.Insert(symbol.Intern(name), &FunEntry{Formals: formals, Result: result})
	}
	bind("print", []types.Type{types.String}, types.Unit)
	bind("flush", nil, types.Unit)
	bind("getchar", nil, types.String)
	bind("ord", []types.Type{types.String}, types.Int)
	bind("chr", []types.Type{types.Int}, types.String)
	bind("size", []types.Type{types.String}, types.Int)
	bind("substring", []types.Type{types.String, types.Int, types.Int}, types.String)
	bind("concat", []types.Type{types.String, types.String}, types.String)
	bind("not", []types.Type{types.Int}, types.Int)
	bind("exit", []types.Type{types.Int}, types.Unit)
	return env
}
