// Package translate is the IR translation collaborator. The semantic
// analyzer fills every checker result with a placeholder expression;
// later passes replace the placeholder with real intermediate code.
package translate

// Exp is the opaque translated form of an expression.
type Exp struct{}

// Placeholder is the value the type checker emits for every expression.
func Placeholder() Exp { return Exp{} }
