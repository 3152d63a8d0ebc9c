// Package pipeline wires the analyzer's phases together: decode a
// serialized AST, type check it, and collect the diagnostics.
package pipeline

import (
	"github.com/sirupsen/logrus"

	"github.com/sunholo/tigerc/internal/ast"
	"github.com/sunholo/tigerc/internal/astjson"
	"github.com/sunholo/tigerc/internal/diag"
	"github.com/sunholo/tigerc/internal/semant"
	"github.com/sunholo/tigerc/internal/types"
)

// Result is the outcome of analyzing one program.
type Result struct {
	// Type is the program's type; Top when checking failed at the root.
	Type types.Type
	// Diagnostics holds the semantic errors in traversal order.
	Diagnostics []diag.Diagnostic
}

// Run decodes and type checks one serialized AST document. A decode error
// is returned as a Go error: malformed input is an upstream defect, not a
// Tiger type error. Semantic errors never fail the run; they come back in
// the Result.
func Run(src []byte) (Result, error) {
	exp, err := astjson.Decode(src)
	if err != nil {
		return Result{}, err
	}
	logrus.WithField("program", ast.Sprint(exp)).Debug("decoded program")
	sink := diag.NewSink()
	checked := semant.TransProg(exp, sink)
	return Result{Type: checked.Ty, Diagnostics: sink.Diagnostics()}, nil
}
