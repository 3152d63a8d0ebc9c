package diag

import (
	"fmt"

	"github.com/sunholo/tigerc/internal/ast"
)

// Diagnostic is one semantic error, keyed by source position. Data carries
// the kind-specific payload in a structured form so tooling does not have
// to parse Message.
type Diagnostic struct {
	Code    Code           `json:"code"`
	Pos     ast.Pos        `json:"pos"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d: %s: %s", d.Pos, d.Code, d.Message)
}

// Sink accumulates diagnostics in the order the checker emits them, which
// is traversal order.
type Sink struct {
	diags []Diagnostic
}

// NewSink creates an empty sink.
func NewSink() *Sink { return &Sink{} }

// Log appends a diagnostic.
func (s *Sink) Log(d Diagnostic) {
	s.diags = append(s.diags, d)
}

// Diagnostics returns the collected diagnostics in emission order.
func (s *Sink) Diagnostics() []Diagnostic { return s.diags }

// HasErrors reports whether anything was logged.
func (s *Sink) HasErrors() bool { return len(s.diags) > 0 }

// Len returns the number of collected diagnostics.
func (s *Sink) Len() int { return len(s.diags) }
