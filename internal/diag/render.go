package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Render writes diagnostics to w, one per line, in emission order. With
// colorize set, the code is highlighted the way the CLI does on a TTY.
func Render(w io.Writer, diags []Diagnostic, colorize bool) {
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	for _, d := range diags {
		if colorize {
			fmt.Fprintf(w, "%s %s at offset %s: %s\n", red(string(d.Code)), "error", bold(fmt.Sprint(int(d.Pos))), d.Message)
		} else {
			fmt.Fprintf(w, "%s error at offset %d: %s\n", d.Code, int(d.Pos), d.Message)
		}
	}
}
