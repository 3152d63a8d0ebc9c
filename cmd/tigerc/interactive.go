package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// runInteractive reads AST file paths one per line and checks each on
// Enter, with history across sessions. Handy when iterating on a parser
// that keeps regenerating the same dump files.
func runInteractive(asJSON bool) {
	line := liner.NewLiner()
	defer line.Close()

	historyFile := filepath.Join(os.TempDir(), ".tigerc_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f) // Ignore error as history is optional
		f.Close()
	}

	fmt.Printf("%s %s\n", bold("tigerc"), bold(Version))
	fmt.Println("Enter an AST file path to check it, :quit to exit")
	fmt.Println()

	for {
		input, err := line.Prompt("tigerc> ")
		if err == io.EOF {
			fmt.Println(green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ":quit" || input == ":q" {
			break
		}
		line.AppendHistory(input)
		checkFile(input, asJSON)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}
