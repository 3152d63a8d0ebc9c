package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/sunholo/tigerc/internal/diag"
	"github.com/sunholo/tigerc/internal/pipeline"
)

var (
	// Version info - set by ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"

	// Color output
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
		jsonFlag    = flag.Bool("json", false, "Print diagnostics as JSON")
		traceFlag   = flag.Bool("trace", false, "Enable analyzer trace logging")
		interactive = flag.Bool("i", false, "Interactive mode: check one AST file per line")
	)

	flag.Parse()

	if *traceFlag {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if *versionFlag {
		printVersion()
		return
	}

	if *interactive {
		runInteractive(*jsonFlag)
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	command := flag.Arg(0)

	switch command {
	case "check":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Println("Usage: tigerc check <file.ast.yaml>")
			os.Exit(1)
		}
		if !checkFile(flag.Arg(1), *jsonFlag) {
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command '%s'\n", red("Error"), command)
		printHelp()
		os.Exit(1)
	}
}

// checkFile analyzes one serialized AST file and reports the outcome.
// It returns false when the program has semantic errors.
func checkFile(path string, asJSON bool) bool {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		return false
	}
	result, err := pipeline.Run(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		return false
	}
	if asJSON {
		out, err := diag.ToJSON(result.Diagnostics, false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
			return false
		}
		fmt.Println(out)
		return len(result.Diagnostics) == 0
	}
	if len(result.Diagnostics) > 0 {
		diag.Render(os.Stderr, result.Diagnostics, isatty.IsTerminal(os.Stderr.Fd()))
		return false
	}
	fmt.Printf("%s %s : %s\n", green("✓"), path, bold(result.Type.String()))
	return true
}

func printVersion() {
	fmt.Printf("tigerc %s\n", bold(Version))
	if Commit != "unknown" {
		fmt.Printf("Commit: %s\n", Commit)
	}
	if BuildTime != "unknown" {
		fmt.Printf("Built:  %s\n", BuildTime)
	}
}

func printHelp() {
	fmt.Println(bold("tigerc - Tiger semantic analyzer"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  tigerc <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  check <file>    Type check a serialized AST document")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -i              Interactive mode: check one AST file per line")
	fmt.Println("  -json           Print diagnostics as JSON")
	fmt.Println("  -trace          Enable analyzer trace logging")
	fmt.Println("  -version        Print version information")
}
