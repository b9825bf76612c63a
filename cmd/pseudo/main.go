/*
File    : pseudo/cmd/pseudo/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the pseudocode interpreter. It provides
two modes of operation:
1. REPL mode (default): interactive read-eval-print loop
2. File mode: execute a source file given on the command line
*/
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/akashmaji946/pseudo/eval"
	"github.com/akashmaji946/pseudo/hostio"
	"github.com/akashmaji946/pseudo/objects"
	"github.com/akashmaji946/pseudo/parser"
	"github.com/akashmaji946/pseudo/repl"
	"github.com/fatih/color"
)

// VERSION is the current version of the interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "pseudo >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 ██▓███    ██████ ▓█████ █    ██ ▓█████▄  ▒█████
▓██░  ██▒▒██    ▒ ▓█   ▀ ██  ▓██▒▒██▀ ██▌▒██▒  ██▒
▓██░ ██▓▒░ ▓██▄   ▒███  ▓██  ▒██░░██   █▌▒██░  ██▒
▒██▄█▓▒ ▒  ▒   ██▒▒▓█  ▄▓▓█  ░██░░▓█▄   ▌▒██   ██░
▒██▒ ░  ░▒██████▒▒░▒████▒▒▒█████▓ ░▒████▓ ░ ████▓▒░
▒▓▒░ ░  ░▒ ▒▓▒ ▒ ░░░ ▒░ ░░▒▓▒ ▒ ▒  ▒▒▓  ▒ ░ ▒░▒░▒░
░▒ ░     ░ ░▒  ░ ░ ░ ░  ░░░▒░ ░ ░  ░ ▒  ▒   ░ ▒ ▒░
░░       ░  ░  ░     ░    ░░░ ░ ░  ░ ░  ░ ░ ░ ░ ▒
              ░     ░  ░   ░        ░        ░ ░
                                  ░
`

// LINE is a separator line used for visual formatting.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches to REPL mode or file mode based on command-line arguments.
//
// Usage:
//
//	pseudo              - start interactive REPL
//	pseudo <filename>   - execute the given source file
//	pseudo --help       - display help information
//	pseudo --version    - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		default:
			runFile(arg)
			return
		}
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("pseudo - a pseudocode interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  pseudo                    Start interactive REPL mode")
	yellowColor.Println("  pseudo <path-to-file>     Execute a source file")
	yellowColor.Println("  pseudo --help             Display this help message")
	yellowColor.Println("  pseudo --version          Display version information")
}

func showVersion() {
	cyanColor.Println("pseudo - a pseudocode interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a source file, exiting non-zero on any parse
// or runtime error.
func runFile(fileName string) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "Runtime ERROR: %v\n", recovered)
			os.Exit(1)
		}
	}()

	start := time.Now()

	par := parser.NewParser(fileName, string(src))
	nodes := par.Parse()
	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "Parse ERROR: %s\n", msg)
		}
		os.Exit(1)
	}

	term := hostio.NewTerminal(os.Stdin, os.Stdout)
	evaluator := eval.NewEvaluator(term)
	result := evaluator.Eval(nodes)
	elapsed := time.Since(start)

	if errVal, ok := result.(*objects.Error); ok {
		redColor.Fprintf(os.Stderr, "Runtime ERROR: %s\n", errVal.Message)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Finished in %.3fms\n", float64(elapsed.Microseconds())/1000.0)
}
