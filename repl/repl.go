/*
File    : pseudo/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the pseudocode
interpreter. The REPL provides an interactive environment where users can:
- Enter program lines one at a time
- See immediate results of evaluation
- Navigate command history using arrow keys
- Receive colored feedback for different kinds of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the parser and evaluator to execute user input.
*/
package repl

import (
	"io"
	"strings"
	"time"

	"github.com/akashmaji946/pseudo/eval"
	"github.com/akashmaji946/pseudo/hostio"
	"github.com/akashmaji946/pseudo/objects"
	"github.com/akashmaji946/pseudo/parser"
	"github.com/akashmaji946/pseudo/position"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the visual configuration for an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "pseudo >>> ")
}

// NewRepl builds a Repl with the given banner/version/prompt configuration.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your program, one line at a time")
	cyanColor.Fprintf(writer, "%s\n", "Indent with a single TAB per nested level")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: one persistent Evaluator (and so one
// scope lifetime) lives across every line read until '.exit' or EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	term := hostio.NewTerminal(reader, writer)
	evaluator := eval.NewEvaluator(term)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator)
	}
}

// executeWithRecovery parses and evaluates one line, timing it and printing
// the elapsed wall-clock time in milliseconds after every run.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "Runtime ERROR: %v\n", recovered)
		}
	}()

	start := time.Now()

	par := parser.NewParser("stdin", line)
	nodes := par.Parse()

	if par.HasErrors() {
		redColor.Fprintf(writer, "%s\n", renderParseError(par, line))
		return
	}

	result := evaluator.Eval(nodes)
	elapsed := time.Since(start)

	if errVal, ok := result.(*objects.Error); ok {
		redColor.Fprintf(writer, "Runtime ERROR: %s\n", errVal.Message)
	} else {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
	cyanColor.Fprintf(writer, "(%.3fms)\n", float64(elapsed.Microseconds())/1000.0)
}

// renderParseError formats the first recorded parse error.
func renderParseError(par *parser.Parser, src string) string {
	msg := par.GetErrors()[0]
	return position.NewDiagnosticNoPos(msg).Render("Parse ERROR", src)
}
