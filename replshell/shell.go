/*
Package replshell implements an interactive single-expression playground:
the user types one EEL2-flavoured statement, the shell lexes/parses/emits
it in isolation and prints the resulting GLSL, using chzyer/readline for
history and fatih/color for feedback.
*/
package replshell

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/milkconv/milkconv/codegen"
	"github.com/milkconv/milkconv/parser"
	"github.com/milkconv/milkconv/symtab"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Shell is an interactive single-statement EEL2-to-GLSL playground.
type Shell struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New creates a Shell with the given banner, version, separator line, and
// prompt string (e.g. "milkconv >>> ").
func New(banner, version, line, prompt string) *Shell {
	return &Shell{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBanner writes the startup banner to writer.
func (s *Shell) PrintBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", s.Line)
	greenColor.Fprintf(writer, "%s\n", s.Banner)
	blueColor.Fprintf(writer, "%s\n", s.Line)
	yellowColor.Fprintln(writer, "milkconv "+s.Version)
	blueColor.Fprintf(writer, "%s\n", s.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type one EEL2 statement and press enter to see its GLSL translation")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", s.Line)
}

// Start runs the read-eval-print loop until '.exit', EOF, or a readline
// error. Each line gets a fresh symbol table — the shell evaluates one
// statement at a time, it does not accumulate state across lines.
func (s *Shell) Start(writer io.Writer) {
	s.PrintBanner(writer)

	rl, err := readline.New(s.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}
		if strings.TrimSpace(line) == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rl.SaveHistory(line)
		s.evalWithRecovery(writer, line)
	}
}

func (s *Shell) evalWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[ERROR] %v\n", recovered)
		}
	}()

	symbols := symtab.New()
	p := parser.New(line, symbols)
	seq := p.Parse()

	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	emitter := codegen.New(symbols)
	yellowColor.Fprintf(writer, "%s", emitter.Emit(seq))
}
