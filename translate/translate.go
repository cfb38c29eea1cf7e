/*
File    : milkconv/translate/translate.go

Package translate is the public orchestrator: it prepares raw preset code
(Normalize), runs it through lexer → parser → symbol table →
codegen, and hands the two translated blocks to the shader assembler,
producing one complete `.frag` string per preset.
*/
package translate

import (
	"regexp"
	"strings"

	"github.com/milkconv/milkconv/ast"
	"github.com/milkconv/milkconv/codegen"
	"github.com/milkconv/milkconv/parser"
	"github.com/milkconv/milkconv/preset"
	"github.com/milkconv/milkconv/profile"
	"github.com/milkconv/milkconv/shader"
	"github.com/milkconv/milkconv/symtab"
)

var commentPattern = regexp.MustCompile(`//[^\n]*`)

// Normalize prepares one raw code block for lexing:
//   - strip `//` line comments
//   - join lines ending in `,` with the next line (MilkDrop's
//     continuation convention for long statements)
//   - ensure every non-empty line ends with `;`
func Normalize(src string) string {
	stripped := commentPattern.ReplaceAllString(src, "")

	rawLines := strings.Split(stripped, "\n")
	var joined []string
	var pending strings.Builder
	for _, line := range rawLines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if pending.Len() > 0 {
			pending.WriteString(" ")
		}
		pending.WriteString(trimmed)
		if strings.HasSuffix(trimmed, ",") {
			continue
		}
		joined = append(joined, pending.String())
		pending.Reset()
	}
	if pending.Len() > 0 {
		joined = append(joined, pending.String())
	}

	for i, line := range joined {
		if !strings.HasSuffix(line, ";") {
			joined[i] = line + ";"
		}
	}
	return strings.Join(joined, "\n")
}

// Diagnostic reports one statement that failed to parse, attributed to
// whichever block (per_frame_ or per_pixel_) produced it.
type Diagnostic struct {
	Block   string
	Line    int
	Column  int
	Message string
}

// Result is the outcome of translating one preset.
type Result struct {
	GLSL        string
	Diagnostics []Diagnostic
}

// Translate reads every control's preset-supplied override, parses the
// concatenated per_frame_/per_pixel_ blocks against one shared symbol
// table, emits GLSL for each, and assembles the final shader. Parse
// errors are collected as diagnostics rather than aborting translation —
// a preset with one malformed statement still produces a shader for
// every other statement.
func Translate(p *preset.Preset, waveMode int, prof profile.Profile) Result {
	symbols := symtab.New()

	perFrameSrc := Normalize(p.GetConcatenatedCode("per_frame_"))
	perPixelSrc := Normalize(p.GetConcatenatedCode("per_pixel_"))

	perFrameSeq, perFrameDiags := parseBlock("per_frame", perFrameSrc, symbols)
	perPixelSeq, perPixelDiags := parseBlock("per_pixel", perPixelSrc, symbols)

	emitter := codegen.New(symbols)
	perFrameGLSL := emitter.Emit(perFrameSeq)
	perPixelGLSL := emitter.WithRewrites(symtab.PerPixelRewrites).Emit(perPixelSeq)

	assembler := &shader.Assembler{
		WaveMode:     waveMode,
		ControlValue: p.GetScalar,
		UserLocals:   symbols.UserLocals(),
		Precision:    prof.Precision,
		MaxWaveIters: prof.MaxWaveIters,
		WidenBounds:  prof.WidenBounds,
	}
	glsl := assembler.Assemble(perFrameGLSL, perPixelGLSL)

	diags := append(perFrameDiags, perPixelDiags...)
	return Result{GLSL: glsl, Diagnostics: diags}
}

func parseBlock(block, src string, symbols *symtab.Table) (*ast.Sequence, []Diagnostic) {
	pr := parser.New(src, symbols)
	seq := pr.Parse()

	var diags []Diagnostic
	for _, e := range pr.GetErrors() {
		diags = append(diags, Diagnostic{Block: block, Line: e.Line, Column: e.Column, Message: e.Message})
	}
	return seq, diags
}
