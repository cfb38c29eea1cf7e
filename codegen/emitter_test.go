/*
File    : milkconv/codegen/emitter_test.go
*/
package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milkconv/milkconv/ast"
	"github.com/milkconv/milkconv/parser"
	"github.com/milkconv/milkconv/symtab"
)

func parse(t *testing.T, src string) (*ast.Sequence, *symtab.Table) {
	t.Helper()
	symbols := symtab.New()
	p := parser.New(src, symbols)
	seq := p.Parse()
	assert.False(t, p.HasErrors(), "unexpected parse errors: %v", p.GetErrors())
	return seq, symbols
}

func TestEmitter_PlainAssignment(t *testing.T) {
	seq, symbols := parse(t, `zoom = 1.2;`)
	out := New(symbols).Emit(seq)
	assert.Contains(t, out, "zoom = 1.2;")
}

func TestEmitter_IfRewritesToTernary(t *testing.T) {
	seq, symbols := parse(t, `if(bass > 0.5, r = 1, r = 0);`)
	out := New(symbols).Emit(seq)
	assert.Contains(t, out, "((iAudioBands.x > 0.5) ? (r = 1.0) : (r = 0.0));")
}

func TestEmitter_IfWithComparisonFunctionCallRewritesToTernary(t *testing.T) {
	seq, symbols := parse(t, `if(above(bass, 0.5), r = 1, r = 0);`)
	out := New(symbols).Emit(seq)
	assert.Contains(t, out, "((iAudioBands.x > 0.5) ? (r = 1.0) : (r = 0.0));")
}

func TestEmitter_SqrAndRand(t *testing.T) {
	seq, symbols := parse(t, `q1 = sqr(time)+rand(2);`)
	out := New(symbols).Emit(seq)
	assert.Contains(t, out, "q1 = (((iTime)*(iTime)) + (rand(uv) * 2.0));")
}

func TestEmitter_BuiltinArithmetic(t *testing.T) {
	seq, symbols := parse(t, `myvar = bass*2;`)
	out := New(symbols).Emit(seq)
	assert.Contains(t, out, "myvar = (iAudioBands.x * 2.0);")
}

func TestEmitter_PerPixelRewrite(t *testing.T) {
	seq, symbols := parse(t, `red = min(max(zoomexp, 0.0), 1.0);
alpha = 1;`)
	out := New(symbols).WithRewrites(symtab.PerPixelRewrites).Emit(seq)
	assert.Contains(t, out, "pixelColor.r")
	assert.Contains(t, out, "pixelColor.a")
	assert.NotContains(t, out, "unknown node")
}

func TestEmitter_CompoundAssignPowSemantics(t *testing.T) {
	seq, symbols := parse(t, `q1 ^= 2;`)
	out := New(symbols).Emit(seq)
	assert.Contains(t, out, "q1 = pow(q1, 2.0);")
}

func TestEmitter_BitwiseAndOrUseIntCast(t *testing.T) {
	seq, symbols := parse(t, `q1 = q2 & q3;
q4 = q5 | q6;`)
	out := New(symbols).Emit(seq)
	assert.Contains(t, out, "q1 = float(int(q2) & int(q3));")
	assert.Contains(t, out, "q4 = float(int(q5) | int(q6));")
}

func TestEmitter_ModUsesGLSLMod(t *testing.T) {
	seq, symbols := parse(t, `q1 = q2 % q3;`)
	out := New(symbols).Emit(seq)
	assert.Contains(t, out, "q1 = mod(q2, q3);")
}

func TestEmitter_LogicalNotUnary(t *testing.T) {
	seq, symbols := parse(t, `q1 = !bass;`)
	out := New(symbols).Emit(seq)
	assert.Contains(t, out, "q1 = float_from_bool(iAudioBands.x == 0.0);")
}

func TestEmitter_IntegerLiteralsAlwaysParseAsFloat(t *testing.T) {
	seq, symbols := parse(t, `q1 = 2; q2 = 2.5; q3 = 2e3;`)
	out := New(symbols).Emit(seq)
	assert.Contains(t, out, "q1 = 2.0;")
	assert.Contains(t, out, "q2 = 2.5;")
	assert.Contains(t, out, "q3 = 2e3;")
}

func TestEmitter_BuiltinVarRoundTripsByteForByte(t *testing.T) {
	for name, glsl := range symtab.BuiltinVar {
		seq, symbols := parse(t, name+" = "+name+";")
		out := New(symbols).Emit(seq)
		assert.Contains(t, out, glsl+" = "+glsl+";")
	}
}
