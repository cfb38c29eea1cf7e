/*
File    : milkconv/symtab/symtab_test.go
*/
package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milkconv/milkconv/ast"
)

func TestClassify_BuiltinControlStateUserLocal(t *testing.T) {
	assert.Equal(t, BuiltinReadOnly, Classify("bass"))
	assert.Equal(t, Control, Classify("zoom"))
	assert.Equal(t, StateRegister, Classify("q17"))
	assert.Equal(t, StateRegister, Classify("t3"))
	assert.Equal(t, UserLocal, Classify("myvar"))
}

func TestClassify_PerPixelColorNamesAliasControl(t *testing.T) {
	assert.Equal(t, Control, Classify("red"))
	assert.Equal(t, Control, Classify("green"))
	assert.Equal(t, Control, Classify("blue"))
	assert.Equal(t, Control, Classify("alpha"))
}

func TestTable_UserLocalsExcludesColorAliases(t *testing.T) {
	tbl := New()
	tbl.Resolve("red", ast.Span{Line: 1, Column: 1})
	tbl.Resolve("myvar", ast.Span{Line: 1, Column: 1})

	names := make([]string, 0)
	for _, e := range tbl.UserLocals() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"myvar"}, names)
}

func TestTable_ResolveIsFirstSeenOrderAndIdempotent(t *testing.T) {
	tbl := New()
	first := tbl.Resolve("myvar", ast.Span{Line: 1, Column: 1})
	again := tbl.Resolve("myvar", ast.Span{Line: 2, Column: 5})
	assert.Same(t, first, again)
	assert.Equal(t, 1, first.FirstSeen.Line)
}
