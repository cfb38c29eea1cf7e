/*
File    : milkconv/parser/parser_precedence.go

Operator precedence, low to high:
  1. ;              statement separator (handled in parser.go, not here)
  2. = += -= ...     assignment (handled in parser.go, not here)
  3. |               bitwise/logical-or
  4. &               bitwise/logical-and
  5. == !=           equality
  6. < <= > >=       relational
  7. + -             additive
  8. * / %           multiplicative
  9. unary - !       prefix
 10. call, paren, identifier, literal
*/
package parser

import (
	"github.com/milkconv/milkconv/ast"
	"github.com/milkconv/milkconv/lexer"
)

const (
	MINIMUM_PRIORITY = 0

	OR_PRIORITY             = 10
	AND_PRIORITY            = 20
	EQUALITY_PRIORITY       = 30
	RELATIONAL_PRIORITY     = 40
	ADDITIVE_PRIORITY       = 50
	MULTIPLICATIVE_PRIORITY = 60
	PREFIX_PRIORITY         = 70
)

func getPrecedence(t lexer.TokenType) int {
	switch t {
	case lexer.BIT_OR_OP:
		return OR_PRIORITY
	case lexer.BIT_AND_OP:
		return AND_PRIORITY
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY
	case lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP:
		return RELATIONAL_PRIORITY
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return ADDITIVE_PRIORITY
	case lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		return MULTIPLICATIVE_PRIORITY
	default:
		return MINIMUM_PRIORITY
	}
}

// binaryOpFor maps an infix token to its ast.BinaryOp. `|`/`&` always
// produce BitOr/BitAnd — the dialect has no distinct &&/|| spelling, so
// ast.LogicalAnd/ast.LogicalOr are never emitted here (see DESIGN.md).
func binaryOpFor(t lexer.TokenType) (ast.BinaryOp, bool) {
	switch t {
	case lexer.BIT_OR_OP:
		return ast.BitOr, true
	case lexer.BIT_AND_OP:
		return ast.BitAnd, true
	case lexer.EQ_OP:
		return ast.Eq, true
	case lexer.NE_OP:
		return ast.NEq, true
	case lexer.LT_OP:
		return ast.Lt, true
	case lexer.LE_OP:
		return ast.LEq, true
	case lexer.GT_OP:
		return ast.Gt, true
	case lexer.GE_OP:
		return ast.GEq, true
	case lexer.PLUS_OP:
		return ast.Add, true
	case lexer.MINUS_OP:
		return ast.Sub, true
	case lexer.MUL_OP:
		return ast.Mul, true
	case lexer.DIV_OP:
		return ast.Div, true
	case lexer.MOD_OP:
		return ast.Mod, true
	default:
		return 0, false
	}
}
