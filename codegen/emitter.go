/*
File    : milkconv/codegen/emitter.go

Package codegen implements the tree-walking GLSL emitter: the type-bridging
translation from the dialect's single-float AST into GLSL 330, where float
and bool are distinct and never implicitly convertible. Every
emitted expression has a statically known type; composition rules below
are the exhaustive, table-driven set — there is no general type-inference
pass.
*/
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milkconv/milkconv/ast"
	"github.com/milkconv/milkconv/symtab"
)

// Emitter walks an ast.Node tree and renders GLSL text. Variables is
// consulted to decide whether a Var rewrites to a built-in GLSL expression,
// and Rewrites optionally renames output variables (the per_pixel_
// red/green/blue/alpha → pixelColor.* swizzle).
type Emitter struct {
	Variables *symtab.Table
	Rewrites  map[string]string
}

// New creates an Emitter with no output-variable rewrites.
func New(variables *symtab.Table) *Emitter {
	return &Emitter{Variables: variables}
}

// WithRewrites returns a copy of e that additionally renames the given
// variable names on emission (used for per_pixel_'s red/green/blue/alpha).
func (e *Emitter) WithRewrites(rewrites map[string]string) *Emitter {
	return &Emitter{Variables: e.Variables, Rewrites: rewrites}
}

// Emit renders a Sequence as one GLSL statement per child, each indented
// and terminated with ';'.
func (e *Emitter) Emit(seq *ast.Sequence) string {
	var b strings.Builder
	for _, stmt := range seq.Stmts {
		b.WriteString("    ")
		b.WriteString(e.emitNode(stmt))
		b.WriteString(";\n")
	}
	return b.String()
}

// emitNode renders a single expression and returns GLSL text. Its result
// type (float, except for comparisons/logical-not/boolean-combinators,
// whose natural type is bool) is tracked implicitly by the caller that
// needs it — see emitCondition for the one place that matters.
func (e *Emitter) emitNode(n ast.Node) string {
	switch node := n.(type) {
	case *ast.Const:
		return formatConst(node)
	case *ast.Var:
		return e.emitVar(node.Name)
	case *ast.Assign:
		return fmt.Sprintf("%s = %s", e.emitVar(node.Target.Name), e.emitNode(node.Value))
	case *ast.CompoundAssign:
		return e.emitCompoundAssign(node)
	case *ast.Unary:
		return e.emitUnary(node)
	case *ast.Binary:
		return e.emitBinary(node)
	case *ast.Call:
		return e.emitCall(node)
	case *ast.Sequence:
		// Nested sequences (execute-list arguments to exec2/exec3) emit as
		// a comma expression is not valid GLSL; callers of exec2/exec3
		// pass individual expressions instead, so this path is unreached
		// in well-formed input. Render statements joined by comma as a
		// defensive fallback.
		parts := make([]string, len(node.Stmts))
		for i, s := range node.Stmts {
			parts[i] = e.emitNode(s)
		}
		return strings.Join(parts, ", ")
	default:
		return "/* unknown node */"
	}
}

// formatConst renders a numeric literal, appending ".0" when the source
// spelling carries no '.' or exponent so GLSL parses it as float, not int.
func formatConst(c *ast.Const) string {
	if strings.ContainsAny(c.Raw, ".eE") {
		return c.Raw
	}
	return c.Raw + ".0"
}

// emitVar renders a variable reference: built-ins rewrite to their fixed
// GLSL expression, an output rewrite (red/green/blue/alpha) takes priority
// over that when both apply, everything else emits as its bare name
// (declared as a local float by shader.Assembler).
func (e *Emitter) emitVar(name string) string {
	if e.Rewrites != nil {
		if rewritten, ok := e.Rewrites[name]; ok {
			return rewritten
		}
	}
	if glsl, ok := symtab.BuiltinVar[name]; ok {
		return glsl
	}
	return name
}

func (e *Emitter) emitUnary(u *ast.Unary) string {
	switch u.Op {
	case ast.Neg:
		return fmt.Sprintf("(-%s)", e.emitNode(u.Arg))
	case ast.LogicalNot:
		return fmt.Sprintf("float_from_bool(%s == 0.0)", e.emitNode(u.Arg))
	default:
		return "/* unknown unary */"
	}
}

func isComparison(op ast.BinaryOp) bool {
	switch op {
	case ast.Eq, ast.NEq, ast.Lt, ast.LEq, ast.Gt, ast.GEq:
		return true
	default:
		return false
	}
}

var binarySymbol = map[ast.BinaryOp]string{
	ast.Add: "+", ast.Sub: "-", ast.Mul: "*", ast.Div: "/",
	ast.Eq: "==", ast.NEq: "!=", ast.Lt: "<", ast.LEq: "<=", ast.Gt: ">", ast.GEq: ">=",
}

// comparisonFuncSymbol maps the function-call spellings of the comparison
// operators (above/below/equal/...) to their infix GLSL symbol.
var comparisonFuncSymbol = map[string]string{
	"above": ">", "aboveeq": ">=", "below": "<", "beloweq": "<=",
	"equal": "==", "notequal": "!=",
}

func (e *Emitter) emitBinary(b *ast.Binary) string {
	switch b.Op {
	case ast.Mod:
		return fmt.Sprintf("mod(%s, %s)", e.emitNode(b.LHS), e.emitNode(b.RHS))
	case ast.BitAnd:
		return fmt.Sprintf("float(int(%s) & int(%s))", e.emitNode(b.LHS), e.emitNode(b.RHS))
	case ast.BitOr:
		return fmt.Sprintf("float(int(%s) | int(%s))", e.emitNode(b.LHS), e.emitNode(b.RHS))
	case ast.LogicalAnd:
		return fmt.Sprintf("boolean_and_op_eel(%s, %s)", e.emitNode(b.LHS), e.emitNode(b.RHS))
	case ast.LogicalOr:
		return fmt.Sprintf("boolean_or_op_eel(%s, %s)", e.emitNode(b.LHS), e.emitNode(b.RHS))
	default:
		if isComparison(b.Op) {
			return fmt.Sprintf("float_from_bool(%s %s %s)", e.emitNode(b.LHS), binarySymbol[b.Op], e.emitNode(b.RHS))
		}
		return fmt.Sprintf("(%s %s %s)", e.emitNode(b.LHS), binarySymbol[b.Op], e.emitNode(b.RHS))
	}
}

func (e *Emitter) emitCompoundAssign(c *ast.CompoundAssign) string {
	lhs := e.emitVar(c.Target.Name)
	rhs := e.emitNode(c.Value)
	switch c.Op {
	case ast.AddAssign:
		return fmt.Sprintf("%s = %s + %s", lhs, lhs, rhs)
	case ast.SubAssign:
		return fmt.Sprintf("%s = %s - %s", lhs, lhs, rhs)
	case ast.MulAssign:
		return fmt.Sprintf("%s = %s * %s", lhs, lhs, rhs)
	case ast.DivAssign:
		return fmt.Sprintf("%s = %s / %s", lhs, lhs, rhs)
	case ast.ModAssign:
		return fmt.Sprintf("%s = mod(%s, %s)", lhs, lhs, rhs)
	case ast.BitAndAssign:
		return fmt.Sprintf("%s = float(int(%s) & int(%s))", lhs, lhs, rhs)
	case ast.BitOrAssign:
		return fmt.Sprintf("%s = float(int(%s) | int(%s))", lhs, lhs, rhs)
	case ast.PowAssign:
		return fmt.Sprintf("%s = pow(%s, %s)", lhs, lhs, rhs)
	default:
		return "/* unknown compound-assign */"
	}
}

// boolUnwrapPrefix is the textual marker the `if`-unwrap optimization
// strips — recovering a comparison's raw bool expression instead of
// re-wrapping it with a `!= 0.0` comparison.
const boolUnwrapPrefix = "float_from_bool("

// emitCondition renders n as a GLSL bool expression for use in a ternary
// condition slot, unwrapping a float_from_bool(...) wrapper textually when
// present so `if(above(a,b), ...)` doesn't round-trip through a redundant
// `!= 0.0` comparison.
func (e *Emitter) emitCondition(n ast.Node) string {
	rendered := e.emitNode(n)
	if strings.HasPrefix(rendered, boolUnwrapPrefix) && strings.HasSuffix(rendered, ")") {
		return rendered[len(boolUnwrapPrefix) : len(rendered)-1]
	}
	return fmt.Sprintf("%s != 0.0", rendered)
}

func (e *Emitter) emitCall(c *ast.Call) string {
	switch c.Name {
	case "if":
		cond := e.emitCondition(c.Args[0])
		return fmt.Sprintf("((%s) ? (%s) : (%s))", cond, e.emitNode(c.Args[1]), e.emitNode(c.Args[2]))
	case "sqr":
		x := e.emitNode(c.Args[0])
		return fmt.Sprintf("((%s)*(%s))", x, x)
	case "bnot":
		return fmt.Sprintf("float_from_bool(%s == 0.0)", e.emitNode(c.Args[0]))
	case "band":
		return fmt.Sprintf("float_from_bool((%s != 0.0) && (%s != 0.0))", e.emitNode(c.Args[0]), e.emitNode(c.Args[1]))
	case "bor":
		return fmt.Sprintf("float_from_bool((%s != 0.0) || (%s != 0.0))", e.emitNode(c.Args[0]), e.emitNode(c.Args[1]))
	case "atan2":
		return fmt.Sprintf("atan(%s, %s)", e.emitNode(c.Args[0]), e.emitNode(c.Args[1]))
	case "rand":
		return fmt.Sprintf("(rand(uv) * %s)", e.emitNode(c.Args[0]))
	case "exec2":
		return fmt.Sprintf("exec2_helper(%s, %s)", e.emitNode(c.Args[0]), e.emitNode(c.Args[1]))
	case "exec3":
		return fmt.Sprintf("exec3_helper(%s, %s, %s)", e.emitNode(c.Args[0]), e.emitNode(c.Args[1]), e.emitNode(c.Args[2]))
	case "invsqrt":
		return fmt.Sprintf("inversesqrt(%s)", e.emitNode(c.Args[0]))
	case "sigmoid":
		return fmt.Sprintf("sigmoid_eel(%s, %s)", e.emitNode(c.Args[0]), e.emitNode(c.Args[1]))
	case "megabuf":
		return fmt.Sprintf("megabuf(%s)", e.emitNode(c.Args[0]))
	case "above", "aboveeq", "below", "beloweq", "equal", "notequal":
		return fmt.Sprintf("float_from_bool(%s %s %s)", e.emitNode(c.Args[0]), comparisonFuncSymbol[c.Name], e.emitNode(c.Args[1]))
	default:
		args := make([]string, len(c.Args))
		for i, a := range c.Args {
			args[i] = e.emitNode(a)
		}
		return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
	}
}

// parseConstFloat numerically interprets a literal's source spelling, the
// same text formatConst renders.
func parseConstFloat(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}
