/*
File    : milkconv/ast/node.go

Package ast defines the abstract syntax tree produced by parser.Parse for
the EEL2-flavoured per_frame_* / per_pixel_* expression dialect.

Nodes are realized as a tagged sum: a small Node interface plus one
concrete struct per variant, carrying its payload inline and an integer
enum tag for operators. There is no visitor/Accept machinery here — the
GLSL emitter switches on Go's dynamic type directly, which keeps the tree
shallow and avoids the double-dispatch indirection a generic interpreter
would need.
*/
package ast

import "github.com/milkconv/milkconv/lexer"

// Span records the source position an AST node originated from, carried
// through mainly for diagnostics.
type Span struct {
	Line   int
	Column int
}

// Node is implemented by every AST variant.
type Node interface {
	Span() Span
	node()
}

// BinaryOp enumerates the binary operators the dialect supports. There is
// deliberately no Pow/BitXor member: the source evaluator has no standalone
// infix `^` operator, only the compound-assign spelling `^=` (see CompoundOp).
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	BitAnd
	BitOr
	Eq
	NEq
	Lt
	LEq
	Gt
	GEq
	LogicalAnd
	LogicalOr
)

// UnaryOp enumerates the dialect's two prefix operators.
type UnaryOp int

const (
	Neg UnaryOp = iota
	LogicalNot
)

// CompoundOp enumerates the compound-assignment operators. Pow is the
// semantics of the `^=` spelling — the original evaluator maps it to
// `lhs = pow(lhs, rhs)`, not bitwise XOR (see DESIGN.md).
type CompoundOp int

const (
	AddAssign CompoundOp = iota
	SubAssign
	MulAssign
	DivAssign
	ModAssign
	BitAndAssign
	BitOrAssign
	PowAssign
)

// Const is a numeric literal.
type Const struct {
	Value float64
	// Raw preserves the literal's original source spelling so the emitter
	// can decide whether to append ".0" (it already contains '.' or 'e').
	Raw string
	Pos Span
}

func (c *Const) Span() Span { return c.Pos }
func (*Const) node()        {}

// Var references a declared identifier by name. Resolution to a
// VariableEntry happens in the symbol table, keyed by this Name.
type Var struct {
	Name string
	Pos  Span
}

func (v *Var) Span() Span { return v.Pos }
func (*Var) node()        {}

// Assign is a plain `name = value` statement.
type Assign struct {
	Target *Var
	Value  Node
	Pos    Span
}

func (a *Assign) Span() Span { return a.Pos }
func (*Assign) node()        {}

// CompoundAssign is `name op= value`.
type CompoundAssign struct {
	Op     CompoundOp
	Target *Var
	Value  Node
	Pos    Span
}

func (c *CompoundAssign) Span() Span { return c.Pos }
func (*CompoundAssign) node()        {}

// Unary is a prefix operator applied to a single operand.
type Unary struct {
	Op  UnaryOp
	Arg Node
	Pos Span
}

func (u *Unary) Span() Span { return u.Pos }
func (*Unary) node()        {}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Op  BinaryOp
	LHS Node
	RHS Node
	Pos Span
}

func (b *Binary) Span() Span { return b.Pos }
func (*Binary) node()        {}

// Call is a function invocation; Name must be a member of the whitelist
// enforced by the parser (see parser.functionWhitelist).
type Call struct {
	Name string
	Args []Node
	Pos  Span
}

func (c *Call) Span() Span { return c.Pos }
func (*Call) node()        {}

// Sequence is the root form for any statement block: per_frame_, per_pixel_,
// or any nested execute-list.
type Sequence struct {
	Stmts []Node
	Pos   Span
}

func (s *Sequence) Span() Span { return s.Pos }
func (*Sequence) node()        {}

// SpanOf builds a Span from a lexer token's position.
func SpanOf(tok lexer.Token) Span {
	return Span{Line: tok.Line, Column: tok.Column}
}
