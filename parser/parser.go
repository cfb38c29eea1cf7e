/*
File    : milkconv/parser/parser.go

Package parser implements a precedence-climbing parser for the EEL2-flavoured
expression dialect. It never panics: a malformed statement is
recorded as a ParseError and skipped, parsing resumes at the next `;`.
*/
package parser

import (
	"fmt"

	"github.com/milkconv/milkconv/ast"
	"github.com/milkconv/milkconv/lexer"
	"github.com/milkconv/milkconv/symtab"
)

// ParseError describes one statement the parser could not make sense of.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// functionWhitelist is the exhaustive set of callable names.
// Calling anything else yields a ParseError.
var functionWhitelist = map[string]bool{
	"sin": true, "cos": true, "tan": true, "asin": true, "acos": true,
	"atan": true, "atan2": true, "sqrt": true, "pow": true, "exp": true,
	"abs": true, "log": true, "log10": true, "min": true, "max": true,
	"floor": true, "ceil": true, "sign": true, "rand": true, "if": true,
	"sqr": true, "bnot": true, "band": true, "bor": true, "invsqrt": true,
	"sigmoid": true, "exec2": true, "exec3": true, "megabuf": true,

	// Function-call spellings of the comparison operators, kept for
	// presets written against the older function-style syntax.
	"above": true, "aboveeq": true, "below": true, "beloweq": true,
	"equal": true, "notequal": true,
}

// Parser holds the state needed to turn a token stream into an ast.Sequence.
type Parser struct {
	lex       lexer.Lexer
	currToken lexer.Token
	nextToken lexer.Token

	Symbols *symtab.Table
	Errors  []ParseError
}

// New creates a Parser over src, sharing the given symbol table so
// identifiers seen while parsing per_frame_ and per_pixel_ register into
// the same table.
func New(src string, symbols *symtab.Table) *Parser {
	p := &Parser{
		lex:     lexer.NewLexer(src),
		Symbols: symbols,
	}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.currToken = p.nextToken
	p.nextToken = p.lex.NextToken()
}

// HasErrors reports whether any statement failed to parse.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// GetErrors returns every collected ParseError.
func (p *Parser) GetErrors() []ParseError {
	return p.Errors
}

func (p *Parser) errorf(tok lexer.Token, format string, args ...interface{}) {
	p.Errors = append(p.Errors, ParseError{
		Line:    tok.Line,
		Column:  tok.Column,
		Message: fmt.Sprintf(format, args...),
	})
}

// Parse consumes the entire token stream and returns the resulting
// Sequence. Statements that fail to parse are skipped; a block with no
// successful statements yields an empty Sequence.
func (p *Parser) Parse() *ast.Sequence {
	seq := &ast.Sequence{Pos: ast.Span{Line: 1, Column: 1}}

	for p.currToken.Type != lexer.EOF_TYPE {
		start := p.currToken
		stmt, err := p.parseStatement()
		if err != nil {
			p.recoverToNextStatement()
			continue
		}
		if stmt != nil {
			seq.Stmts = append(seq.Stmts, stmt)
		}
		if p.currToken.Type == lexer.SEMICOLON_DELIM {
			p.advance()
			continue
		}
		if p.currToken.Type != lexer.EOF_TYPE {
			p.errorf(p.currToken, "expected ';' after statement starting at %d:%d, got %q", start.Line, start.Column, p.currToken.Literal)
			p.recoverToNextStatement()
		}
	}

	return seq
}

// recoverToNextStatement discards tokens up to and including the next ';'
// (or EOF), so one malformed statement never derails the rest of the block.
func (p *Parser) recoverToNextStatement() {
	for p.currToken.Type != lexer.SEMICOLON_DELIM && p.currToken.Type != lexer.EOF_TYPE {
		p.advance()
	}
	if p.currToken.Type == lexer.SEMICOLON_DELIM {
		p.advance()
	}
}

// parseStatement parses one `assign-or-expression` statement.
func (p *Parser) parseStatement() (ast.Node, error) {
	if p.currToken.Type == lexer.IDENTIFIER && isAssignOp(p.nextToken.Type) {
		return p.parseAssignment()
	}
	return p.parseExpr(MINIMUM_PRIORITY)
}

func isAssignOp(t lexer.TokenType) bool {
	switch t {
	case lexer.ASSIGN_OP, lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN, lexer.MUL_ASSIGN,
		lexer.DIV_ASSIGN, lexer.MOD_ASSIGN, lexer.BIT_AND_ASSIGN, lexer.BIT_OR_ASSIGN,
		lexer.BIT_XOR_ASSIGN:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAssignment() (ast.Node, error) {
	nameTok := p.currToken
	target := &ast.Var{Name: nameTok.Literal, Pos: ast.SpanOf(nameTok)}
	p.Symbols.Resolve(target.Name, target.Pos)

	opTok := p.nextToken
	p.advance() // consume identifier, currToken == op
	p.advance() // consume op, currToken == start of value expr

	value, err := p.parseExpr(MINIMUM_PRIORITY)
	if err != nil {
		return nil, err
	}

	if opTok.Type == lexer.ASSIGN_OP {
		return &ast.Assign{Target: target, Value: value, Pos: ast.SpanOf(nameTok)}, nil
	}

	op, ok := compoundOpFor(opTok.Type)
	if !ok {
		p.errorf(opTok, "unsupported assignment operator %q", opTok.Literal)
		return nil, fmt.Errorf("unsupported assignment operator %q", opTok.Literal)
	}
	return &ast.CompoundAssign{Op: op, Target: target, Value: value, Pos: ast.SpanOf(nameTok)}, nil
}

func compoundOpFor(t lexer.TokenType) (ast.CompoundOp, bool) {
	switch t {
	case lexer.PLUS_ASSIGN:
		return ast.AddAssign, true
	case lexer.MINUS_ASSIGN:
		return ast.SubAssign, true
	case lexer.MUL_ASSIGN:
		return ast.MulAssign, true
	case lexer.DIV_ASSIGN:
		return ast.DivAssign, true
	case lexer.MOD_ASSIGN:
		return ast.ModAssign, true
	case lexer.BIT_AND_ASSIGN:
		return ast.BitAndAssign, true
	case lexer.BIT_OR_ASSIGN:
		return ast.BitOrAssign, true
	case lexer.BIT_XOR_ASSIGN:
		// `^=` is the power compound-assign, not bitwise XOR — see DESIGN.md.
		return ast.PowAssign, true
	default:
		return 0, false
	}
}
