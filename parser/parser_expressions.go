/*
File    : milkconv/parser/parser_expressions.go
*/
package parser

import (
	"strconv"

	"github.com/milkconv/milkconv/ast"
	"github.com/milkconv/milkconv/lexer"
)

// parseExpr climbs from minPrec upward, left-associative at every level
// (the dialect has no right-associative infix operator besides assignment,
// handled separately in parser.go).
func (p *Parser) parseExpr(minPrec int) (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		prec := getPrecedence(p.currToken.Type)
		if prec <= minPrec {
			break
		}
		opTok := p.currToken
		op, ok := binaryOpFor(opTok.Type)
		if !ok {
			break
		}
		p.advance()
		right, err := p.parseExpr(prec)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, LHS: left, RHS: right, Pos: ast.SpanOf(opTok)}
	}

	return left, nil
}

func (p *Parser) parseUnary() (ast.Node, error) {
	switch p.currToken.Type {
	case lexer.MINUS_OP:
		tok := p.currToken
		p.advance()
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: ast.Neg, Arg: arg, Pos: ast.SpanOf(tok)}, nil
	case lexer.NOT_OP:
		tok := p.currToken
		p.advance()
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: ast.LogicalNot, Arg: arg, Pos: ast.SpanOf(tok)}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.currToken

	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errorf(tok, "malformed numeric literal %q", tok.Literal)
			return nil, err
		}
		return &ast.Const{Value: v, Raw: tok.Literal, Pos: ast.SpanOf(tok)}, nil

	case lexer.LEFT_PAREN:
		p.advance()
		inner, err := p.parseExpr(MINIMUM_PRIORITY)
		if err != nil {
			return nil, err
		}
		if p.currToken.Type != lexer.RIGHT_PAREN {
			p.errorf(p.currToken, "expected ')', got %q", p.currToken.Literal)
			return nil, &ParseError{Line: p.currToken.Line, Column: p.currToken.Column, Message: "expected ')'"}
		}
		p.advance()
		return inner, nil

	case lexer.IDENTIFIER:
		if p.nextToken.Type == lexer.LEFT_PAREN {
			return p.parseCall()
		}
		p.advance()
		v := &ast.Var{Name: tok.Literal, Pos: ast.SpanOf(tok)}
		p.Symbols.Resolve(v.Name, v.Pos)
		return v, nil

	default:
		p.errorf(tok, "unexpected token %q", tok.Literal)
		return nil, &ParseError{Line: tok.Line, Column: tok.Column, Message: "unexpected token"}
	}
}

func (p *Parser) parseCall() (ast.Node, error) {
	nameTok := p.currToken
	if !functionWhitelist[nameTok.Literal] {
		p.errorf(nameTok, "unknown function %q", nameTok.Literal)
		return nil, &ParseError{Line: nameTok.Line, Column: nameTok.Column, Message: "unknown function"}
	}
	p.advance() // consume identifier
	p.advance() // consume '('

	var args []ast.Node
	for p.currToken.Type != lexer.RIGHT_PAREN {
		arg, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.currToken.Type == lexer.COMMA_DELIM {
			p.advance()
			continue
		}
		break
	}
	if p.currToken.Type != lexer.RIGHT_PAREN {
		p.errorf(p.currToken, "expected ')' in call to %q, got %q", nameTok.Literal, p.currToken.Literal)
		return nil, &ParseError{Line: p.currToken.Line, Column: p.currToken.Column, Message: "expected ')'"}
	}
	p.advance()

	return &ast.Call{Name: nameTok.Literal, Args: args, Pos: ast.SpanOf(nameTok)}, nil
}
