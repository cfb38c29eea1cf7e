/*
File    : milkconv/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConsumeToken represents a table-driven test case for ConsumeTokens.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `zoom = 1.2;`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER, "zoom"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER, "1.2"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `q1 = sqr(time)+rand(2);`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER, "q1"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER, "sqr"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER, "time"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(PLUS_OP, "+"),
				NewToken(IDENTIFIER, "rand"),
				NewToken(LEFT_PAREN, "("),
				NewToken(NUMBER, "2"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `if(above(bass, 0.5), r = 1, r = 0);`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER, "if"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER, "above"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER, "bass"),
				NewToken(COMMA_DELIM, ","),
				NewToken(NUMBER, "0.5"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(COMMA_DELIM, ","),
				NewToken(IDENTIFIER, "r"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER, "1"),
				NewToken(COMMA_DELIM, ","),
				NewToken(IDENTIFIER, "r"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER, "0"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `a <= b >= c == d != e & f | g ^ h`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER, "a"),
				NewToken(LE_OP, "<="),
				NewToken(IDENTIFIER, "b"),
				NewToken(GE_OP, ">="),
				NewToken(IDENTIFIER, "c"),
				NewToken(EQ_OP, "=="),
				NewToken(IDENTIFIER, "d"),
				NewToken(NE_OP, "!="),
				NewToken(IDENTIFIER, "e"),
				NewToken(BIT_AND_OP, "&"),
				NewToken(IDENTIFIER, "f"),
				NewToken(BIT_OR_OP, "|"),
				NewToken(IDENTIFIER, "g"),
				NewToken(BIT_XOR_OP, "^"),
				NewToken(IDENTIFIER, "h"),
			},
		},
		{
			Input: `x += 1; y -= 2; z *= 3; w /= 4; v %= 5; u &= 6; t |= 7; s ^= 8;`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER, "x"), NewToken(PLUS_ASSIGN, "+="), NewToken(NUMBER, "1"), NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER, "y"), NewToken(MINUS_ASSIGN, "-="), NewToken(NUMBER, "2"), NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER, "z"), NewToken(MUL_ASSIGN, "*="), NewToken(NUMBER, "3"), NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER, "w"), NewToken(DIV_ASSIGN, "/="), NewToken(NUMBER, "4"), NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER, "v"), NewToken(MOD_ASSIGN, "%="), NewToken(NUMBER, "5"), NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER, "u"), NewToken(BIT_AND_ASSIGN, "&="), NewToken(NUMBER, "6"), NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER, "t"), NewToken(BIT_OR_ASSIGN, "|="), NewToken(NUMBER, "7"), NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER, "s"), NewToken(BIT_XOR_ASSIGN, "^="), NewToken(NUMBER, "8"), NewToken(SEMICOLON_DELIM, ";"),
			},
		},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.Input)
		tokens := lex.ConsumeTokens()
		require := len(tt.ExpectedTokens)
		assert.Equal(t, require, len(tokens), "token count mismatch for %q", tt.Input)
		for i := range tokens {
			if i >= len(tt.ExpectedTokens) {
				break
			}
			assert.Equal(t, tt.ExpectedTokens[i].Type, tokens[i].Type, "token[%d].Type for %q", i, tt.Input)
			assert.Equal(t, tt.ExpectedTokens[i].Literal, tokens[i].Literal, "token[%d].Literal for %q", i, tt.Input)
		}
	}
}

func TestLexer_NumberLiterals(t *testing.T) {
	cases := map[string]string{
		"2":       "2",
		"3.14":    "3.14",
		"1e-3":    "1e-3",
		"1.4E9":   "1.4E9",
		"0.5":     "0.5",
		"100":     "100",
	}
	for input, want := range cases {
		lex := NewLexer(input)
		tok := lex.NextToken()
		assert.Equal(t, NUMBER, tok.Type)
		assert.Equal(t, want, tok.Literal)
	}
}

func TestLexer_LineColumnTracking(t *testing.T) {
	lex := NewLexer("a\nb")
	first := lex.NextToken()
	assert.Equal(t, 1, first.Line)
	second := lex.NextToken()
	assert.Equal(t, 2, second.Line)
}
