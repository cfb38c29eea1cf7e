/*
File: milkconv/lexer/lexer_utils.go
*/
package lexer

import "unicode"

// isDigitASCII reports whether c is an ASCII decimal digit ('0'..'9').
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWhitespace checks if the given byte is a whitespace character.
func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

// isAlphanumeric checks if the given byte is a letter or digit.
func isAlphanumeric(curr byte) bool {
	return unicode.IsLetter(rune(curr)) || unicode.IsDigit(rune(curr))
}

// isNumeric checks if the given byte is a decimal digit.
func isNumeric(curr byte) bool {
	return unicode.IsDigit(rune(curr))
}

// isAlpha checks if the given byte is an alphabetic character.
func isAlpha(curr byte) bool {
	return unicode.IsLetter(rune(curr))
}

// readNumber reads a decimal float literal: digits, an optional fractional
// part, and an optional exponent (e.g. 2, 3.14, 1e-3, 1.4E9). There is no
// hex/octal/binary literal syntax in the dialect.
func readNumber(lex *Lexer) Token {
	start := lex.Position
	column := lex.Column
	src := lex.Src
	n := lex.SrcLength

	i := start + 1 // lex.Current at start is already known to be a digit
	hasDot := false
	hasExp := false

	for i < n {
		c := src[i]
		if isDigitASCII(c) {
			i++
			continue
		}
		if c == '.' && !hasDot && !hasExp {
			hasDot = true
			i++
			continue
		}
		if (c == 'e' || c == 'E') && !hasExp {
			j := i + 1
			if j < n && (src[j] == '+' || src[j] == '-') {
				j++
			}
			if j < n && isDigitASCII(src[j]) {
				hasExp = true
				i = j + 1
				for i < n && isDigitASCII(src[i]) {
					i++
				}
				continue
			}
			break
		}
		break
	}

	lex.Column += i - start
	lex.Position = i
	if i >= n {
		lex.Current = 0
		lex.Position = n
	} else {
		lex.Current = src[i]
	}

	return NewTokenWithMetadata(NUMBER, src[start:i], lex.Line, column)
}

// readIdentifier reads an identifier: [A-Za-z_][A-Za-z0-9_]*. Unlike the
// teacher language, the dialect has no reserved keywords — every identifier
// is classified later by the symbol table (builtin/control/state/user),
// not by the lexer.
func readIdentifier(lex *Lexer) Token {
	position := lex.Position
	column := lex.Column

	lex.Advance()
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[position:lex.Position]
	return NewTokenWithMetadata(IDENTIFIER, literal, lex.Line, column)
}
