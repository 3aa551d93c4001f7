// Package scanner implements the single-pass tokenizer behind hilite.
package scanner

import (
	"github.com/hilite/go-hilite/lang"
	"github.com/hilite/go-hilite/token"
)

// Scan tokenizes src in one left-to-right pass using kw to classify
// identifiers. Every byte of src lands in exactly one token, in order, so
// concatenating the token values reproduces src. Scan never fails: malformed
// input degrades to text tokens rather than producing an error.
//
// Scan holds no state between calls. Lines are independent; there is no
// cross-line construct such as a block comment or multi-line string.
func Scan(src string, kw lang.Set) []token.Token {
	if len(src) == 0 {
		return nil
	}
	var toks []token.Token
	for i := 0; i < len(src); {
		var tok token.Token
		tok, i = next(src, i, kw)
		toks = append(toks, tok)
	}
	return toks
}

// next scans one token starting at i and returns it together with the
// position one past its end. Branches are checked in precedence order:
// comment, string, number, identifier, fallback run.
func next(src string, i int, kw lang.Set) (token.Token, int) {
	ch := src[i]
	switch {
	case ch == '/' && i+1 < len(src) && src[i+1] == '/':
		return scanComment(src, i)
	case ch == '"' || ch == '\'' || ch == '`':
		return scanString(src, i)
	case isDigit(ch):
		return scanNumber(src, i)
	case isIdentStart(ch):
		return scanIdent(src, i, kw)
	}
	return scanRun(src, i)
}

// scanComment consumes a // comment up to, but not including, the newline.
func scanComment(src string, start int) (token.Token, int) {
	i := start + 2
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return token.Token{Type: token.Comment, Value: src[start:i]}, i
}

// scanString consumes a quoted literal through the matching close quote.
// A backslash keeps the following byte inside the string verbatim; escape
// sequences are never decoded. An unterminated string runs to end of input.
func scanString(src string, start int) (token.Token, int) {
	quote := src[start]
	i := start + 1
	for i < len(src) && src[i] != quote {
		if src[i] == '\\' && i+1 < len(src) {
			i++
		}
		i++
	}
	if i < len(src) {
		i++ // closing quote
	}
	return token.Token{Type: token.String, Value: src[start:i]}, i
}

// scanNumber consumes a maximal run of digits, '.' and '_'. There is no
// validation: "1.2.3" and "1__" are single number tokens.
func scanNumber(src string, start int) (token.Token, int) {
	i := start + 1
	for i < len(src) && (isDigit(src[i]) || src[i] == '.' || src[i] == '_') {
		i++
	}
	return token.Token{Type: token.Number, Value: src[start:i]}, i
}

func scanIdent(src string, start int, kw lang.Set) (token.Token, int) {
	i := start + 1
	for i < len(src) && isIdentChar(src[i]) {
		i++
	}
	word := src[start:i]
	if kw.Has(word) {
		return token.Token{Type: token.Keyword, Value: word}, i
	}
	return token.Token{Type: token.Text, Value: word}, i
}

// scanRun consumes a maximal run of bytes that cannot start any other branch
// and are not '/' or '\n'. When the run would be empty (a lone '/' or a
// newline), that single byte becomes its own text token.
func scanRun(src string, start int) (token.Token, int) {
	i := start
	for i < len(src) && !breaksRun(src[i]) {
		i++
	}
	if i == start {
		i++
	}
	return token.Token{Type: token.Text, Value: src[start:i]}, i
}

func breaksRun(ch byte) bool {
	return isIdentChar(ch) || ch == '"' || ch == '\'' || ch == '`' || ch == '/' || ch == '\n'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_' || ch == '$'
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
