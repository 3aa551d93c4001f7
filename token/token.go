package token

// Type classifies a token. The set is closed; renderers and themes are
// expected to cover it via Types.
type Type string

const (
	Keyword Type = "keyword" // reserved word of the active language
	String  Type = "string"  // quoted literal, delimiters included
	Comment Type = "comment" // // line comment, marker included
	Number  Type = "number"  // run of digits, '.' and '_'
	Text    Type = "text"    // anything else: identifiers, punctuation, whitespace
)

// Token is a classified contiguous substring of one scan's input. Value holds
// the exact bytes consumed, delimiters and all, so concatenating the Values of
// a scan in order reproduces the input.
type Token struct {
	Type  Type
	Value string
}

// Types returns every token type, in a stable order.
func Types() []Type {
	return []Type{Keyword, String, Comment, Number, Text}
}

// Valid reports whether t is one of the known token types.
func Valid(t Type) bool {
	switch t {
	case Keyword, String, Comment, Number, Text:
		return true
	}
	return false
}
