// Package lang holds the per-language keyword sets used to classify
// identifiers during scanning.
package lang

import "strings"

// Set is the keyword set of one language. Membership is case-sensitive.
// The zero value is the empty set.
type Set map[string]struct{}

// Has reports whether word is a keyword of the set.
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

func newSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

var javascriptWords = []string{
	"async", "await", "break", "case", "catch", "class", "const", "continue",
	"debugger", "default", "delete", "do", "else", "export", "extends",
	"false", "finally", "for", "function", "if", "import", "in", "instanceof",
	"let", "new", "null", "of", "return", "static", "super", "switch", "this",
	"throw", "true", "try", "typeof", "undefined", "var", "void", "while",
	"yield",
}

var typescriptWords = append([]string{
	"abstract", "any", "as", "boolean", "declare", "enum", "implements",
	"interface", "is", "keyof", "namespace", "never", "number", "private",
	"protected", "public", "readonly", "string", "type", "unknown",
}, javascriptWords...)

var pythonWords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is", "lambda",
	"nonlocal", "not", "or", "pass", "raise", "return", "try", "while",
	"with", "yield",
}

var sets = map[string]Set{
	"javascript": newSet(javascriptWords...),
	"typescript": newSet(typescriptWords...),
	"python":     newSet(pythonWords...),
}

// Lookup returns the keyword set for a language identifier. The identifier is
// lowercased before the lookup; anything that does not match a known id
// exactly gets the empty set, so unrecognized languages highlight no
// keywords. Shorthand ids such as "js" or "py" are deliberately not mapped.
func Lookup(id string) Set {
	return sets[strings.ToLower(id)]
}

// Languages returns the ids with a non-empty keyword set, in no particular
// order.
func Languages() []string {
	ids := make([]string, 0, len(sets))
	for id := range sets {
		ids = append(ids, id)
	}
	return ids
}
