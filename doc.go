/*
Package hilite provides a lightweight, dependency-free fallback tokenizer for
syntax highlighting, plus renderers that turn its tokens into styled output.

It is meant for code viewers that cannot (or should not) run a full parsing
engine: an input that is too large, a language the richer engine does not
support, or a context where only a quick visual classification is wanted.
The tokenizer trades precision for totality — it never fails, it never
validates, and every byte of the input ends up in exactly one token.

Tokenizing a line is a single call:

	toks := hilite.Tokenize(`const x = "hi" // greeting`, "javascript")
	// [keyword:"const" text:" " text:"x" text:" = " string:"\"hi\"" text:" " comment:"// greeting"]

Concatenating the token values always reproduces the input exactly, so a
renderer can substitute styled spans for tokens without tracking positions.

Rendering goes through Highlight with functional options:

	var buf bytes.Buffer
	err := hilite.Highlight(&buf, src,
		hilite.WithLanguage("python"),
		hilite.WithTheme(render.Light()),
	)

Keyword classification is the only per-language behavior. Sets exist for
"javascript", "typescript" and "python" (exact lowercase ids, no aliases);
every other language id falls back to the empty set, which means no keyword
tokens, never an error.

Scanning is stateless and each call is independent of the previous one: there
are no cross-line constructs, so callers may tokenize whole files or single
visible lines of a viewport with identical results per line.
*/
package hilite
