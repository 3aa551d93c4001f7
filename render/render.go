// Package render turns token streams into styled output. The tokenizer in the
// parent package guarantees `type`/`value` pairing only; everything visual —
// colors, spans, dark/light variants — lives here.
package render

import (
	"io"

	"github.com/hilite/go-hilite/token"
)

// Renderer writes a token stream to w. Implementations must write every
// token's value exactly once, in order, so the rendered output carries the
// full input (modulo the renderer's own markup).
type Renderer interface {
	Render(w io.Writer, toks []token.Token) error
}
