package render

import (
	"fmt"
	"html"
	"io"

	"github.com/hilite/go-hilite/token"
)

// HTML renders tokens as escaped text with one <span class="hl-TYPE"> per
// non-text token. Styling is left to a stylesheet keyed on the hl-* classes,
// so the same markup serves dark and light themes.
type HTML struct{}

func NewHTML() *HTML {
	return &HTML{}
}

func (h *HTML) Render(w io.Writer, toks []token.Token) error {
	for _, tok := range toks {
		v := html.EscapeString(tok.Value)
		var err error
		if tok.Type == token.Text {
			_, err = io.WriteString(w, v)
		} else {
			_, err = fmt.Fprintf(w, `<span class="hl-%s">%s</span>`, tok.Type, v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
