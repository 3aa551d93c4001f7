package hilite

import (
	"io"

	"github.com/hilite/go-hilite/internal/scanner"
	"github.com/hilite/go-hilite/lang"
	"github.com/hilite/go-hilite/render"
	"github.com/hilite/go-hilite/token"
)

// Tokenize splits src into an ordered, lossless sequence of tokens using the
// keyword set of language. The language id is lowercased before the lookup;
// unrecognized ids select the empty keyword set. Tokenize is total: it never
// returns an error and consumes every byte of src.
func Tokenize(src, language string) []token.Token {
	return scanner.Scan(src, lang.Lookup(language))
}

// Highlight tokenizes src and writes it to w through a renderer. By default
// it renders ANSI-colored text with the dark theme; use WithLanguage,
// WithTheme and WithRenderer to change that.
func Highlight(w io.Writer, src string, opts ...Option) error {
	cfg := config{theme: render.Dark()}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return err
		}
	}
	r := cfg.renderer
	if r == nil {
		r = render.NewANSI(cfg.theme)
	}
	return r.Render(w, Tokenize(src, cfg.language))
}
