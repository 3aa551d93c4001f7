package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/hilite/go-hilite/token"
)

// ANSI renders tokens as ANSI-colored terminal text. Color output honors the
// color package's global NoColor switch, so piping through a non-terminal
// degrades to the plain token values.
type ANSI struct {
	styles map[token.Type]func(a ...any) string
}

// NewANSI builds a renderer from a theme. A nil theme renders everything
// unstyled.
func NewANSI(t *Theme) *ANSI {
	a := &ANSI{styles: make(map[token.Type]func(a ...any) string)}
	if t == nil {
		return a
	}
	for _, typ := range token.Types() {
		s, ok := t.Styles[typ]
		if !ok {
			continue
		}
		c := styleColor(s.Color)
		if s.Bold {
			c.Add(color.Bold)
		}
		if s.Italic {
			c.Add(color.Italic)
		}
		a.styles[typ] = c.SprintFunc()
	}
	return a
}

func (a *ANSI) Render(w io.Writer, toks []token.Token) error {
	for _, tok := range toks {
		out := tok.Value
		if f, ok := a.styles[tok.Type]; ok {
			out = f(tok.Value)
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	return nil
}

var namedColors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// styleColor resolves a "#rrggbb" or named color. Anything unparseable keeps
// the terminal's default foreground.
func styleColor(name string) *color.Color {
	if len(name) == 7 && name[0] == '#' {
		r, errR := strconv.ParseUint(name[1:3], 16, 8)
		g, errG := strconv.ParseUint(name[3:5], 16, 8)
		b, errB := strconv.ParseUint(name[5:7], 16, 8)
		if errR == nil && errG == nil && errB == nil {
			return color.RGB(int(r), int(g), int(b))
		}
	}
	if attr, ok := namedColors[strings.ToLower(name)]; ok {
		return color.New(attr)
	}
	return color.New()
}
