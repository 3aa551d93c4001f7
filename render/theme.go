package render

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/hilite/go-hilite/token"
)

// Style describes how one token type is displayed.
type Style struct {
	Color  string `yaml:"color"` // "#rrggbb" or a basic ANSI color name
	Bold   bool   `yaml:"bold"`
	Italic bool   `yaml:"italic"`
}

// Theme maps token types to styles. A theme is always passed explicitly to a
// renderer; there is no ambient or process-global theme. Token types missing
// from Styles render unstyled.
type Theme struct {
	Name   string
	Styles map[token.Type]Style
}

// Style returns the style for a token type, or the zero (plain) style.
func (t *Theme) Style(typ token.Type) Style {
	return t.Styles[typ]
}

// Dark is the built-in theme for dark backgrounds.
func Dark() *Theme {
	return &Theme{
		Name: "dark",
		Styles: map[token.Type]Style{
			token.Keyword: {Color: "#c678dd", Bold: true},
			token.String:  {Color: "#98c379"},
			token.Comment: {Color: "#5c6370", Italic: true},
			token.Number:  {Color: "#d19a66"},
		},
	}
}

// Light is the built-in theme for light backgrounds.
func Light() *Theme {
	return &Theme{
		Name: "light",
		Styles: map[token.Type]Style{
			token.Keyword: {Color: "#a626a4", Bold: true},
			token.String:  {Color: "#50a14f"},
			token.Comment: {Color: "#a0a1a7", Italic: true},
			token.Number:  {Color: "#986801"},
		},
	}
}

type themeFile struct {
	Name   string           `yaml:"name"`
	Styles map[string]Style `yaml:"styles"`
}

// ParseTheme reads a YAML theme definition:
//
//	name: solarized
//	styles:
//	  keyword: {color: "#859900", bold: true}
//	  comment: {color: "#586e75", italic: true}
//
// Styles must be keyed by known token types. Types left out of the file
// render unstyled.
func ParseTheme(data []byte) (*Theme, error) {
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("hilite: parsing theme: %w", err)
	}
	t := &Theme{Name: tf.Name, Styles: make(map[token.Type]Style, len(tf.Styles))}
	for k, s := range tf.Styles {
		typ := token.Type(k)
		if !token.Valid(typ) {
			return nil, fmt.Errorf("hilite: theme %q: unknown token type %q", tf.Name, k)
		}
		t.Styles[typ] = s
	}
	return t, nil
}
