package hilite

import (
	"fmt"

	"github.com/hilite/go-hilite/render"
)

// Option configures a Highlight call.
type Option func(*config) error

type config struct {
	language string
	theme    *render.Theme
	renderer render.Renderer
}

// WithLanguage selects the keyword set used to classify identifiers.
// Unrecognized ids are not an error; they highlight no keywords.
func WithLanguage(id string) Option {
	return func(c *config) error {
		c.language = id
		return nil
	}
}

// WithTheme sets the theme used by the default ANSI renderer. It has no
// effect when WithRenderer is also given.
func WithTheme(t *render.Theme) Option {
	return func(c *config) error {
		if t == nil {
			return fmt.Errorf("hilite: theme must not be nil")
		}
		c.theme = t
		return nil
	}
}

// WithRenderer replaces the default ANSI renderer.
func WithRenderer(r render.Renderer) Option {
	return func(c *config) error {
		if r == nil {
			return fmt.Errorf("hilite: renderer must not be nil")
		}
		c.renderer = r
		return nil
	}
}
