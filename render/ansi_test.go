package render

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/fatih/color"

	"github.com/hilite/go-hilite/token"
	"github.com/stretchr/testify/require"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = prev })
}

func TestANSIRender(t *testing.T) {
	withColor(t, true)

	toks := []token.Token{
		{Type: token.Keyword, Value: "const"},
		{Type: token.Text, Value: " x = "},
		{Type: token.Number, Value: "42"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewANSI(Dark()).Render(&buf, toks))

	out := buf.String()
	require.Contains(t, out, "\x1b[", "expected escape sequences in colored output")
	require.Equal(t, "const x = 42", ansiSeq.ReplaceAllString(out, ""))
}

func TestANSIRenderNoColor(t *testing.T) {
	withColor(t, false)

	toks := []token.Token{
		{Type: token.Comment, Value: "// c"},
		{Type: token.Text, Value: "\n"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewANSI(Dark()).Render(&buf, toks))
	require.Equal(t, "// c\n", buf.String())
}

func TestANSIRenderNilTheme(t *testing.T) {
	withColor(t, true)

	var buf bytes.Buffer
	toks := []token.Token{{Type: token.Keyword, Value: "def"}}
	require.NoError(t, NewANSI(nil).Render(&buf, toks))
	require.Equal(t, "def", buf.String())
}

func TestANSIRenderNamedColor(t *testing.T) {
	withColor(t, true)

	theme := &Theme{Name: "basic", Styles: map[token.Type]Style{
		token.String: {Color: "green"},
	}}

	var buf bytes.Buffer
	toks := []token.Token{{Type: token.String, Value: `"hi"`}}
	require.NoError(t, NewANSI(theme).Render(&buf, toks))
	require.Contains(t, buf.String(), "\x1b[32m")
	require.Equal(t, `"hi"`, ansiSeq.ReplaceAllString(buf.String(), ""))
}

func TestStyleColorFallback(t *testing.T) {
	// Unparseable colors keep the default foreground instead of erroring.
	for _, name := range []string{"", "#zzzzzz", "#123", "mauve"} {
		require.NotNil(t, styleColor(name), "color %q", name)
	}
}
