package render

import (
	"bytes"
	"testing"

	"github.com/hilite/go-hilite/token"
	"github.com/stretchr/testify/require"
)

func TestHTMLRender(t *testing.T) {
	toks := []token.Token{
		{Type: token.Keyword, Value: "if"},
		{Type: token.Text, Value: " a < b "},
		{Type: token.String, Value: `"x & y"`},
		{Type: token.Comment, Value: "// <ok>"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewHTML().Render(&buf, toks))

	expected := `<span class="hl-keyword">if</span>` +
		` a &lt; b ` +
		`<span class="hl-string">&#34;x &amp; y&#34;</span>` +
		`<span class="hl-comment">// &lt;ok&gt;</span>`
	require.Equal(t, expected, buf.String())
}

func TestHTMLRenderTextUnwrapped(t *testing.T) {
	var buf bytes.Buffer
	toks := []token.Token{{Type: token.Text, Value: "plain\n"}}
	require.NoError(t, NewHTML().Render(&buf, toks))
	require.Equal(t, "plain\n", buf.String())
}
