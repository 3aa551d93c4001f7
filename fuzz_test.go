//go:build go1.18

package hilite_test

import (
	"strings"
	"testing"

	"github.com/hilite/go-hilite"
	"github.com/hilite/go-hilite/token"
	"github.com/stretchr/testify/require"
)

func FuzzTokenize(f *testing.F) {
	// Seed with the shapes each scanner branch cares about.
	f.Add("function foo() { return 42; }", "javascript")
	f.Add("// note\ncode", "")
	f.Add(`say "hi\"there"`, "typescript")
	f.Add(`"abc`, "python")
	f.Add("3.14_159", "")
	f.Add("`back'tick\"mix", "javascript")
	f.Add("/", "js")
	f.Add("\n\r\t ", "PYTHON")
	f.Add("päällekkäin 世界", "")

	f.Fuzz(func(t *testing.T, src, language string) {
		toks := hilite.Tokenize(src, language)

		// Lossless, gap-free coverage: the values concatenate back to the
		// input and account for every byte exactly once.
		var b strings.Builder
		for _, tok := range toks {
			require.NotEmpty(t, tok.Value, "tokenizer produced an empty token")
			require.True(t, token.Valid(tok.Type), "unknown token type %q", tok.Type)
			b.WriteString(tok.Value)
		}
		require.Equal(t, src, b.String())

		// Tokenization is a pure function of its inputs.
		require.Equal(t, toks, hilite.Tokenize(src, language))
	})
}
