package highlight

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahkatlio/hhat-lang/lexer"
)

const sampleSource = "fn add(a:i32 b:i32) i32 { ::sum(a b) }\n"

func TestHighlighterCacheReuse(t *testing.T) {
	h := NewHighlighter()
	first := h.Tokens(sampleSource)
	second := h.Tokens(sampleSource)
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	// Same backing array proves the second call was a cache hit.
	assert.Same(t, &first[0], &second[0])
}

func TestHighlighterNoCache(t *testing.T) {
	cached := NewHighlighter()
	uncached := NewHighlighterNoCache()
	assert.Equal(t, cached.Tokens(sampleSource), uncached.Tokens(sampleSource))
}

func TestHighlighterNormalizes(t *testing.T) {
	h := NewHighlighterNoCache()
	tokens := h.Tokens("\ufefffn\r\n")

	var joined strings.Builder
	for _, tok := range tokens {
		joined.WriteString(tok.Text)
	}
	assert.Equal(t, "fn\n", joined.String())
	assert.Equal(t, lexer.TokenKeywordDecl, tokens[0].Kind)
}

func TestHighlighterNilNormalizer(t *testing.T) {
	h := NewHighlighterNoCache()
	h.SetNormalizer(nil)
	tokens := h.Tokens("fn\r\n")

	var joined strings.Builder
	for _, tok := range tokens {
		joined.WriteString(tok.Text)
	}
	assert.Equal(t, "fn\r\n", joined.String())
}

func TestNormalizerDefaultPipeline(t *testing.T) {
	n := NewNormalizer()
	assert.Equal(t, "a\nb\nc", n.Normalize("\ufeffa\r\nb\rc"))
	// NFC composes a decomposed accent into a single rune.
	assert.Equal(t, "é", n.Normalize("e\u0301"))
}

func TestNormalizerCustomSteps(t *testing.T) {
	n := NewNormalizerWithSteps(strings.ToLower, strings.TrimSpace)
	assert.Equal(t, "fn", n.Normalize("  FN  "))
}

func TestWriteANSIPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	require.NoError(t, WriteANSI(&buf, lexer.Tokenize(sampleSource), DefaultStyle()))
	assert.Equal(t, sampleSource, buf.String())
}

func TestWriteANSIColored(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	require.NoError(t, WriteANSI(&buf, lexer.Tokenize("fn"), DefaultStyle()))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "fn")
}
