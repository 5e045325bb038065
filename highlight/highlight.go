package highlight

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ahkatlio/hhat-lang/lexer"
)

// CacheSize is the maximum number of token streams kept by a Highlighter.
// Editors re-render the same buffer many times between edits; a few hundred
// entries covers a large workspace.
const CacheSize = 512

// Highlighter tokenizes source text for rendering hosts. It memoizes the
// token stream per source string, so repeated renders of an unchanged buffer
// skip the scan entirely. The LRU cache is thread-safe, and the underlying
// tokenizer is a pure function, so a single Highlighter may be shared across
// goroutines.
type Highlighter struct {
	normalizer *Normalizer
	cache      *lru.Cache[string, []lexer.Token]
}

// NewHighlighter creates a Highlighter with the default normalizer and the
// token-stream cache enabled.
func NewHighlighter() *Highlighter {
	cache, _ := lru.New[string, []lexer.Token](CacheSize)
	return &Highlighter{normalizer: NewNormalizer(), cache: cache}
}

// NewHighlighterNoCache creates a Highlighter without caching. Use this when
// sources are rarely repeated or memory is constrained.
func NewHighlighterNoCache() *Highlighter {
	return &Highlighter{normalizer: NewNormalizer()}
}

// SetNormalizer replaces the cleanup pipeline. A nil normalizer disables
// normalization, so tokens then cover the raw input byte for byte.
func (h *Highlighter) SetNormalizer(n *Normalizer) {
	h.normalizer = n
}

// Tokens returns the token stream for src. The returned slice may be shared
// with the cache and other callers; treat it as read-only. When a cleanup
// pipeline is configured, token offsets refer to the normalized text, which
// can differ from src.
func (h *Highlighter) Tokens(src string) []lexer.Token {
	if h.cache == nil {
		return h.tokenize(src)
	}
	if tokens, ok := h.cache.Get(src); ok {
		return tokens
	}
	tokens := h.tokenize(src)
	h.cache.Add(src, tokens)
	return tokens
}

func (h *Highlighter) tokenize(src string) []lexer.Token {
	if h.normalizer != nil {
		src = h.normalizer.Normalize(src)
	}
	return lexer.Tokenize(src)
}
