package highlight

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Step is a single source-cleanup transformation.
type Step func(string) string

// Normalizer applies a configurable pipeline of cleanup steps to source text
// before it is tokenized. Hosts hand over buffers from many origins (editors,
// doc builders, shell pipes); the default pipeline folds the differences that
// would otherwise surface as stray fallback tokens.
type Normalizer struct {
	steps []Step
}

// NewNormalizer creates a normalizer with the default pipeline: byte order
// mark removal, line-ending folding, and Unicode NFC composition.
func NewNormalizer() *Normalizer {
	return &Normalizer{steps: []Step{StripBOM, FoldLineEndings, ComposeNFC}}
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...Step) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

// StripBOM removes a leading UTF-8 byte order mark.
func StripBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}

// FoldLineEndings rewrites CRLF and lone CR line endings to LF.
func FoldLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// ComposeNFC applies Unicode NFC composition, so visually identical
// identifiers produce byte-identical token text.
func ComposeNFC(s string) string {
	return norm.NFC.String(s)
}
