// Package highlight is the host-facing layer around the Heather lexer:
// source cleanup before tokenization, a bounded cache of token streams for
// hosts that re-render the same buffer, and ANSI terminal rendering for the
// demonstration surface. The lexer package stays a pure tokenizer; everything
// a consuming tool needs beyond the token stream lives here.
package highlight
