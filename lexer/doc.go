// Package lexer tokenizes H-hat Heather dialect source text.
//
// The scanner is a mode-stack regex lexer: each mode (root, block comment,
// trait list, modifier) owns an ordered rule table, and at every step the
// first rule whose pattern matches at the cursor wins. A matched rule emits a
// token, advances the cursor, and may push or pop a mode; block comments push
// the comment mode so they can nest to arbitrary depth. Input no rule
// recognizes becomes a one-rune error token, so tokenization always succeeds
// and the emitted token texts concatenate back to the input exactly —
// whitespace and comments are tokens too, which lets consumers reconstruct
// the original text from the stream.
//
// Usage:
//
//	for _, tok := range lexer.Tokenize(src) {
//		fmt.Printf("%-22s %q [%d:%d]\n", tok.Kind, tok.Text, tok.Start, tok.End)
//	}
//
// Tokenize is a pure function: no state survives a call, and concurrent
// calls need no synchronization.
package lexer
