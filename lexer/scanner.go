package lexer

import "unicode/utf8"

// Scanner tokenizes Heather source text into a stream of tokens.
//
// A Scanner is single-use: create one per input, drain it with Next, discard
// it. The rule tables it evaluates are immutable package state, so any number
// of Scanners may run concurrently.
type Scanner struct {
	src   string
	pos   int    // current byte offset
	modes []mode // non-empty; modes[0] is always modeRoot
}

// New creates a Scanner for the given source text, starting in the root mode.
func New(src string) *Scanner {
	return &Scanner{src: src, modes: []mode{modeRoot}}
}

// Next returns the next token and advances the scanner. ok is false once the
// whole input has been consumed. Next never fails: input no rule recognizes
// comes back as a one-rune TokenError, so the token texts always concatenate
// to the full source.
func (s *Scanner) Next() (Token, bool) {
	for s.pos < len(s.src) {
		if tok, emitted := s.step(); emitted {
			return tok, true
		}
	}
	return Token{}, false
}

// step applies the first matching rule of the current mode at the cursor.
// emitted is false only when the winning rule consumes input without
// producing a token; the cursor always advances by at least one byte.
func (s *Scanner) step() (Token, bool) {
	rest := s.src[s.pos:]
	for _, r := range ruleTables[s.modes[len(s.modes)-1]] {
		m := r.pattern.FindString(rest)
		if m == "" {
			continue
		}
		if r.lookahead != nil && !r.lookahead.MatchString(rest[len(m):]) {
			continue
		}
		start := s.pos
		s.pos += len(m)
		switch r.op {
		case opPush:
			s.modes = append(s.modes, r.next)
		case opPop:
			// The root mode is never popped.
			if len(s.modes) > 1 {
				s.modes = s.modes[:len(s.modes)-1]
			}
		}
		if r.emit == kindNone {
			return Token{}, false
		}
		return Token{Kind: r.emit, Text: m, Start: start, End: s.pos}, true
	}

	// No rule matched: emit a one-rune fallback token and move on.
	_, width := utf8.DecodeRuneInString(rest)
	tok := Token{Kind: TokenError, Text: rest[:width], Start: s.pos, End: s.pos + width}
	s.pos += width
	return tok, true
}

// Tokenize scans src to completion and returns the full token stream. It is
// a pure function of src; the concatenated Text fields of the result
// reproduce src exactly.
func Tokenize(src string) []Token {
	s := New(src)
	var tokens []Token
	for {
		tok, ok := s.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
