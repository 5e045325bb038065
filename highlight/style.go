package highlight

import (
	"io"

	"github.com/fatih/color"

	"github.com/ahkatlio/hhat-lang/lexer"
)

// Style maps token kinds to terminal colors. Kinds without an entry render
// unstyled.
type Style map[lexer.TokenKind]*color.Color

// DefaultStyle is the built-in terminal palette. Quantum kinds render as
// high-intensity variants of their classical counterparts, so the sigil
// distinction survives at a glance.
func DefaultStyle() Style {
	return Style{
		lexer.TokenComment:            color.New(color.FgHiBlack),
		lexer.TokenKeywordDecl:        color.New(color.FgBlue, color.Bold),
		lexer.TokenKeywordType:        color.New(color.FgBlue),
		lexer.TokenKeywordReserved:    color.New(color.FgBlue, color.Underline),
		lexer.TokenBuiltinType:        color.New(color.FgCyan),
		lexer.TokenBuiltinTypeQuantum: color.New(color.FgHiCyan, color.Bold),
		lexer.TokenBool:               color.New(color.FgMagenta),
		lexer.TokenBoolQuantum:        color.New(color.FgHiMagenta, color.Bold),
		lexer.TokenOperatorWord:       color.New(color.FgYellow, color.Bold),
		lexer.TokenOperator:           color.New(color.FgYellow),
		lexer.TokenDecorator:          color.New(color.FgGreen, color.Bold),
		lexer.TokenInteger:            color.New(color.FgRed),
		lexer.TokenFloat:              color.New(color.FgRed),
		lexer.TokenIntegerQuantum:     color.New(color.FgHiRed, color.Bold),
		lexer.TokenString:             color.New(color.FgGreen),
		lexer.TokenIdentifierQuantum:  color.New(color.FgHiWhite, color.Bold),
		lexer.TokenTypeIdentifier:     color.New(color.FgWhite, color.Bold),
		lexer.TokenAttribute:          color.New(color.FgCyan),
		lexer.TokenError:              color.New(color.FgWhite, color.BgRed),
	}
}

// WriteANSI renders a token stream to w with the given style. The written
// text is exactly the concatenation of the token texts plus escape codes, so
// output with colors disabled reproduces the source byte for byte.
func WriteANSI(w io.Writer, tokens []lexer.Token, style Style) error {
	for _, tok := range tokens {
		c := style[tok.Kind]
		if c == nil {
			if _, err := io.WriteString(w, tok.Text); err != nil {
				return err
			}
			continue
		}
		if _, err := c.Fprint(w, tok.Text); err != nil {
			return err
		}
	}
	return nil
}
