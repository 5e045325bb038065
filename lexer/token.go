package lexer

// TokenKind identifies the lexical category of a token.
type TokenKind int

const (
	TokenWhitespace TokenKind = iota
	TokenComment
	TokenKeywordDecl     // const, fn, main, type, use, ...
	TokenKeywordType     // fn_t, ir_t, opn_t, ...
	TokenKeywordReserved // self
	TokenBuiltinType     // int, f64, str, hashmap, ...
	TokenBuiltinTypeQuantum
	TokenBool
	TokenBoolQuantum
	TokenOperatorWord // ::, cast *, reference &
	TokenOperator
	TokenPunctuation
	TokenDecorator // #Trait, #@QuantumTrait
	TokenInteger
	TokenFloat
	TokenIntegerQuantum
	TokenString
	TokenIdentifier
	TokenIdentifierQuantum
	TokenTypeIdentifier // uppercase-led
	TokenAttribute      // names inside <...> modifiers
	TokenError          // fallback for unrecognized input
)

var tokenKindNames = map[TokenKind]string{
	TokenWhitespace:         "whitespace",
	TokenComment:            "comment",
	TokenKeywordDecl:        "keyword-declaration",
	TokenKeywordType:        "keyword-type",
	TokenKeywordReserved:    "keyword-reserved",
	TokenBuiltinType:        "builtin-type-classical",
	TokenBuiltinTypeQuantum: "builtin-type-quantum",
	TokenBool:               "constant-boolean",
	TokenBoolQuantum:        "constant-boolean-quantum",
	TokenOperatorWord:       "operator-word",
	TokenOperator:           "operator",
	TokenPunctuation:        "punctuation",
	TokenDecorator:          "decorator",
	TokenInteger:            "number-integer",
	TokenFloat:              "number-float",
	TokenIntegerQuantum:     "number-quantum-integer",
	TokenString:             "string-literal",
	TokenIdentifier:         "identifier",
	TokenIdentifierQuantum:  "identifier-quantum",
	TokenTypeIdentifier:     "type-identifier",
	TokenAttribute:          "attribute-name",
	TokenError:              "error",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single classified slice of the input.
//
// Start and End are byte offsets into the scanned source; Text is always
// src[Start:End]. Tokens are contiguous: each token's End equals the next
// token's Start, and the stream covers the whole input, whitespace and
// comments included.
type Token struct {
	Kind  TokenKind
	Text  string
	Start int
	End   int
}
