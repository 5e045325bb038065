package lexer

import (
	"regexp"
	"sort"
	"strings"
)

// mode names a scanning state. Each mode owns an ordered rule table; the
// scanner keeps a stack of modes so that block comments can nest.
type mode int

const (
	modeRoot mode = iota
	modeBlockComment
	modeTraitList
	modeModifier
)

// stackOp adjusts the mode stack after a rule matches.
type stackOp int

const (
	opStay stackOp = iota
	opPush
	opPop
)

// kindNone marks a rule that consumes input without emitting a token. None of
// the current tables use it, but the stepping loop supports it.
const kindNone TokenKind = -1

// rule binds an anchored pattern to a token kind and a stack operation.
// Rules are evaluated top to bottom within a mode and the first match wins,
// so table order encodes precedence: keyword sets must come before the
// general identifier rules, floats before integers.
//
// lookahead, when non-nil, must match immediately after the pattern's match
// but is not consumed. RE2 has no lookahead assertions, so the constraint is
// expressed as a second anchored pattern tested at the match end.
type rule struct {
	pattern   *regexp.Regexp
	lookahead *regexp.Regexp
	emit      TokenKind
	op        stackOp
	next      mode // push target when op == opPush
}

// Keyword and builtin word sets of the dialect. Matched as whole words (a
// trailing word boundary keeps "fn" from swallowing the front of "function").
var (
	keywordsDecl = []string{
		"const", "fn", "main", "meta-fn", "metafn", "metamod", "modifier", "type", "use",
	}
	keywordsType = []string{
		"bdn_t", "fn_t", "ir_t", "opbdn_t", "opn_t", "optn_t",
	}
	keywordsReserved = []string{"self"}

	builtinsClassical = []string{
		"bool", "f32", "f64", "float", "hashmap", "i32", "i64", "imag",
		"int", "sample_t", "str", "u32", "u64",
	}
	builtinsQuantum = []string{
		"@bell_t", "@bool", "@int", "@u2", "@u3", "@u4",
	}

	boolLiterals        = []string{"false", "true"}
	boolLiteralsQuantum = []string{"@false", "@true"}
)

// anchored compiles expr to match only at the start of the remaining input.
func anchored(expr string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + expr + `)`)
}

// wordsPattern builds an anchored alternation matching any word in the set,
// followed by a word boundary. Longer words sort first so leftmost-first
// alternation cannot stop at a shorter prefix.
func wordsPattern(words []string) *regexp.Regexp {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\A(?:` + strings.Join(quoted, "|") + `)\b`)
}

func emit(expr string, kind TokenKind) rule {
	return rule{pattern: anchored(expr), emit: kind}
}

func emitWords(words []string, kind TokenKind) rule {
	return rule{pattern: wordsPattern(words), emit: kind}
}

func emitBefore(expr, ahead string, kind TokenKind) rule {
	return rule{pattern: anchored(expr), lookahead: anchored(ahead), emit: kind}
}

func push(expr string, kind TokenKind, next mode) rule {
	return rule{pattern: anchored(expr), emit: kind, op: opPush, next: next}
}

func pop(expr string, kind TokenKind) rule {
	return rule{pattern: anchored(expr), emit: kind, op: opPop}
}

// ruleTables holds the ordered rule list for each mode. Built once at init,
// never mutated; safe for any number of concurrent scanners.
var ruleTables = [...][]rule{
	modeRoot: {
		// Commas and semicolons are separators, lexed as whitespace.
		emit(`[ \t\r\n,;]+`, TokenWhitespace),
		emit(`//[^\n]*\n?`, TokenComment),
		push(`/\*`, TokenComment, modeBlockComment),
		emitWords(keywordsDecl, TokenKeywordDecl),
		emitWords(keywordsType, TokenKeywordType),
		emitWords(keywordsReserved, TokenKeywordReserved),
		emitWords(builtinsClassical, TokenBuiltinType),
		emitWords(builtinsQuantum, TokenBuiltinTypeQuantum),
		emitWords(boolLiterals, TokenBool),
		emitWords(boolLiteralsQuantum, TokenBoolQuantum),
		emit(`::`, TokenOperatorWord),
		emitBefore(`\*`, `\s`, TokenOperatorWord), // cast, only before whitespace
		emit(`&`, TokenOperatorWord),              // reference
		emitBefore(`\.\.\.`, `[\s)\]}]`, TokenOperator),        // variadic
		emitBefore(`\.\.`, `[\s)\]}a-zA-Z0-9]`, TokenOperator), // range
		emit(`:`, TokenOperator),
		emit(`=`, TokenOperator),
		emit(`\.`, TokenOperator),
		emit(`[(){}\[\]]`, TokenPunctuation),
		push(`#\[`, TokenPunctuation, modeTraitList),
		emit(`#@?[A-Z][a-zA-Z0-9\-_]*`, TokenDecorator),
		push(`<`, TokenPunctuation, modeModifier),
		emit(`@-?(?:[1-9]\d*|0)\b`, TokenIntegerQuantum),
		emit(`-?\d+\.\d+`, TokenFloat),
		emit(`-?(?:[1-9]\d*|0)\b`, TokenInteger),
		emit(`"[^"]*"`, TokenString),
		emit(`@[a-zA-Z][a-zA-Z0-9\-_]*`, TokenIdentifierQuantum),
		emit(`[A-Z][a-zA-Z0-9\-_]*`, TokenTypeIdentifier),
		emit(`[a-z][a-zA-Z0-9\-_]*`, TokenIdentifier),
	},
	modeBlockComment: {
		emit(`[^*/]+`, TokenComment),
		push(`/\*`, TokenComment, modeBlockComment),
		pop(`\*/`, TokenComment),
		emit(`[*/]`, TokenComment), // lone * or / inside the comment body
	},
	modeTraitList: {
		emit(`\s+`, TokenWhitespace),
		emit(`@?[A-Z][a-zA-Z0-9\-_]*`, TokenDecorator),
		pop(`\]`, TokenPunctuation),
	},
	modeModifier: {
		emit(`\s+`, TokenWhitespace),
		emit(`&`, TokenOperatorWord),
		emit(`\*`, TokenOperatorWord),
		emit(`\.\.\.`, TokenOperator),
		emit(`:`, TokenOperator),
		emit(`=`, TokenOperator),
		emit(`@?[a-zA-Z][a-zA-Z0-9\-_]*`, TokenAttribute),
		emit(`-?(?:[1-9]\d*|0)\b`, TokenInteger),
		pop(`>`, TokenPunctuation),
	},
}
