package rules

import "fmt"

// TokenType identifies the lexical class of a Token. Grounded on the
// teacher's updater/python_ast_parser.go, which drives its own
// hand-rolled scanner off an analogous TokenType enum (TokenClass,
// TokenDef, TokenString, ...) rather than a generated lexer — the same
// shape is reused here for the rule language.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenName
	TokenShortOrdinal

	// Keywords (case-insensitive).
	TokenFirst
	TokenSecond
	TokenThird
	TokenFourth
	TokenLast
	TokenExists
	TokenOf
	TokenIf
	TokenElse
	TokenNever
	TokenIs
	TokenIn
	TokenLeap
	TokenMod
	TokenSame
	TokenAs
	TokenThe
	TokenBefore
	TokenAfter
	TokenYear
	TokenDays
	TokenWeeks
	TokenNot
	TokenTrue
	TokenFalse
	TokenAnd
	TokenOr

	TokenMonth
	TokenWeekDay

	TokenLParen
	TokenRParen
)

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Text   string // original source text, case preserved
	Month  int    // valid when Type == TokenMonth (1-12)
	WeekDy int    // valid when Type == TokenWeekDay (0=Monday..6=Sunday)
	Num    int    // valid when Type == TokenNumber or TokenShortOrdinal
	Pos    int    // byte offset in the source rule string
	Line   int
	Col    int
}

// String renders the token for diagnostics and parse-error messages.
func (t Token) String() string {
	if t.Text != "" {
		return fmt.Sprintf("%s(%q)", tokenTypeNames[t.Type], t.Text)
	}
	return tokenTypeNames[t.Type]
}

var tokenTypeNames = map[TokenType]string{
	TokenEOF:          "EOF",
	TokenNumber:        "NUMBER",
	TokenName:          "NAME",
	TokenShortOrdinal:  "SHORT_ORDINAL",
	TokenFirst:         "first",
	TokenSecond:        "second",
	TokenThird:         "third",
	TokenFourth:        "fourth",
	TokenLast:          "last",
	TokenExists:        "exists",
	TokenOf:            "of",
	TokenIf:            "if",
	TokenElse:          "else",
	TokenNever:         "never",
	TokenIs:            "is",
	TokenIn:            "in",
	TokenLeap:          "leap",
	TokenMod:           "mod",
	TokenSame:          "same",
	TokenAs:            "as",
	TokenThe:           "the",
	TokenBefore:        "before",
	TokenAfter:         "after",
	TokenYear:          "year",
	TokenDays:          "days",
	TokenWeeks:         "weeks",
	TokenNot:           "not",
	TokenTrue:          "true",
	TokenFalse:         "false",
	TokenAnd:           "and",
	TokenOr:            "or",
	TokenMonth:         "MONTH",
	TokenWeekDay:       "WEEKDAY",
	TokenLParen:        "(",
	TokenRParen:        ")",
}
