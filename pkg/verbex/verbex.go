// Package verbex compiles verbose expressions into regular expressions.
//
// A verbose expression is a parenthesized command language:
//
//	begin (one-or-more (range 'a' 'z')) '@' (or 'com' 'org') end
//
// compiles to
//
//	^(?:[a-z])+@(?:com|org)$
//
// Quoted text is matched literally, with every regex metacharacter escaped.
// Commands may be written bare at the top level; a bare command that needs
// operands takes the elements that follow it.
package verbex

import (
	"fmt"

	"github.com/KromDaniel/verbex/internal/compiler"
	"github.com/KromDaniel/verbex/internal/lexer"
	"github.com/KromDaniel/verbex/internal/matcher"
	"github.com/KromDaniel/verbex/internal/parser"
	"github.com/KromDaniel/verbex/internal/types"
)

// Token is a lexical unit of a verbose expression with its byte offset.
type Token = lexer.Token

// Element is a node of the expression tree.
type Element = types.Element

// Error is returned by every stage. Use errors.Is with ErrTokenize,
// ErrParse or ErrEmit to find the failing stage.
type Error = types.Error

// MatchResult describes the first match of a pattern in a subject.
type MatchResult = matcher.Result

// Stage sentinels.
var (
	ErrTokenize = types.ErrTokenize
	ErrParse    = types.ErrParse
	ErrEmit     = types.ErrEmit
)

var defaultCompiler = compiler.New(compiler.Config{})

// Compile translates source into a regular expression pattern.
func Compile(source string) (string, error) {
	res, err := defaultCompiler.Compile(source)
	if err != nil {
		return "", err
	}
	return res.Pattern, nil
}

// MustCompile is like Compile but panics if source cannot be compiled.
func MustCompile(source string) string {
	pattern, err := Compile(source)
	if err != nil {
		panic(fmt.Sprintf("verbex: Compile(%q): %v", source, err))
	}
	return pattern
}

// Tokenize splits source into tokens.
func Tokenize(source string) ([]Token, error) {
	return lexer.Tokenize(source)
}

// Parse tokenizes source and builds its expression tree. The root is
// always a "match" command.
func Parse(source string) (*Element, error) {
	return parser.Parse(source)
}

// Match compiles source and returns the first match in subject.
// Patterns the standard library cannot run, such as back references,
// are matched with a backtracking engine.
func Match(source, subject string) (*MatchResult, error) {
	pattern, err := Compile(source)
	if err != nil {
		return nil, err
	}
	return matcher.Match(pattern, subject)
}
