// Package parser turns a token sequence into an element tree.
//
// The grammar is s-expression like: the first token of a group names the
// command, and the remaining tokens are its arguments. A parenthesised group
// (cmd a b) becomes a single argument of the enclosing command. A square
// bracketed group [a b] is shorthand for (match a b): it groups arguments
// without introducing a command of its own.
package parser

import (
	"github.com/KromDaniel/verbex/internal/lexer"
	"github.com/KromDaniel/verbex/internal/types"
)

var closerFor = map[string]string{
	"(": ")",
	"[": "]",
}

// Parse tokenizes source and represents it under a synthetic match root.
func Parse(source string) (*types.Element, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Represent(Seed(tokens))
}

// Seed prefixes tokens with the synthetic root command.
func Seed(tokens []lexer.Token) []lexer.Token {
	seeded := make([]lexer.Token, 0, len(tokens)+1)
	seeded = append(seeded, lexer.Synthetic(types.RootCommand))
	return append(seeded, tokens...)
}

// Represent builds the element named by tokens[0] whose arguments are the
// remaining tokens. Bracketed groups are collected into a sub-sequence and
// represented recursively, so each group becomes exactly one argument.
func Represent(tokens []lexer.Token) (*types.Element, error) {
	if len(tokens) == 0 {
		return nil, types.NewError(types.KindParse, "empty group")
	}

	result := types.NewCommand(tokens[0].Text)

	var (
		subexp []lexer.Token
		stack  []lexer.Token
		depth  int
	)

	for _, token := range tokens[1:] {
		switch {
		case token.IsOpen():
			stack = append(stack, token)
			if depth >= 1 {
				subexp = append(subexp, lexer.Token{Text: "(", Offset: token.Offset})
			}
			if token.Text == "[" {
				subexp = append(subexp, lexer.Synthetic(types.RootCommand))
			}
			depth++

		case token.IsClose():
			if len(stack) == 0 {
				return nil, mismatched(token)
			}
			opener := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if closerFor[opener.Text] != token.Text {
				return nil, mismatched(token)
			}

			depth--
			if depth == 0 {
				child, err := Represent(subexp)
				if err != nil {
					return nil, err
				}
				result.Args = append(result.Args, child)
				subexp = nil
			} else {
				subexp = append(subexp, lexer.Token{Text: ")", Offset: token.Offset})
			}

		case depth > 0:
			subexp = append(subexp, token)

		default:
			result.Args = append(result.Args, leaf(token))
		}
	}

	if len(stack) != 0 {
		open := stack[len(stack)-1]
		return nil, types.NewError(types.KindParse, "unfinished expression").
			At(open.Offset).
			WithToken(open.Text)
	}

	return result, nil
}

// leaf converts a top-level token into a literal or a bare command.
func leaf(token lexer.Token) *types.Element {
	if token.IsQuoted() {
		text := token.Text
		return types.NewLiteral(text[1 : len(text)-1])
	}
	return types.NewCommand(token.Text)
}

func mismatched(token lexer.Token) error {
	return types.NewError(types.KindParse, "mismatched parentheses").
		At(token.Offset).
		WithToken(token.Text)
}
