// Package lexer splits verbose expression source into tokens.
package lexer

import (
	"strings"

	"github.com/KromDaniel/verbex/internal/types"
)

// Token is a word, a quoted string (delimiters kept) or a single bracket.
type Token struct {
	Text   string
	Offset int // byte offset in the source, -1 for synthetic tokens
}

// Synthetic returns a token that does not come from the source.
func Synthetic(text string) Token {
	return Token{Text: text, Offset: -1}
}

// IsQuoted reports whether the token is a quoted string.
func (t Token) IsQuoted() bool {
	return len(t.Text) > 0 && IsQuote(t.Text[0])
}

// IsOpen reports whether the token opens a group.
func (t Token) IsOpen() bool {
	return t.Text == "(" || t.Text == "["
}

// IsClose reports whether the token closes a group.
func (t Token) IsClose() bool {
	return t.Text == ")" || t.Text == "]"
}

// Texts returns the text of each token.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

// IsQuote reports whether c delimits a quoted string.
func IsQuote(c byte) bool {
	return c == '\'' || c == '"'
}

// IsBracket reports whether c is one of ( ) [ ].
func IsBracket(c byte) bool {
	return c == '(' || c == ')' || c == '[' || c == ']'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// scanner holds the state of a single Tokenize call.
type scanner struct {
	tokens []Token
	word   strings.Builder
	start  int  // offset of the first byte in word
	quote  byte // current delimiter, 0 outside a quotation
}

// flush moves the pending word, if any, to the token list.
func (s *scanner) flush() {
	if s.word.Len() == 0 {
		return
	}
	s.tokens = append(s.tokens, Token{Text: s.word.String(), Offset: s.start})
	s.word.Reset()
}

// add appends c to the pending word, starting a new one at offset if needed.
func (s *scanner) add(c byte, offset int) {
	if s.word.Len() == 0 {
		s.start = offset
	}
	s.word.WriteByte(c)
}

// Tokenize scans source left to right.
//
// Outside a quotation whitespace separates words and each bracket is a token of
// its own. Inside a quotation everything is kept verbatim, and a doubled
// delimiter stands for one literal delimiter: 'it''s' yields the token 'it's'.
func Tokenize(source string) ([]Token, error) {
	s := &scanner{}

	for i := 0; i < len(source); i++ {
		c := source[i]

		if s.quote != 0 {
			if c != s.quote {
				s.word.WriteByte(c)
				continue
			}
			if i+1 < len(source) && source[i+1] == c {
				s.word.WriteByte(c)
				i++
				continue
			}
			s.word.WriteByte(c)
			s.flush()
			s.quote = 0
			continue
		}

		switch {
		case isWhitespace(c):
			s.flush()
		case IsQuote(c):
			s.flush()
			s.quote = c
			s.add(c, i)
		case IsBracket(c):
			s.flush()
			s.tokens = append(s.tokens, Token{Text: string(c), Offset: i})
		default:
			s.add(c, i)
		}
	}

	if s.quote != 0 {
		return nil, types.NewError(types.KindTokenize, "unterminated quotation").
			At(s.start).
			WithToken(s.word.String())
	}

	s.flush()
	return s.tokens, nil
}
