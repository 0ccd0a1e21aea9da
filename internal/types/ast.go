// Package types holds the data shared by every stage of the verbose expression
// pipeline: the element tree and the structured error.
package types

import "strings"

// Kind tags an Element as a literal or a command.
type Kind int

const (
	// KindLiteral is quoted text emitted escaped.
	KindLiteral Kind = iota
	// KindCommand is a named operation with ordered arguments.
	KindCommand
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindCommand:
		return "command"
	default:
		return "unknown"
	}
}

// RootCommand is the command name of every tree root and of bracketed [...] groups.
const RootCommand = "match"

// Element is a node of the expression tree.
// Literals carry their unescaped text in Value and never have Args.
// Commands carry the bare command name in Value.
type Element struct {
	Kind  Kind
	Value string
	Args  []*Element
}

// NewLiteral returns a literal leaf.
func NewLiteral(value string) *Element {
	return &Element{Kind: KindLiteral, Value: value}
}

// NewCommand returns a command element with the given arguments.
func NewCommand(name string, args ...*Element) *Element {
	return &Element{Kind: KindCommand, Value: name, Args: args}
}

// IsLiteral reports whether e is a literal leaf.
func (e *Element) IsLiteral() bool {
	return e.Kind == KindLiteral
}

// IsCommand reports whether e is a command, optionally named one of names.
func (e *Element) IsCommand(names ...string) bool {
	if e.Kind != KindCommand {
		return false
	}
	if len(names) == 0 {
		return true
	}
	for _, n := range names {
		if e.Value == n {
			return true
		}
	}
	return false
}

// Walk visits e and its descendants depth first, parents before children.
// Returning false from fn skips the children of that element.
func (e *Element) Walk(fn func(*Element) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, arg := range e.Args {
		arg.Walk(fn)
	}
}

// String renders a compact debug dump, e.g. {command match : {literal a}}.
func (e *Element) String() string {
	var sb strings.Builder
	e.writeTo(&sb)
	return sb.String()
}

func (e *Element) writeTo(sb *strings.Builder) {
	sb.WriteByte('{')
	sb.WriteString(e.Kind.String())
	sb.WriteByte(' ')
	sb.WriteString(e.Value)
	if len(e.Args) > 0 {
		sb.WriteString(" :")
		for _, arg := range e.Args {
			sb.WriteByte(' ')
			arg.writeTo(sb)
		}
	}
	sb.WriteByte('}')
}
