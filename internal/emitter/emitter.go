// Package emitter renders an element tree as a regular expression pattern.
package emitter

import (
	"github.com/KromDaniel/verbex/internal/types"
)

var ordinals = []string{"first", "second", "third"}

// Emit renders e and its arguments. Literals are escaped; commands are looked
// up in the command table, bare commands among their arguments are folded,
// their arity checked, and their leading count arguments validated before
// the remaining arguments are emitted in order.
func Emit(e *types.Element) (string, error) {
	if e.IsLiteral() {
		return Escape(e.Value), nil
	}

	c, ok := commands[e.Value]
	if !ok {
		return "", types.Errorf(types.KindEmit, "unknown command: %s", e.Value).WithToken(e.Value)
	}

	operands := fold(e.Args)
	if err := checkArity(e.Value, len(operands), c.arity); err != nil {
		return "", err
	}

	args := make([]string, len(operands))
	for i, arg := range operands {
		if i < c.counts {
			if !LooksLikeInteger(arg.Value) {
				return "", types.Errorf(types.KindEmit,
					"an integer must be specified as the %s argument of '%s', but '%s' was encountered",
					ordinals[i], e.Value, arg.Value).WithToken(arg.Value)
			}
			args[i] = arg.Value
			continue
		}

		s, err := Emit(arg)
		if err != nil {
			return "", err
		}
		args[i] = s
	}

	return c.emit(e.Value, args), nil
}

func checkArity(name string, n int, arity Arity) error {
	if arity.Accepts(n) {
		return nil
	}
	if arity.Max == arity.Min {
		return types.Errorf(types.KindEmit, "command '%s' expects %d %s but found %d",
			name, arity.Min, plural(arity.Min), n).WithToken(name)
	}
	return types.Errorf(types.KindEmit, "command '%s' expects at least %d %s but found %d",
		name, arity.Min, plural(arity.Min), n).WithToken(name)
}

func plural(n int) string {
	if n == 1 {
		return "argument"
	}
	return "arguments"
}

// LooksLikeInteger reports whether s is a non-empty run of ASCII digits.
func LooksLikeInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
