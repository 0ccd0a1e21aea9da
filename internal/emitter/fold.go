package emitter

import "github.com/KromDaniel/verbex/internal/types"

// fold applies bare commands to the siblings that follow them.
//
// A command written without brackets, such as range in "range 'a' 'z'",
// reaches the emitter as an argument-less element followed by its operands.
// When such a command needs arguments it takes the following siblings: as
// many as a fixed arity asks for, or all of them for an open arity.
// Commands accepting zero arguments (begin, match, group, ...) never take
// siblings, so "begin 'a' end" keeps three separate elements.
//
// fold returns a new slice and never modifies args.
func fold(args []*types.Element) []*types.Element {
	if !needsFold(args) {
		return args
	}

	out := make([]*types.Element, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		c, ok := bareCommand(arg)
		if !ok {
			out = append(out, arg)
			continue
		}

		rest := args[i+1:]
		take := len(rest)
		if c.arity.Max != Unbounded && c.arity.Max < take {
			take = c.arity.Max
		}

		applied := types.NewCommand(arg.Value, rest[:take]...)
		out = append(out, applied)
		i += take
	}
	return out
}

func needsFold(args []*types.Element) bool {
	for _, arg := range args {
		if _, ok := bareCommand(arg); ok {
			return true
		}
	}
	return false
}

// bareCommand reports whether e is an argument-less command that requires arguments.
func bareCommand(e *types.Element) (*command, bool) {
	if !e.IsCommand() || len(e.Args) > 0 {
		return nil, false
	}
	c, ok := commands[e.Value]
	if !ok || c.arity.Min == 0 {
		return nil, false
	}
	return c, true
}

// Normalize returns a copy of e with bare commands applied at every level.
// Emit performs the same folding on the fly; Normalize exposes the resulting
// shape for analysis and debugging.
func Normalize(e *types.Element) *types.Element {
	if e.IsLiteral() {
		return types.NewLiteral(e.Value)
	}
	folded := fold(e.Args)
	out := &types.Element{Kind: e.Kind, Value: e.Value}
	if len(folded) > 0 {
		out.Args = make([]*types.Element, len(folded))
		for i, arg := range folded {
			out.Args[i] = Normalize(arg)
		}
	}
	return out
}
