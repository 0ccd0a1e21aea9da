package emitter

import (
	"fmt"
	"sort"
	"strings"
)

// Unbounded marks an arity without an upper limit.
const Unbounded = -1

// Arity is the accepted argument count of a command.
type Arity struct {
	Min int
	Max int // Unbounded for no limit
}

// Exactly returns an arity accepting n arguments only.
func Exactly(n int) Arity { return Arity{Min: n, Max: n} }

// AtLeast returns an arity accepting n or more arguments.
func AtLeast(n int) Arity { return Arity{Min: n, Max: Unbounded} }

// Accepts reports whether n arguments satisfy the arity.
func (a Arity) Accepts(n int) bool {
	return n >= a.Min && (a.Max == Unbounded || n <= a.Max)
}

func (a Arity) String() string {
	switch {
	case a.Max == a.Min:
		return fmt.Sprint(a.Min)
	case a.Max == Unbounded && a.Min == 0:
		return "any"
	case a.Max == Unbounded:
		return fmt.Sprintf("at least %d", a.Min)
	default:
		return fmt.Sprintf("%d to %d", a.Min, a.Max)
	}
}

// emitFunc renders a command whose arity and integer arguments were checked.
type emitFunc func(name string, args []string) string

// command describes one entry of the command table.
type command struct {
	names   []string
	arity   Arity
	counts  int // leading arguments that must be integer-looking
	emit    emitFunc
	summary string
}

// Command is the public description of a supported command.
type Command struct {
	Name    string
	Aliases []string
	Arity   Arity
	Counts  int
	Summary string
}

// wrap renders the concatenated arguments between prefix and suffix.
func wrap(prefix, suffix string) emitFunc {
	return func(_ string, args []string) string {
		return prefix + strings.Join(args, "") + suffix
	}
}

var commandTable = []command{
	{names: []string{"match"}, arity: AtLeast(0), emit: wrap("", ""),
		summary: "concatenate the arguments"},
	{names: []string{"group"}, arity: AtLeast(0), emit: wrap("(", ")"),
		summary: "capturing group (...)"},
	{names: []string{"refer"}, arity: Exactly(1), counts: 1, emit: func(_ string, args []string) string {
		return `\` + args[0]
	}, summary: "back reference to group N"},
	{names: []string{"begin", "^"}, arity: Exactly(0), emit: wrap("^", ""),
		summary: "start anchor ^"},
	{names: []string{"end", "$"}, arity: Exactly(0), emit: wrap("$", ""),
		summary: "end anchor $"},
	{names: []string{`\n`, `\r`, `\t`}, arity: Exactly(0), emit: func(name string, _ []string) string {
		return name
	}, summary: "newline, carriage return and tab escapes"},
	{names: []string{"anychar", "."}, arity: Exactly(0), emit: wrap(".", ""),
		summary: "any character ."},
	{names: []string{"except"}, arity: AtLeast(1), emit: wrap("[^", "]"),
		summary: "negated character class [^...]"},
	{names: []string{"range"}, arity: Exactly(2), emit: func(_ string, args []string) string {
		return "[" + args[0] + "-" + args[1] + "]"
	}, summary: "character range [a-z]"},
	{names: []string{"optional", "zero-or-one", "?"}, arity: AtLeast(1), emit: wrap("(?:", ")?"),
		summary: "zero or one (?:...)?"},
	{names: []string{"one-or-more", "+"}, arity: AtLeast(1), emit: wrap("(?:", ")+"),
		summary: "one or more (?:...)+"},
	{names: []string{"zero-or-more", "*"}, arity: AtLeast(1), emit: wrap("(?:", ")*"),
		summary: "zero or more (?:...)*"},
	{names: []string{"or", "|"}, arity: AtLeast(1), emit: func(_ string, args []string) string {
		return "(?:" + strings.Join(args, "|") + ")"
	}, summary: "alternation (?:a|b)"},
	{names: []string{"times"}, arity: AtLeast(2), counts: 1, emit: func(_ string, args []string) string {
		return "(?:" + strings.Join(args[1:], "") + "){" + args[0] + "}"
	}, summary: "exactly N repetitions {N}"},
	{names: []string{"mintimes"}, arity: AtLeast(2), counts: 1, emit: func(_ string, args []string) string {
		return "(?:" + strings.Join(args[1:], "") + "){" + args[0] + ",}"
	}, summary: "at least N repetitions {N,}"},
	{names: []string{"minmaxtimes"}, arity: AtLeast(3), counts: 2, emit: func(_ string, args []string) string {
		return "(?:" + strings.Join(args[2:], "") + "){" + args[0] + "," + args[1] + "}"
	}, summary: "between N and M repetitions {N,M}"},
}

// commands indexes the table by every name and alias.
var commands = func() map[string]*command {
	m := make(map[string]*command)
	for i := range commandTable {
		c := &commandTable[i]
		for _, name := range c.names {
			m[name] = c
		}
	}
	return m
}()

// Lookup returns the description of the command registered under name.
func Lookup(name string) (Command, bool) {
	c, ok := commands[name]
	if !ok {
		return Command{}, false
	}
	return c.describe(), true
}

// Commands lists the supported commands sorted by name.
func Commands() []Command {
	out := make([]Command, 0, len(commandTable))
	for _, c := range commandTable {
		out = append(out, c.describe())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (c *command) describe() Command {
	return Command{
		Name:    c.names[0],
		Aliases: append([]string(nil), c.names[1:]...),
		Arity:   c.arity,
		Counts:  c.counts,
		Summary: c.summary,
	}
}
