package compiler

import "github.com/KromDaniel/verbex/internal/types"

// quantifiers are the commands that repeat their operands.
var quantifiers = map[string]bool{
	"optional":     true,
	"zero-or-one":  true,
	"?":            true,
	"one-or-more":  true,
	"+":            true,
	"zero-or-more": true,
	"*":            true,
	"times":        true,
	"mintimes":     true,
	"minmaxtimes":  true,
}

// unbounded are the quantifiers without an upper repetition limit.
var unbounded = map[string]bool{
	"one-or-more":  true,
	"+":            true,
	"zero-or-more": true,
	"*":            true,
	"mintimes":     true,
}

// hasRepeatingCaptures checks if a group command appears under a quantifier.
// Such a group only captures its last iteration: (+ (group 'a')) on "aaa"
// captures "a", not "aaa".
func hasRepeatingCaptures(e *types.Element) bool {
	return walkCheckRepeating(e, false)
}

func walkCheckRepeating(e *types.Element, inRepeat bool) bool {
	if e.IsCommand("group") && inRepeat {
		return true
	}

	isRepeating := e.IsCommand() && quantifiers[e.Value]
	for _, arg := range e.Args {
		if walkCheckRepeating(arg, inRepeat || isRepeating) {
			return true
		}
	}
	return false
}

// hasNestedQuantifiers reports an unbounded quantifier nested inside another
// unbounded quantifier, e.g. (+ (* 'a')). Backtracking engines can take
// exponential time on such patterns when the match fails.
func hasNestedQuantifiers(e *types.Element) bool {
	return walkNested(e, false)
}

func walkNested(e *types.Element, inUnbounded bool) bool {
	isUnbounded := e.IsCommand() && unbounded[e.Value]
	if isUnbounded && inUnbounded {
		return true
	}
	for _, arg := range e.Args {
		if walkNested(arg, inUnbounded || isUnbounded) {
			return true
		}
	}
	return false
}

// isAnchored checks if the expression starts with a begin anchor, looking
// through leading match groupings.
func isAnchored(e *types.Element) bool {
	for e != nil && e.IsCommand(types.RootCommand) {
		if len(e.Args) == 0 {
			return false
		}
		e = e.Args[0]
	}
	return e != nil && e.IsCommand("begin", "^")
}
