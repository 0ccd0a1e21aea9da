// Package matcher runs emitted patterns against subject text.
//
// Patterns are compiled with the standard library RE2 engine when possible.
// Patterns RE2 cannot execute, such as back references, fall back to
// regexp2, a backtracking engine with ECMAScript semantics.
package matcher

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Engine selects the regular expression engine.
type Engine string

const (
	// EngineAuto uses RE2 and falls back to regexp2.
	EngineAuto Engine = "auto"
	// EngineRE2 is the standard library regexp package.
	EngineRE2 Engine = "re2"
	// EngineBacktracking is github.com/dlclark/regexp2 in ECMAScript mode.
	EngineBacktracking Engine = "regexp2"
)

// DefaultTimeout bounds a single regexp2 match.
const DefaultTimeout = 5 * time.Second

// ParseEngine converts a configuration value into an Engine.
func ParseEngine(s string) (Engine, error) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(s))); e {
	case "", EngineAuto:
		return EngineAuto, nil
	case EngineRE2, EngineBacktracking:
		return e, nil
	default:
		return "", fmt.Errorf("unknown engine %q (want auto, re2 or regexp2)", s)
	}
}

// Result describes the first match of a pattern in a subject.
type Result struct {
	Found  bool   `json:"found"`
	Offset int    `json:"offset"` // byte offset of the match in the subject
	Text   string `json:"text"`
	Engine Engine `json:"engine"`
}

// String renders the result as "OFFSET TEXT" or "[No match]".
func (r *Result) String() string {
	if !r.Found {
		return "[No match]"
	}
	return fmt.Sprintf("%d %s", r.Offset, r.Text)
}

// Matcher is a compiled pattern bound to an engine.
type Matcher struct {
	pattern string
	engine  Engine
	re      *regexp.Regexp
	bt      *regexp2.Regexp
}

// Compile compiles pattern for the requested engine. With EngineAuto the
// returned matcher reports the engine that was actually chosen.
func Compile(pattern string, engine Engine) (*Matcher, error) {
	m := &Matcher{pattern: pattern}

	switch engine {
	case EngineAuto, "":
		re, err := regexp.Compile(pattern)
		if err == nil {
			m.engine, m.re = EngineRE2, re
			return m, nil
		}
		return m.compileBacktracking()
	case EngineRE2:
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern for %s: %w", EngineRE2, err)
		}
		m.engine, m.re = EngineRE2, re
		return m, nil
	case EngineBacktracking:
		return m.compileBacktracking()
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
}

func (m *Matcher) compileBacktracking() (*Matcher, error) {
	bt, err := regexp2.Compile(m.pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern for %s: %w", EngineBacktracking, err)
	}
	bt.MatchTimeout = DefaultTimeout
	m.engine, m.bt = EngineBacktracking, bt
	return m, nil
}

// Engine returns the engine the pattern was compiled with.
func (m *Matcher) Engine() Engine {
	return m.engine
}

// Pattern returns the source pattern.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Match finds the first match of the pattern in subject.
func (m *Matcher) Match(subject string) (*Result, error) {
	res := &Result{Engine: m.engine}

	if m.re != nil {
		loc := m.re.FindStringIndex(subject)
		if loc != nil {
			res.Found = true
			res.Offset = loc[0]
			res.Text = subject[loc[0]:loc[1]]
		}
		return res, nil
	}

	found, err := m.bt.FindStringMatch(subject)
	if err != nil {
		return nil, fmt.Errorf("match failed: %w", err)
	}
	if found != nil {
		res.Found = true
		res.Offset = byteOffset(subject, found.Index)
		res.Text = found.String()
	}
	return res, nil
}

// byteOffset converts regexp2's rune index into a byte offset.
func byteOffset(s string, runeIndex int) int {
	n := 0
	for i := range s {
		if n == runeIndex {
			return i
		}
		n++
	}
	return len(s)
}

// Match compiles pattern with EngineAuto and matches it against subject.
func Match(pattern, subject string) (*Result, error) {
	m, err := Compile(pattern, EngineAuto)
	if err != nil {
		return nil, err
	}
	return m.Match(subject)
}
