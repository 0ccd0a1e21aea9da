package compiler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/KromDaniel/verbex/internal/types"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"empty", "", ""},
		{"anchors", "begin 'a' end", "^a$"},
		{"range", "range 'a' 'z'", "[a-z]"},
		{"grouped range", "(range 'a' 'z')", "[a-z]"},
		{"or", "or 'cat' 'dog'", "(?:cat|dog)"},
		{"times", "times 3 'ab'", "(?:ab){3}"},
		{"mintimes", "mintimes 1 'x'", "(?:x){1,}"},
		{"minmaxtimes", "minmaxtimes 2 4 'x'", "(?:x){2,4}"},
		{"escaped literal", "'a.b'", `a\.b`},
		{"doubled quote", "'it''s'", "it's"},
		{"symbols", "^ . $", "^.$"},
		{"escapes", `\t 'x' \n`, `\tx\n`},
		{"back reference", "(group 'a') (refer 1)", `(a)\1`},
		{"bare back reference", "(group 'a') refer 1", `(a)\1`},
		{"except", "(except 'a' 'b')", "[^ab]"},
		{"square grouping", "(optional ['a' 'b'])", "(?:ab)?"},
		{
			name:   "email",
			source: "begin (+ (or (range 'a' 'z') '.')) '@' (+ (range 'a' 'z')) '.' (or 'com' 'org') end",
			want:   `^(?:(?:[a-z]|\.))+@(?:[a-z])+\.(?:com|org)$`,
		},
		{
			name:   "date",
			source: "(times 4 (range '0' '9')) '-' (times 2 (range '0' '9'))",
			want:   "(?:[0-9]){4}\\-(?:[0-9]){2}",
		},
	}

	c := New(Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Compile(tt.source)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tt.source, err)
			}
			if res.Pattern != tt.want {
				t.Errorf("Compile(%q) = %q, want %q", tt.source, res.Pattern, tt.want)
			}
			if !res.Tree.IsCommand(types.RootCommand) {
				t.Errorf("root = %s, want match command", res.Tree)
			}
			if res.Source != tt.source {
				t.Errorf("Source = %q, want %q", res.Source, tt.source)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantKind error
		contains []string
	}{
		{"unterminated quote", "'abc", types.ErrTokenize, []string{"unterminated quotation"}},
		{"mismatched brackets", "(a]", types.ErrParse, []string{"mismatched parentheses"}},
		{"unfinished", "(range 'a' 'z'", types.ErrParse, []string{"unfinished expression"}},
		{"unknown command", "bogus 'x'", types.ErrEmit, []string{"unknown command: bogus"}},
		{"arity", "(range 'a')", types.ErrEmit, []string{"range", "expects 2 arguments", "found 1"}},
		{"bare range arity", "range 'a'", types.ErrEmit, []string{"command 'range' expects 2 arguments but found 1"}},
		{"bad count", "times x 'a'", types.ErrEmit, []string{"an integer must be specified", "'x'"}},
	}

	c := New(Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Compile(tt.source)
			if err == nil {
				t.Fatalf("Compile(%q) expected error", tt.source)
			}
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("Compile(%q) error = %v, want kind %v", tt.source, err, tt.wantKind)
			}
			for _, s := range tt.contains {
				if !strings.Contains(err.Error(), s) {
					t.Errorf("error %q does not contain %q", err, s)
				}
			}
		})
	}
}

func TestCompileVerboseLogging(t *testing.T) {
	c := New(Config{Verbose: true})
	var buf bytes.Buffer
	c.Logger().SetOutput(&buf)

	if _, err := c.Compile("range 'a' 'z'"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"=== Tokenize ===", "=== Represent ===", "=== Emit ===", "Pattern: [a-z]"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
}

func TestLoggerDisabled(t *testing.T) {
	l := NewLogger(false)
	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.Section("Nothing")
	l.Log("hidden %d", 1)

	if l.Enabled() {
		t.Error("logger should be disabled")
	}
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}

func TestFromZap(t *testing.T) {
	if FromZap(zap.NewNop()).Enabled() {
		t.Error("nop logger should not enable debug output")
	}
	dev, err := zap.NewDevelopment()
	if err != nil {
		t.Fatalf("zap.NewDevelopment: %v", err)
	}
	if !FromZap(dev).Enabled() {
		t.Error("development logger should enable debug output")
	}
	if FromZap(nil).Enabled() {
		t.Error("nil logger should be disabled")
	}
}
