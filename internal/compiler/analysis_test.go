package compiler

import (
	"reflect"
	"testing"

	"github.com/KromDaniel/verbex/internal/emitter"
	"github.com/KromDaniel/verbex/internal/parser"
)

func TestHasNestedQuantifiers(t *testing.T) {
	tests := []struct {
		source      string
		hasNested   bool
		description string
	}{
		{"(+ (+ 'a'))", true, "plus inside plus"},
		{"(* (* 'a') 'b')", true, "star inside star with suffix"},
		{"(+ (or 'x' (* 'y')))", true, "star inside alternation inside plus"},
		{"(mintimes 2 (+ 'a'))", true, "plus inside mintimes"},
		{"+ * 'a'", true, "bare commands folded"},

		{"(+ 'a') 'b'", false, "simple plus"},
		{"(+ 'a') (+ 'b')", false, "sequential quantifiers"},
		{"(+ (optional 'a'))", false, "optional inside plus"},
		{"(times 3 (+ 'a'))", false, "bounded outer quantifier"},
		{"(+ (group 'ab'))", false, "group repeated"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			tree, err := parser.Parse(tt.source)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", tt.source, err)
			}

			hasNested := hasNestedQuantifiers(emitter.Normalize(tree))
			if hasNested != tt.hasNested {
				t.Errorf("source %q: hasNestedQuantifiers = %v, want %v",
					tt.source, hasNested, tt.hasNested)
			}
		})
	}
}

func TestHasRepeatingCaptures(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"(+ (group 'a'))", true},
		{"(optional 'x' (or (group 'a') 'b'))", true},
		{"(group (+ 'a'))", false},
		{"(group 'a') (+ 'b')", false},
	}

	for _, tt := range tests {
		tree, err := parser.Parse(tt.source)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", tt.source, err)
		}
		if got := hasRepeatingCaptures(tree); got != tt.want {
			t.Errorf("hasRepeatingCaptures(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}

func TestIsAnchored(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"begin 'a'", true},
		{"^ 'a'", true},
		{"[begin 'a'] 'b'", true},
		{"'a' begin", false},
		{"", false},
		{"[]", false},
	}

	for _, tt := range tests {
		tree, err := parser.Parse(tt.source)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", tt.source, err)
		}
		if got := isAnchored(tree); got != tt.want {
			t.Errorf("isAnchored(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name         string
		source       string
		wantFeatures []string
		wantEngine   []string
		wantGroups   int
		wantBackrefs bool
	}{
		{
			name:         "simple literal",
			source:       "'abc'",
			wantFeatures: []string{"Simple"},
			wantEngine:   []string{"RE2"},
		},
		{
			name:         "anchored alternation",
			source:       "begin (or 'cat' 'dog') end",
			wantFeatures: []string{"Alternation", "Anchored"},
			wantEngine:   []string{"RE2"},
		},
		{
			name:         "classes and quantifiers",
			source:       "(+ (range 'a' 'z')) (except 'x') .",
			wantFeatures: []string{"CharClass", "Quantifiers", "Wildcard"},
			wantEngine:   []string{"RE2"},
		},
		{
			name:         "back reference",
			source:       "(group 'a') (refer 1)",
			wantFeatures: []string{"Backreference", "Captures"},
			wantEngine:   []string{"Backtracking"},
			wantGroups:   1,
			wantBackrefs: true,
		},
		{
			name:         "escapes",
			source:       `\t 'x'`,
			wantFeatures: []string{"Escapes"},
			wantEngine:   []string{"RE2"},
		},
	}

	c := New(Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Analyze(tt.source)
			if err != nil {
				t.Fatalf("Analyze(%q) error: %v", tt.source, err)
			}
			if !reflect.DeepEqual(res.FeatureLabels, tt.wantFeatures) {
				t.Errorf("FeatureLabels = %v, want %v", res.FeatureLabels, tt.wantFeatures)
			}
			if !reflect.DeepEqual(res.EngineLabels, tt.wantEngine) {
				t.Errorf("EngineLabels = %v, want %v", res.EngineLabels, tt.wantEngine)
			}
			if res.CaptureGroups != tt.wantGroups {
				t.Errorf("CaptureGroups = %d, want %d", res.CaptureGroups, tt.wantGroups)
			}
			if res.HasBackrefs != tt.wantBackrefs {
				t.Errorf("HasBackrefs = %v, want %v", res.HasBackrefs, tt.wantBackrefs)
			}
		})
	}
}

func TestAnalyzeCounts(t *testing.T) {
	res, err := New(Config{}).Analyze("begin (+ (range 'a' 'z')) end")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Pattern != "^(?:[a-z])+$" {
		t.Errorf("Pattern = %q", res.Pattern)
	}
	// match, begin, +, range, end
	if res.Commands != 5 {
		t.Errorf("Commands = %d, want 5", res.Commands)
	}
	if res.Literals != 2 {
		t.Errorf("Literals = %d, want 2", res.Literals)
	}
	if res.Depth != 3 {
		t.Errorf("Depth = %d, want 3", res.Depth)
	}
	if !res.IsAnchored {
		t.Error("IsAnchored = false, want true")
	}
}

func TestAnalyzeError(t *testing.T) {
	if _, err := New(Config{}).Analyze("(bogus)"); err == nil {
		t.Error("expected error for unknown command")
	}
}
