package compiler

import (
	"sort"

	"github.com/KromDaniel/verbex/internal/emitter"
	"github.com/KromDaniel/verbex/internal/matcher"
	"github.com/KromDaniel/verbex/internal/types"
)

// AnalysisResult describes a compiled expression without generating code.
type AnalysisResult struct {
	Pattern string `json:"pattern"`

	// FeatureLabels are derived from the expression tree (sorted alphabetically)
	FeatureLabels []string `json:"feature_labels"`

	// EngineLabels name the regex engine able to run the pattern (sorted alphabetically)
	EngineLabels []string `json:"engine_labels"`

	Commands      int  `json:"commands"`
	Literals      int  `json:"literals"`
	Depth         int  `json:"depth"`
	CaptureGroups int  `json:"capture_groups"`
	HasBackrefs   bool `json:"has_backrefs"`

	HasCatastrophicRisk  bool `json:"has_catastrophic_risk"`
	HasRepeatingCaptures bool `json:"has_repeating_captures"`
	IsAnchored           bool `json:"is_anchored"`
}

var featureCommands = map[string]string{
	"begin":        "Anchored",
	"^":            "Anchored",
	"end":          "Anchored",
	"$":            "Anchored",
	"or":           "Alternation",
	"|":            "Alternation",
	"refer":        "Backreference",
	"group":        "Captures",
	"range":        "CharClass",
	"except":       "CharClass",
	`\n`:           "Escapes",
	`\r`:           "Escapes",
	`\t`:           "Escapes",
	"anychar":      "Wildcard",
	".":            "Wildcard",
	"optional":     "Quantifiers",
	"zero-or-one":  "Quantifiers",
	"?":            "Quantifiers",
	"one-or-more":  "Quantifiers",
	"+":            "Quantifiers",
	"zero-or-more": "Quantifiers",
	"*":            "Quantifiers",
	"times":        "Quantifiers",
	"mintimes":     "Quantifiers",
	"minmaxtimes":  "Quantifiers",
}

// Analyze compiles source and derives labels from its normalized tree and pattern.
func (c *Compiler) Analyze(source string) (*AnalysisResult, error) {
	res, err := c.Compile(source)
	if err != nil {
		return nil, err
	}

	c.logger.Section("Analysis")
	tree := emitter.Normalize(res.Tree)
	result := analyzeTree(tree)
	result.Pattern = res.Pattern
	result.EngineLabels = deriveEngineLabels(res.Pattern)
	result.HasCatastrophicRisk = hasNestedQuantifiers(tree)
	result.HasRepeatingCaptures = hasRepeatingCaptures(tree)
	result.IsAnchored = isAnchored(tree)

	c.logger.Log("Feature labels: %v", result.FeatureLabels)
	c.logger.Log("Engine labels: %v", result.EngineLabels)
	c.logger.Log("Has nested quantifiers: %v", result.HasCatastrophicRisk)
	c.logger.Log("Has repeating captures: %v", result.HasRepeatingCaptures)
	c.logger.Log("Is anchored: %v", result.IsAnchored)
	return result, nil
}

// analyzeTree walks the tree counting elements and collecting feature labels.
func analyzeTree(tree *types.Element) *AnalysisResult {
	result := &AnalysisResult{Depth: depth(tree)}
	seen := make(map[string]bool)

	tree.Walk(func(e *types.Element) bool {
		if e.IsLiteral() {
			result.Literals++
			return false
		}

		result.Commands++
		if label, ok := featureCommands[e.Value]; ok {
			seen[label] = true
		}
		switch e.Value {
		case "group":
			result.CaptureGroups++
		case "refer":
			result.HasBackrefs = true
		}
		return true
	})

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	if len(labels) == 0 {
		labels = append(labels, "Simple")
	}
	sort.Strings(labels)
	result.FeatureLabels = labels
	return result
}

// depth returns the number of levels below e.
func depth(e *types.Element) int {
	d := 0
	for _, arg := range e.Args {
		if n := depth(arg) + 1; n > d {
			d = n
		}
	}
	return d
}

// deriveEngineLabels reports which engine runs the pattern.
func deriveEngineLabels(pattern string) []string {
	m, err := matcher.Compile(pattern, matcher.EngineAuto)
	if err != nil {
		return []string{"Invalid"}
	}
	if m.Engine() == matcher.EngineBacktracking {
		return []string{"Backtracking"}
	}
	return []string{"RE2"}
}
