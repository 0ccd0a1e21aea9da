package verbex

import (
	"github.com/KromDaniel/verbex/internal/compiler"
)

// AnalysisResult contains the results of expression analysis without code generation.
type AnalysisResult = compiler.AnalysisResult

// Analyze compiles source and reports the features it uses.
//
// The analysis returns:
//   - FeatureLabels: derived from the expression tree (e.g., "Alternation", "CharClass")
//   - EngineLabels: the engine able to run the pattern ("RE2" or "Backtracking")
//
// Both label arrays are sorted alphabetically for deterministic comparison.
//
// Example:
//
//	result, err := verbex.Analyze("(group 'a') (refer 1)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.FeatureLabels) // [Backreference Captures]
//	fmt.Println(result.EngineLabels)  // [Backtracking]
func Analyze(source string) (*AnalysisResult, error) {
	return defaultCompiler.Analyze(source)
}
