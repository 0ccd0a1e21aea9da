package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	analyzeJSON bool
	analyzeFile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [expression...]",
	Short: "Report the features and engine requirements of an expression",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the analysis as JSON")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "read the expression from a file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args, analyzeFile)
	if err != nil {
		return err
	}

	res, err := newCompiler().Analyze(source)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if analyzeJSON {
		d, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(d))
		return nil
	}

	printField(w, "pattern", res.Pattern)
	printField(w, "features", strings.Join(res.FeatureLabels, ", "))
	printField(w, "engine", strings.Join(res.EngineLabels, ", "))
	printField(w, "groups", fmt.Sprint(res.CaptureGroups))
	printField(w, "depth", fmt.Sprint(res.Depth))
	printField(w, "anchored", fmt.Sprint(res.IsAnchored))
	if res.HasCatastrophicRisk {
		errorStyle.Fprintln(w, "warning: nested unbounded quantifiers may backtrack catastrophically")
	}
	return nil
}
