package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KromDaniel/verbex/internal/matcher"
)

var (
	subject     string
	matchEngine string
	matchFile   string
)

var matchCmd = &cobra.Command{
	Use:   "match --subject TEXT [expression...]",
	Short: "Compile an expression and test it against a subject",
	Long: `Compiles a verbose expression and prints the first match in the subject
as "OFFSET TEXT", or "[No match]". Use "compile" to see the pattern.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&subject, "subject", "s", "", "text to search")
	matchCmd.Flags().StringVar(&matchEngine, "engine", "", "regex engine: auto, re2 or regexp2 (default from config)")
	matchCmd.Flags().StringVarP(&matchFile, "file", "f", "", "read the expression from a file")
}

func runMatch(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("subject") {
		return errors.New("--subject is required")
	}

	source, err := readSource(cmd, args, matchFile)
	if err != nil {
		return err
	}

	name := cfg.Engine
	if cmd.Flags().Changed("engine") {
		name = matchEngine
	}
	engine, err := matcher.ParseEngine(name)
	if err != nil {
		return err
	}

	res, err := newCompiler().Compile(source)
	if err != nil {
		return err
	}

	m, err := matcher.Compile(res.Pattern, engine)
	if err != nil {
		return err
	}
	logger.Debug("matching", zap.String("pattern", m.Pattern()), zap.String("engine", string(m.Engine())))

	found, err := m.Match(subject)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if found.Found {
		fmt.Fprintln(w, found.String())
	} else {
		mutedStyle.Fprintln(w, found.String())
	}
	return nil
}
