package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/verbex/internal/lexer"
)

var (
	showTokens  bool
	showTree    bool
	compileFile string
)

var compileCmd = &cobra.Command{
	Use:   "compile [expression...]",
	Short: "Compile a verbose expression and print the pattern",
	Long: `Compiles a verbose expression into a regular expression.

The expression is read from --file, from the arguments joined by spaces,
or from standard input.`,
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().BoolVar(&showTokens, "tokens", false, "print the token stream")
	compileCmd.Flags().BoolVar(&showTree, "tree", false, "print the expression tree")
	compileCmd.Flags().StringVarP(&compileFile, "file", "f", "", "read the expression from a file")
}

func runCompile(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args, compileFile)
	if err != nil {
		return err
	}

	res, err := newCompiler().Compile(source)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if !showTokens && !showTree {
		patternStyle.Fprintln(w, res.Pattern)
		return nil
	}

	if showTokens {
		printField(w, "tokens", strings.Join(lexer.Texts(res.Tokens), " "))
	}
	if showTree {
		printField(w, "tree", res.Tree.String())
	}
	printField(w, "pattern", res.Pattern)
	return nil
}
