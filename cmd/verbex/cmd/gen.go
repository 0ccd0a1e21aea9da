package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KromDaniel/verbex/pkg/verbex"
)

var (
	genName     string
	genPackage  string
	genOutput   string
	genEngine   string
	genFile     string
	genTestFile bool
	genInputs   arrayFlags
)

var genCmd = &cobra.Command{
	Use:   "gen [expression...]",
	Short: "Generate Go code declaring the compiled pattern",
	Long: `Compiles a verbose expression and generates a Go file declaring the pattern,
the compiled regexp and MatchString/FindString helpers.

Every --input is matched at generation time and recorded in a generated
_test.go file next to --output. Without --output the code is printed.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVarP(&genName, "name", "n", "", "identifier prefix of the generated declarations (default from config)")
	genCmd.Flags().StringVarP(&genPackage, "package", "p", "", "package name of the generated file (default from config)")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output file (default: stdout)")
	genCmd.Flags().StringVar(&genEngine, "engine", "", "regex engine of the generated code: auto, re2 or regexp2")
	genCmd.Flags().StringVarP(&genFile, "file", "f", "", "read the expression from a file")
	genCmd.Flags().BoolVar(&genTestFile, "test-file", false, "generate a _test.go file")
	genCmd.Flags().Var(&genInputs, "input", "test input for the generated test file (repeatable)")
}

func runGen(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args, genFile)
	if err != nil {
		return err
	}

	opts := verbex.Options{
		Source:           source,
		Name:             pick(cmd, "name", genName, cfg.Name),
		Package:          pick(cmd, "package", genPackage, cfg.Package),
		OutputFile:       pick(cmd, "output", genOutput, cfg.Output),
		Engine:           pick(cmd, "engine", genEngine, cfg.Engine),
		GenerateTestFile: genTestFile || cfg.TestFile,
		TestFileInputs:   cfg.Inputs,
		Logger:           logger,
	}
	if len(genInputs) > 0 {
		opts.TestFileInputs = genInputs
	}

	if opts.OutputFile == "" {
		return verbex.Render(cmd.OutOrStdout(), opts)
	}

	if err := verbex.Generate(opts); err != nil {
		return err
	}
	logger.Info("generated", zap.String("file", opts.OutputFile), zap.String("name", opts.Name))
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", opts.OutputFile)
	return nil
}

// pick returns the flag value when the flag was set and the config value otherwise.
func pick(cmd *cobra.Command, flag, value, fallback string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	return fallback
}
