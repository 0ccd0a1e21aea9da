// Package cmd implements the verbex command line.
package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KromDaniel/verbex/internal/compiler"
	"github.com/KromDaniel/verbex/internal/config"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "verbex",
	Short: "verbex - compile verbose expressions into regular expressions",
	Long: `verbex translates a parenthesized command language into regular expressions.

Example:
  verbex compile "begin (one-or-more (range 'a' 'z')) end"
  ^(?:[a-z])+$`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints any error as "ERROR: <message>".
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	_ = logger.Sync()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every compile stage")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(initCmd)
}

// setup loads the configuration and builds the logger before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	// init writes the configuration, it must not require a valid one.
	if cmd == initCmd {
		cfg = config.Default()
	} else {
		loaded, err := config.Resolve(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if noColor || cfg.NoColor {
		color.NoColor = true
	}

	l, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		zc := zap.NewDevelopmentConfig()
		zc.EncoderConfig.TimeKey = ""
		return zc.Build()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return zc.Build()
}

func newCompiler() *compiler.Compiler {
	return compiler.New(compiler.Config{Logger: logger})
}
