package verbex

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/KromDaniel/verbex/internal/codegen"
	"github.com/KromDaniel/verbex/internal/compiler"
	"github.com/KromDaniel/verbex/internal/matcher"
)

// Options configures code generation.
type Options struct {
	// Source is the verbose expression to compile
	Source string

	// Name is the prefix for generated identifiers (e.g., "Email" generates "EmailMatchString").
	// Free-form names such as "email-address" are converted to exported identifiers.
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// Engine selects the runtime the generated code compiles the pattern with: "auto", "re2" or "regexp2".
	// With "auto" patterns RE2 rejects, such as back references, use regexp2.
	Engine string

	// GenerateTestFile generates a test file checking the generated helpers (default: true if TestFileInputs provided)
	GenerateTestFile bool

	// TestFileInputs is a list of test inputs for the generated test file. If empty and GenerateTestFile is true, defaults to []string{"example"}
	TestFileInputs []string

	// Verbose logs every compile stage to stderr
	Verbose bool

	// Logger receives the compile stage output instead of stderr when set
	Logger *zap.Logger
}

// Validate checks if the options are valid. OutputFile is only required by Generate.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Source) == "" {
		return fmt.Errorf("source cannot be empty")
	}
	if codegen.ExportedName(o.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if _, err := matcher.ParseEngine(o.Engine); err != nil {
		return err
	}
	return nil
}

// Generate compiles opts.Source and writes Go code declaring the pattern to opts.OutputFile.
func Generate(opts Options) error {
	if opts.OutputFile == "" {
		return fmt.Errorf("invalid options: output file cannot be empty")
	}

	config, err := prepare(opts)
	if err != nil {
		return err
	}

	if err := codegen.New(config).Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}

// Render compiles opts.Source and writes the generated code to w.
// No test file is produced.
func Render(w io.Writer, opts Options) error {
	config, err := prepare(opts)
	if err != nil {
		return err
	}

	if err := codegen.New(config).Render(w); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}

func prepare(opts Options) (codegen.Config, error) {
	if err := opts.Validate(); err != nil {
		return codegen.Config{}, fmt.Errorf("invalid options: %w", err)
	}

	c := compiler.New(compiler.Config{Verbose: opts.Verbose, Logger: opts.Logger})
	res, err := c.Compile(opts.Source)
	if err != nil {
		return codegen.Config{}, fmt.Errorf("failed to compile source: %w", err)
	}

	engine, _ := matcher.ParseEngine(opts.Engine)
	m, err := matcher.Compile(res.Pattern, engine)
	if err != nil {
		return codegen.Config{}, fmt.Errorf("failed to compile pattern: %w", err)
	}

	// Set default for GenerateTestFile
	generateTestFile := opts.GenerateTestFile
	testInputs := opts.TestFileInputs
	if len(testInputs) > 0 {
		generateTestFile = true
	} else if generateTestFile {
		testInputs = []string{"example"}
	}

	cases := make([]codegen.Case, 0, len(testInputs))
	for _, input := range testInputs {
		found, err := m.Match(input)
		if err != nil {
			return codegen.Config{}, fmt.Errorf("failed to match test input %q: %w", input, err)
		}
		cases = append(cases, codegen.Case{Input: input, Found: found.Found, Text: found.Text})
	}

	return codegen.Config{
		Source:           opts.Source,
		Pattern:          res.Pattern,
		Name:             codegen.ExportedName(opts.Name),
		Package:          opts.Package,
		OutputFile:       opts.OutputFile,
		Backtracking:     m.Engine() == matcher.EngineBacktracking,
		GenerateTestFile: generateTestFile,
		Cases:            cases,
	}, nil
}
