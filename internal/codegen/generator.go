package codegen

import (
	"fmt"
	"go/format"
	"io"
	"os"
	"strings"

	"github.com/dave/jennifer/jen"
)

// Case is an input of the generated test file together with the result the
// pattern produced for it at generation time.
type Case struct {
	Input string
	Found bool
	Text  string
}

// Config holds the configuration for code generation.
type Config struct {
	Source           string // verbose expression the pattern was compiled from
	Pattern          string
	Name             string // exported identifier prefix, e.g. "Email"
	Package          string
	OutputFile       string
	Backtracking     bool   // generate regexp2 code instead of standard regexp
	GenerateTestFile bool   // generate a _test.go file checking Cases
	Cases            []Case // expectations for the generated test file
}

// Validate checks that the configuration can produce compilable code.
func (c Config) Validate() error {
	if !IsIdentifier(c.Name) {
		return fmt.Errorf("name %q is not a valid Go identifier", c.Name)
	}
	if !IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", c.Package)
	}
	return nil
}

// Generator writes Go source declaring a compiled pattern.
type Generator struct {
	config Config
}

// New creates a new generator instance.
func New(config Config) *Generator {
	return &Generator{config: config}
}

// TestFileName returns the path of the test file generated next to outputFile.
func TestFileName(outputFile string) string {
	return strings.TrimSuffix(outputFile, ".go") + "_test.go"
}

// header returns the comment placed above the package clause.
func (g *Generator) header() string {
	return "Code generated by verbex. DO NOT EDIT."
}

// File builds the pattern file.
func (g *Generator) File() *jen.File {
	c := g.config
	f := jen.NewFile(c.Package)
	f.HeaderComment(g.header())

	name := c.Name
	patternName := PatternName(name)
	sourceName := SourceName(name)

	f.Commentf("%s is the verbose expression %s was compiled from.", sourceName, patternName)
	f.Const().Id(sourceName).Op("=").Lit(c.Source)
	f.Line()

	f.Commentf("%s is the regular expression compiled from %s.", patternName, sourceName)
	f.Const().Id(patternName).Op("=").Lit(c.Pattern)
	f.Line()

	f.Commentf("%s is the compiled %s.", name, patternName)
	if c.Backtracking {
		f.Var().Id(name).Op("=").Qual(Regexp2Path, "MustCompile").Call(
			jen.Id(patternName),
			jen.Qual(Regexp2Path, "ECMAScript"),
		)
	} else {
		f.Var().Id(name).Op("=").Qual(StdRegexpPath, "MustCompile").Call(jen.Id(patternName))
	}
	f.Line()

	matchName := FuncName(name, MatchStringName)
	f.Commentf("%s reports whether %s contains a match of %s.", matchName, InputName, patternName)
	f.Func().Id(matchName).Params(jen.Id(InputName).String()).Bool().Block(g.matchBody()...)
	f.Line()

	findName := FuncName(name, FindStringName)
	f.Commentf("%s returns the first match of %s in %s.", findName, patternName, InputName)
	f.Func().Id(findName).Params(jen.Id(InputName).String()).Params(jen.String(), jen.Bool()).Block(g.findBody()...)

	return f
}

func (g *Generator) matchBody() []jen.Code {
	name := g.config.Name
	if !g.config.Backtracking {
		return []jen.Code{
			jen.Return(jen.Id(name).Dot("MatchString").Call(jen.Id(InputName))),
		}
	}
	return []jen.Code{
		jen.List(jen.Id("ok"), jen.Err()).Op(":=").Id(name).Dot("MatchString").Call(jen.Id(InputName)),
		jen.Return(jen.Err().Op("==").Nil().Op("&&").Id("ok")),
	}
}

func (g *Generator) findBody() []jen.Code {
	name := g.config.Name
	if !g.config.Backtracking {
		return []jen.Code{
			jen.Id("loc").Op(":=").Id(name).Dot("FindStringIndex").Call(jen.Id(InputName)),
			jen.If(jen.Id("loc").Op("==").Nil()).Block(
				jen.Return(jen.Lit(""), jen.False()),
			),
			jen.Return(
				jen.Id(InputName).Index(jen.Id("loc").Index(jen.Lit(0)), jen.Id("loc").Index(jen.Lit(1))),
				jen.True(),
			),
		}
	}
	return []jen.Code{
		jen.List(jen.Id("m"), jen.Err()).Op(":=").Id(name).Dot("FindStringMatch").Call(jen.Id(InputName)),
		jen.If(jen.Err().Op("!=").Nil().Op("||").Id("m").Op("==").Nil()).Block(
			jen.Return(jen.Lit(""), jen.False()),
		),
		jen.Return(jen.Id("m").Dot("String").Call(), jen.True()),
	}
}

// TestFile builds the test file checking every configured case.
func (g *Generator) TestFile() *jen.File {
	c := g.config
	f := jen.NewFile(c.Package)
	f.HeaderComment(g.header())

	matchName := FuncName(c.Name, MatchStringName)
	findName := FuncName(c.Name, FindStringName)

	rows := make([]jen.Code, 0, len(c.Cases))
	for _, tc := range c.Cases {
		rows = append(rows, jen.Values(jen.Lit(tc.Input), jen.Lit(tc.Found), jen.Lit(tc.Text)))
	}

	f.Func().Id("Test"+matchName).Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
		jen.Id(TestsName).Op(":=").Index().Struct(
			jen.Id("input").String(),
			jen.Id("want").Bool(),
			jen.Id("text").String(),
		).Values(rows...),
		jen.Line(),
		jen.For(jen.List(jen.Id("_"), jen.Id("tt")).Op(":=").Range().Id(TestsName)).Block(
			jen.If(
				jen.Id("got").Op(":=").Id(matchName).Call(jen.Id("tt").Dot("input")),
				jen.Id("got").Op("!=").Id("tt").Dot("want"),
			).Block(
				jen.Id("t").Dot("Errorf").Call(
					jen.Lit(matchName+"(%q) = %v, want %v"),
					jen.Id("tt").Dot("input"), jen.Id("got"), jen.Id("tt").Dot("want"),
				),
			),
			jen.If(
				jen.List(jen.Id("got"), jen.Id("_")).Op(":=").Id(findName).Call(jen.Id("tt").Dot("input")),
				jen.Id("got").Op("!=").Id("tt").Dot("text"),
			).Block(
				jen.Id("t").Dot("Errorf").Call(
					jen.Lit(findName+"(%q) = %q, want %q"),
					jen.Id("tt").Dot("input"), jen.Id("got"), jen.Id("tt").Dot("text"),
				),
			),
		),
	)
	f.Line()

	benchInput := ""
	if len(c.Cases) > 0 {
		benchInput = c.Cases[0].Input
	}
	f.Func().Id("Benchmark"+matchName).Params(jen.Id("b").Op("*").Qual("testing", "B")).Block(
		jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Id("b").Dot("N"), jen.Id("i").Op("++")).Block(
			jen.Id(matchName).Call(jen.Lit(benchInput)),
		),
	)

	return f
}

// Render writes the pattern file to w.
func (g *Generator) Render(w io.Writer) error {
	return g.File().Render(w)
}

// Generate writes the pattern file, and the test file when requested.
func (g *Generator) Generate() error {
	if err := g.config.Validate(); err != nil {
		return err
	}
	if g.config.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}

	if err := g.File().Save(g.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	if err := formatFile(g.config.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}

	if g.config.GenerateTestFile {
		testFile := TestFileName(g.config.OutputFile)
		if err := g.TestFile().Save(testFile); err != nil {
			return fmt.Errorf("failed to save test file: %w", err)
		}
		if err := formatFile(testFile); err != nil {
			return fmt.Errorf("failed to format test file: %w", err)
		}
	}

	return nil
}

// formatFile runs gofmt over a generated file in place.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}
