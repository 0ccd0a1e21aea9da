// Package compiler runs the verbose expression pipeline:
// tokenize, represent, emit.
package compiler

import (
	"strings"

	"go.uber.org/zap"

	"github.com/KromDaniel/verbex/internal/emitter"
	"github.com/KromDaniel/verbex/internal/lexer"
	"github.com/KromDaniel/verbex/internal/parser"
	"github.com/KromDaniel/verbex/internal/types"
)

// Config holds the configuration for a compiler.
type Config struct {
	Verbose bool        // Enable verbose logging of every stage
	Logger  *zap.Logger // Optional; takes precedence over Verbose
}

// Compiler turns verbose expression source into a regex pattern.
// A Compiler holds no per-call state and may be shared between goroutines.
type Compiler struct {
	config Config
	logger *Logger
}

// Result carries the output of every stage of one compile call.
type Result struct {
	Source  string
	Tokens  []lexer.Token
	Tree    *types.Element
	Pattern string
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	logger := NewLogger(config.Verbose)
	if config.Logger != nil {
		logger = FromZap(config.Logger)
	}
	return &Compiler{
		config: config,
		logger: logger,
	}
}

// Logger returns the compiler's logger.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// Compile runs the three stages over source. The first failing stage
// aborts the call and its error is returned unchanged.
func (c *Compiler) Compile(source string) (*Result, error) {
	res := &Result{Source: source}

	c.logger.Section("Tokenize")
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		c.logger.Log("Tokenize failed: %v", err)
		return nil, err
	}
	res.Tokens = tokens
	c.logger.Log("Tokens (%d): %s", len(tokens), strings.Join(lexer.Texts(tokens), " "))

	c.logger.Section("Represent")
	tree, err := parser.Represent(parser.Seed(tokens))
	if err != nil {
		c.logger.Log("Represent failed: %v", err)
		return nil, err
	}
	res.Tree = tree
	c.logger.Log("Tree: %s", tree)

	c.logger.Section("Emit")
	pattern, err := emitter.Emit(tree)
	if err != nil {
		c.logger.Log("Emit failed: %v", err)
		return nil, err
	}
	res.Pattern = pattern
	c.logger.Log("Pattern: %s", pattern)

	return res, nil
}
