package types

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the pipeline stage that rejected the input.
type ErrorKind int

const (
	// KindTokenize is raised by the tokenizer (unterminated quotation).
	KindTokenize ErrorKind = iota + 1
	// KindParse is raised by the representer (bracket mismatches).
	KindParse
	// KindEmit is raised by the emitter (unknown commands, arity, integers).
	KindEmit
)

func (k ErrorKind) String() string {
	switch k {
	case KindTokenize:
		return "tokenize error"
	case KindParse:
		return "parse error"
	case KindEmit:
		return "emit error"
	default:
		return "error"
	}
}

// Sentinels for errors.Is checks against a stage.
var (
	ErrTokenize = errors.New("tokenize error")
	ErrParse    = errors.New("parse error")
	ErrEmit     = errors.New("emit error")
)

// Error is the structured error returned by every stage.
// Offset is the byte offset in the source, or -1 when unknown.
type Error struct {
	Kind    ErrorKind
	Message string
	Offset  int
	Token   string
}

// NewError creates an error without position information.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message, Offset: -1}
}

// Errorf creates an error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return NewError(kind, fmt.Sprintf(format, args...))
}

// At sets the source offset.
func (e *Error) At(offset int) *Error {
	e.Offset = offset
	return e
}

// WithToken records the offending token text.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches the stage sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTokenize:
		return e.Kind == KindTokenize
	case ErrParse:
		return e.Kind == KindParse
	case ErrEmit:
		return e.Kind == KindEmit
	}
	return false
}
