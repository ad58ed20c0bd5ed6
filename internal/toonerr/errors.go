// Package toonerr defines the typed error kinds surfaced by the TOON codec
// (ParseError, ValidationError, EncodeError) along with a source-context
// diagnostic renderer adapted from the project's compiler-error formatter.
package toonerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a codec error per spec §7.
type Kind uint8

const (
	// KindParse marks a grammatical failure: missing colon, malformed
	// header, unterminated string, invalid escape.
	KindParse Kind = iota
	// KindValidation marks a strict-mode semantic failure: count
	// mismatch, width mismatch, indentation violation, tab in
	// indentation, blank line inside a block, empty input.
	KindValidation
	// KindEncode marks an unrepresentable value encountered while
	// encoding.
	KindEncode
)

// String names the error kind.
func (k Kind) String() string {
	switch k {
	case KindParse:
		return "ParseError"
	case KindValidation:
		return "ValidationError"
	case KindEncode:
		return "EncodeError"
	default:
		return "Error"
	}
}

// Error is a structured codec error carrying a kind, a message, and,
// where meaningful, the 1-based source line and column it was found at.
// Line <= 0 means no position is attached.
type Error struct {
	Kind    Kind
	Message string
	Line    int
	Column  int

	// Source, when set, is the full decoder input the line/column refer
	// to, used only to render a Diagnostic.
	Source string
}

// New builds an Error with no position attached.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAt builds an Error at a specific 1-based line (column 1).
func NewAt(kind Kind, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: 1}
}

// NewAtColumn builds an Error at a specific 1-based line and column.
func NewAtColumn(kind Kind, line, column int, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Kind, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// WithSource attaches the decoder's full input so Diagnostic can render
// source context, and returns the same error for chaining.
func (e *Error) WithSource(source string) *Error {
	e.Source = source
	return e
}

// Is supports errors.Is comparisons against the three sentinel kinds.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// ErrParse, ErrValidation, and ErrEncode are sentinels usable with
// errors.Is(err, toonerr.ErrParse) without needing a fully populated Error.
var (
	ErrParse      = &Error{Kind: KindParse}
	ErrValidation = &Error{Kind: KindValidation}
	ErrEncode     = &Error{Kind: KindEncode}
)

// Diagnostic renders the error with its source line and a caret pointing
// at the offending column, matching the project's compiler-error format.
// If no source or line is attached, it falls back to Error().
func (e *Error) Diagnostic() string {
	if e.Source == "" || e.Line <= 0 {
		return e.Error()
	}

	lines := strings.Split(e.Source, "\n")
	if e.Line > len(lines) {
		return e.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at line %d:%d\n", e.Kind, e.Line, e.Column)

	lineNumStr := fmt.Sprintf("%4d | ", e.Line)
	sb.WriteString(lineNumStr)
	sb.WriteString(lines[e.Line-1])
	sb.WriteString("\n")

	col := e.Column
	if col < 1 {
		col = 1
	}
	sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
	sb.WriteString("^\n")
	sb.WriteString(e.Message)

	return sb.String()
}
