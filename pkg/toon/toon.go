// Package toon is the public API of the TOON (Token-Oriented Object
// Notation) codec: Encode renders a value tree as TOON text, Decode
// parses TOON text back into a value tree. Both share the grammar
// described in the project's format specification; they differ only in
// direction.
package toon

import (
	"github.com/toonlang/go-toon/internal/format"
	"github.com/toonlang/go-toon/internal/parse"
	"github.com/toonlang/go-toon/internal/tokclass"
	"github.com/toonlang/go-toon/internal/toonerr"
	"github.com/toonlang/go-toon/internal/value"
)

// Value is an ordered JSON-equivalent value tree: null, bool, number,
// string, array, or object. Object field order is preserved from
// construction (or from decode order) through to Encode.
type Value = value.Value

// Kind classifies a Value.
type Kind = value.Kind

const (
	KindNull   = value.KindNull
	KindBool   = value.KindBool
	KindNumber = value.KindNumber
	KindString = value.KindString
	KindArray  = value.KindArray
	KindObject = value.KindObject
)

// Null, Bool, Number, String, Array, NewArray, and NewObject construct
// Values.
func Null() *Value                  { return value.Null() }
func Bool(b bool) *Value            { return value.Bool(b) }
func Number(n float64) *Value       { return value.Number(n) }
func String(s string) *Value        { return value.String(s) }
func Array(elems ...*Value) *Value  { return value.Array(elems...) }
func NewArray() *Value              { return value.NewArray() }
func NewObject() *Value             { return value.NewObject() }

// Delimiter selects the separator used between an array's tabular row
// fields or inline primitive elements.
type Delimiter = tokclass.Delimiter

const (
	Comma Delimiter = tokclass.Comma
	Tab   Delimiter = tokclass.Tab
	Pipe  Delimiter = tokclass.Pipe
)

// EncodeOptions configures Encode.
type EncodeOptions = format.Options

// DecodeOptions configures Decode.
type DecodeOptions = parse.Options

// Encode renders v as TOON text.
func Encode(v *Value, opts EncodeOptions) (string, error) {
	return format.Encode(v, opts)
}

// Decode parses text into a Value tree.
func Decode(text string, opts DecodeOptions) (*Value, error) {
	return parse.Decode(text, opts)
}

// ErrorKind classifies a codec Error: ParseError, ValidationError, or
// EncodeError.
type ErrorKind = toonerr.Kind

const (
	KindParseError      = toonerr.KindParse
	KindValidationError = toonerr.KindValidation
	KindEncodeError     = toonerr.KindEncode
)

// Error is the structured error type returned by Encode and Decode. Use
// errors.As to recover Line/Column/Kind, or errors.Is against ErrParse,
// ErrValidation, and ErrEncode to test the error's kind.
type Error = toonerr.Error

// ErrParse, ErrValidation, and ErrEncode are sentinels for errors.Is.
var (
	ErrParse      = toonerr.ErrParse
	ErrValidation = toonerr.ErrValidation
	ErrEncode     = toonerr.ErrEncode
)
