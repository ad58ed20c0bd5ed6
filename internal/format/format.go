// Package format implements the TOON encoder: primitive and key
// formatting, header construction, array shape selection, and the tree
// walker that emits indented text for a value tree (spec §4.2–§4.5).
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/toonlang/go-toon/internal/tokclass"
	"github.com/toonlang/go-toon/internal/toonerr"
	"github.com/toonlang/go-toon/internal/value"
)

// Options configures the encoder per spec §6.
type Options struct {
	// Delimiter is the document delimiter and the default active
	// delimiter for every header. Zero value selects comma.
	Delimiter tokclass.Delimiter
	// LengthMarker enables the optional '#' length marker in headers.
	LengthMarker bool
	// Indent is the per-depth indentation unit. Empty selects two
	// spaces. Must not contain a tab character.
	Indent string
}

func (o Options) normalize() (Options, error) {
	if o.Delimiter == 0 {
		o.Delimiter = tokclass.Comma
	}
	if o.Indent == "" {
		o.Indent = "  "
	}
	if strings.ContainsRune(o.Indent, '\t') {
		return o, toonerr.New(toonerr.KindEncode, "indent must not contain a tab character")
	}
	return o, nil
}

// maxSafeInt and minSafeInt are the inclusive bounds of integers
// losslessly representable in IEEE-754 double precision (2^53-1).
const (
	maxSafeInt = 1<<53 - 1
	minSafeInt = -(1<<53 - 1)
)

type shapeKind int

const (
	shapeInline shapeKind = iota
	shapeTabular
	shapeExpanded
)

// arrayPlan is the result of shape selection for a single array (§4.5).
type arrayPlan struct {
	shape  shapeKind
	header string // full header text, including trailing ':' (and, for
	// shapeInline with elements, the " v1 D v2 ..." suffix)
	rows  []string // shapeTabular: one delimiter-joined row per element
	elems []*value.Value
}

type encoder struct {
	opts  Options
	lines []string
}

// Encode renders v as TOON text per spec §4.5 and §6.
func Encode(v *value.Value, opts Options) (string, error) {
	opts, err := opts.normalize()
	if err != nil {
		return "", err
	}
	e := &encoder{opts: opts}

	switch v.Kind() {
	case value.KindObject:
		if v.Size() == 0 {
			return "", nil
		}
		e.emitObjectFields(v, 0)
	case value.KindArray:
		plan, err := e.planArray("", v)
		if err != nil {
			return "", err
		}
		e.appendLine(plan.header)
		if err := e.emitArrayBody(plan, 1); err != nil {
			return "", err
		}
	default:
		s, err := e.formatPrimitive(v)
		if err != nil {
			return "", err
		}
		e.appendLine(s)
	}

	return strings.Join(e.lines, "\n"), nil
}

func (e *encoder) indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(e.opts.Indent, depth)
}

func (e *encoder) appendLine(s string) {
	e.lines = append(e.lines, s)
}

// formatKey emits a key bare if it matches the unquoted-key grammar,
// otherwise as a quoted, escaped string (spec §4.3).
func formatKey(key string) string {
	if tokclass.IsUnquotedKey(key) {
		return key
	}
	return tokclass.Escape(key)
}

// formatPrimitive formats a single primitive value token (spec §4.2).
func (e *encoder) formatPrimitive(v *value.Value) (string, error) {
	switch v.Kind() {
	case value.KindNull:
		return "null", nil
	case value.KindBool:
		if v.Bool() {
			return "true", nil
		}
		return "false", nil
	case value.KindNumber:
		return formatNumber(v.Number()), nil
	case value.KindString:
		s := v.Str()
		if tokclass.NeedsQuote(s, e.opts.Delimiter) {
			return tokclass.Escape(s), nil
		}
		return s, nil
	default:
		return "", toonerr.New(toonerr.KindEncode, "cannot format %s as a primitive", v.Kind())
	}
}

// formatNumber implements spec §4.2's numeric formatting and §3's
// finite/-0/safe-integer normalization rules.
func formatNumber(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "null"
	}
	if n == 0 {
		n = 0 // normalize -0 to 0
	}
	if n == math.Trunc(n) {
		if n >= minSafeInt && n <= maxSafeInt {
			return strconv.FormatInt(int64(n), 10)
		}
		// Out-of-safe-range integer: quoted decimal string.
		return tokclass.Escape(strconv.FormatFloat(n, 'f', -1, 64))
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// buildHeader constructs the `K[MN D]F:` header token of spec §4.4.
func buildHeader(key string, n int, delim tokclass.Delimiter, fields []string, lengthMarker bool) string {
	var b strings.Builder
	if key != "" {
		b.WriteString(formatKey(key))
	}
	b.WriteByte('[')
	if lengthMarker {
		b.WriteByte('#')
	}
	b.WriteString(strconv.Itoa(n))
	b.WriteString(delim.Symbol())
	b.WriteByte(']')
	if fields != nil {
		b.WriteByte('{')
		joinChar := string(delim.Byte())
		formatted := make([]string, len(fields))
		for i, f := range fields {
			formatted[i] = formatKey(f)
		}
		b.WriteString(strings.Join(formatted, joinChar))
		b.WriteByte('}')
	}
	b.WriteByte(':')
	return b.String()
}

// tabularFields reports the field order of elems if every element is an
// Object, all objects share the same key set, and every value under
// those keys is a primitive (spec §4.5, §4.9 tabular detection).
func tabularFields(elems []*value.Value) ([]string, bool) {
	if len(elems) == 0 || elems[0].Kind() != value.KindObject {
		return nil, false
	}
	fields := elems[0].Keys()
	for _, f := range fields {
		if !elems[0].Get(f).IsPrimitive() {
			return nil, false
		}
	}
	for _, el := range elems[1:] {
		if el.Kind() != value.KindObject || el.Size() != len(fields) {
			return nil, false
		}
		for _, f := range fields {
			fv := el.Get(f)
			if fv == nil || !fv.IsPrimitive() {
				return nil, false
			}
		}
	}
	return fields, true
}

// planArray chooses the array's shape (spec §4.5) and formats whatever
// can be computed independent of where the array will be placed in the
// output (key prefix, header, tabular rows, or the element list).
func (e *encoder) planArray(key string, arr *value.Value) (*arrayPlan, error) {
	elems := arr.Elements()
	n := len(elems)
	delim := e.opts.Delimiter

	if n == 0 {
		header := buildHeader(key, 0, delim, nil, e.opts.LengthMarker)
		return &arrayPlan{shape: shapeInline, header: header}, nil
	}

	allPrimitive := true
	for _, el := range elems {
		if !el.IsPrimitive() {
			allPrimitive = false
			break
		}
	}
	if allPrimitive {
		header := buildHeader(key, n, delim, nil, e.opts.LengthMarker)
		vals := make([]string, n)
		for i, el := range elems {
			s, err := e.formatPrimitive(el)
			if err != nil {
				return nil, err
			}
			vals[i] = s
		}
		header += " " + strings.Join(vals, string(delim.Byte()))
		return &arrayPlan{shape: shapeInline, header: header}, nil
	}

	if fields, ok := tabularFields(elems); ok {
		header := buildHeader(key, n, delim, fields, e.opts.LengthMarker)
		joinChar := string(delim.Byte())
		rows := make([]string, n)
		for i, el := range elems {
			parts := make([]string, len(fields))
			for j, f := range fields {
				s, err := e.formatPrimitive(el.Get(f))
				if err != nil {
					return nil, err
				}
				parts[j] = s
			}
			rows[i] = strings.Join(parts, joinChar)
		}
		return &arrayPlan{shape: shapeTabular, header: header, rows: rows}, nil
	}

	header := buildHeader(key, n, delim, nil, e.opts.LengthMarker)
	return &arrayPlan{shape: shapeExpanded, header: header, elems: elems}, nil
}

// emitArrayBody writes whatever follows an array's header line: nothing
// for an inline array, one row per element for tabular, or one list item
// per element for expanded.
func (e *encoder) emitArrayBody(plan *arrayPlan, depth int) error {
	switch plan.shape {
	case shapeInline:
		return nil
	case shapeTabular:
		for _, row := range plan.rows {
			e.appendLine(e.indent(depth) + row)
		}
		return nil
	default: // shapeExpanded
		for _, el := range plan.elems {
			if err := e.emitListItem(el, depth); err != nil {
				return err
			}
		}
		return nil
	}
}

// emitListItem writes one hyphen-prefixed item of an expanded list
// (spec §4.5's expanded-list bullet points).
func (e *encoder) emitListItem(el *value.Value, depth int) error {
	switch el.Kind() {
	case value.KindArray:
		plan, err := e.planArray("", el)
		if err != nil {
			return err
		}
		e.appendLine(e.indent(depth) + "- " + plan.header)
		return e.emitArrayBody(plan, depth+1)
	case value.KindObject:
		if el.Size() == 0 {
			e.appendLine(e.indent(depth) + "-")
			return nil
		}
		return e.emitHyphenObject(el, depth)
	default:
		s, err := e.formatPrimitive(el)
		if err != nil {
			return err
		}
		e.appendLine(e.indent(depth) + "- " + s)
		return nil
	}
}

// emitHyphenObject writes an object list item: its first key shares the
// hyphen line, every other key is a normal field one level deeper, and
// nested content of any field (including a bare-colon nested object or
// an array's rows/items) sits two levels deeper than the hyphen (spec
// §4.5's first-field-on-hyphen-line rule, §9's design note).
func (e *encoder) emitHyphenObject(obj *value.Value, depth int) error {
	keys := obj.Keys()
	if err := e.emitField(keys[0], obj.Get(keys[0]), depth+1, e.indent(depth)+"- "); err != nil {
		return err
	}
	for _, k := range keys[1:] {
		if err := e.emitField(k, obj.Get(k), depth+1, ""); err != nil {
			return err
		}
	}
	return nil
}

// emitObjectFields writes every field of a plain object at the given
// depth (spec §4.5's object-emission rule).
func (e *encoder) emitObjectFields(obj *value.Value, depth int) error {
	for _, k := range obj.Keys() {
		if err := e.emitField(k, obj.Get(k), depth, ""); err != nil {
			return err
		}
	}
	return nil
}

// emitField writes a single "key: value" (or "key:" / "key[...]...:")
// line. linePrefix overrides the normal indent(fieldDepth) prefix; pass
// "" to use plain indentation, or "<indent>- " for a hyphen-line field.
// Any nested body lives at fieldDepth+1.
func (e *encoder) emitField(key string, v *value.Value, fieldDepth int, linePrefix string) error {
	prefix := linePrefix
	if prefix == "" {
		prefix = e.indent(fieldDepth)
	}
	keyStr := formatKey(key)

	switch v.Kind() {
	case value.KindObject:
		if v.Size() == 0 {
			e.appendLine(prefix + keyStr + ":")
			return nil
		}
		e.appendLine(prefix + keyStr + ":")
		return e.emitObjectFields(v, fieldDepth+1)
	case value.KindArray:
		plan, err := e.planArray(key, v)
		if err != nil {
			return err
		}
		e.appendLine(prefix + plan.header)
		return e.emitArrayBody(plan, fieldDepth+1)
	default:
		s, err := e.formatPrimitive(v)
		if err != nil {
			return err
		}
		e.appendLine(prefix + keyStr + ": " + s)
		return nil
	}
}
