// Package parse implements the TOON decoder's structural recursion: root
// form detection, object field parsing, and array body parsing (tabular,
// inline, and expanded list), per spec §4.7–§4.12. It consumes the
// scan package's depth-resolved lines and tokclass's character-class
// predicates, and never imports encoding/json or any ambient-stack
// package.
package parse

import (
	"strings"

	"github.com/toonlang/go-toon/internal/scan"
	"github.com/toonlang/go-toon/internal/tokclass"
	"github.com/toonlang/go-toon/internal/toonerr"
	"github.com/toonlang/go-toon/internal/value"
)

// Options configures the decoder per spec §6.
type Options struct {
	// Delimiter, when non-nil, is used to split every header's row and
	// inline values instead of the delimiter the header itself declares.
	Delimiter *tokclass.Delimiter
	// Strict enables the validation checks of spec §4.12. A nil value
	// defaults to true (strict mode is the default document contract).
	Strict *bool
	// Indent is the indentation unit used to resolve line depth. Empty
	// selects two spaces.
	Indent string
}

func (o Options) normalize() Options {
	if o.Indent == "" {
		o.Indent = "  "
	}
	return o
}

func (o Options) isStrict() bool {
	return o.Strict == nil || *o.Strict
}

type parser struct {
	lines         []scan.Line
	strict        bool
	source        string
	delimOverride *tokclass.Delimiter
}

// Decode parses text into a value tree per spec §4.7–§4.12.
func Decode(text string, opts Options) (*value.Value, error) {
	opts = opts.normalize()
	strict := opts.isStrict()

	lines, err := scan.Scan(text, len(opts.Indent), strict)
	if err != nil {
		return nil, err
	}

	var allNonBlank, depth0NonBlank []int
	for idx, ln := range lines {
		if ln.Blank {
			continue
		}
		allNonBlank = append(allNonBlank, idx)
		if ln.Depth == 0 {
			depth0NonBlank = append(depth0NonBlank, idx)
		}
	}
	if len(allNonBlank) == 0 {
		return nil, toonerr.New(toonerr.KindValidation, "empty input").WithSource(text)
	}
	if len(depth0NonBlank) == 0 {
		return nil, toonerr.NewAt(toonerr.KindParse, lines[allNonBlank[0]].Number,
			"input's first content line is indented").WithSource(text)
	}

	p := &parser{lines: lines, strict: strict, source: text, delimOverride: opts.Delimiter}

	first := lines[depth0NonBlank[0]]

	if isArrayHeaderContent(first.Content) {
		v, _, err := p.parseArrayAt(first.Content, depth0NonBlank[0], 0)
		if err != nil {
			return nil, p.attachSource(err)
		}
		return v, nil
	}

	if len(allNonBlank) == 1 {
		content := strings.TrimSpace(first.Content)
		if _, _, _, kerr := splitKeyAndHeader(content, first.Number); kerr != nil {
			v, err := parsePrimitiveToken(content, first.Number)
			if err != nil {
				return nil, p.attachSource(err)
			}
			return v, nil
		}
	}

	obj, _, err := p.parseObjectAt(depth0NonBlank[0], 0)
	if err != nil {
		return nil, p.attachSource(err)
	}
	return obj, nil
}

func (p *parser) attachSource(err error) error {
	if te, ok := err.(*toonerr.Error); ok {
		return te.WithSource(p.source)
	}
	return err
}

func (p *parser) delimFor(h *header) tokclass.Delimiter {
	if p.delimOverride != nil {
		return *p.delimOverride
	}
	return h.delim
}

// parseObjectAt parses object fields starting at line index i, all of
// which must sit at depth d, until a line of shallower depth (or the end
// of input) closes the object. It returns the object and the index of
// the first line not consumed.
func (p *parser) parseObjectAt(i, d int) (*value.Value, int, error) {
	obj := value.NewObject()
	for i < len(p.lines) {
		ln := p.lines[i]
		if ln.Blank {
			i++
			continue
		}
		if ln.Depth < d {
			break
		}
		if ln.Depth > d {
			return nil, i, toonerr.NewAt(toonerr.KindParse, ln.Number, "unexpected indentation")
		}
		if strings.HasPrefix(ln.Content, "-") {
			return nil, i, toonerr.NewAt(toonerr.KindParse, ln.Number, "list item outside of an array")
		}

		key, rest, isHeader, err := splitKeyAndHeader(ln.Content, ln.Number)
		if err != nil {
			return nil, i, err
		}

		switch {
		case isHeader:
			val, ni, err := p.parseArrayAt(rest, i, d)
			if err != nil {
				return nil, i, err
			}
			obj.Set(key, val)
			i = ni
		case rest == "":
			child, ni, err := p.parseObjectAt(i+1, d+1)
			if err != nil {
				return nil, i, err
			}
			obj.Set(key, child)
			i = ni
		default:
			v, err := parsePrimitiveToken(rest, ln.Number)
			if err != nil {
				return nil, i, err
			}
			obj.Set(key, v)
			i++
		}
	}
	return obj, i, nil
}

// parseArrayAt parses an array whose header occupies headerPart (the
// line content starting at '['), on physical line i. d is the array
// field's conceptual depth: the header's row/item body lives at d+1,
// regardless of where the header line itself is physically indented
// (a hyphen-line first field's header sits at the hyphen's depth but
// its body still lives two levels past the hyphen, per the encoder's
// first-field-on-hyphen-line rule).
func (p *parser) parseArrayAt(headerPart string, i, d int) (*value.Value, int, error) {
	ln := p.lines[i]
	h, restOfLine, err := parseHeader(headerPart, ln.Number)
	if err != nil {
		return nil, i, err
	}
	delim := p.delimFor(h)

	if h.fields != nil {
		return p.parseTabularBody(h, delim, i, d)
	}

	restTrim := strings.TrimLeft(restOfLine, " \t")
	if restTrim != "" {
		raw := splitDelimited(restTrim, delim.Byte())
		elems := make([]*value.Value, len(raw))
		for k, rf := range raw {
			v, err := parsePrimitiveToken(rf, ln.Number)
			if err != nil {
				return nil, i, err
			}
			elems[k] = v
		}
		if p.strict && len(elems) != h.n {
			return nil, i, toonerr.NewAt(toonerr.KindValidation, ln.Number,
				"inline array declares length %d but has %d values", h.n, len(elems))
		}
		return value.Array(elems...), i + 1, nil
	}

	if h.n == 0 {
		return value.NewArray(), i + 1, nil
	}

	return p.parseExpandedBody(h, delim, i, d)
}

// parseTabularBody parses the row lines following a field-list header
// (spec §4.9 tabular rows).
func (p *parser) parseTabularBody(h *header, delim tokclass.Delimiter, i, d int) (*value.Value, int, error) {
	arr := value.NewArray()
	j := i + 1
	count := 0

	for j < len(p.lines) {
		ln := p.lines[j]
		if ln.Blank {
			if p.strict && count < h.n {
				return nil, j, toonerr.NewAt(toonerr.KindValidation, ln.Number, "blank line inside a tabular block")
			}
			j++
			continue
		}
		if ln.Depth < d+1 {
			break
		}
		if ln.Depth > d+1 {
			return nil, j, toonerr.NewAt(toonerr.KindParse, ln.Number, "unexpected indentation inside a tabular block")
		}

		raw := splitDelimited(ln.Content, delim.Byte())
		if p.strict && len(raw) != len(h.fields) {
			return nil, j, toonerr.NewAt(toonerr.KindValidation, ln.Number,
				"tabular row has %d fields, header declares %d", len(raw), len(h.fields))
		}
		limit := len(h.fields)
		if len(raw) < limit {
			limit = len(raw)
		}
		row := value.NewObject()
		for k := 0; k < limit; k++ {
			v, err := parsePrimitiveToken(raw[k], ln.Number)
			if err != nil {
				return nil, j, err
			}
			row.Set(h.fields[k], v)
		}
		arr.Append(row)
		count++
		j++
	}

	if p.strict && count != h.n {
		return nil, j, toonerr.NewAt(toonerr.KindValidation, p.lines[i].Number,
			"tabular array declares length %d but has %d rows", h.n, count)
	}
	return arr, j, nil
}

// parseExpandedBody parses the hyphen-prefixed item lines following a
// headerless, non-empty array header (spec §4.9 expanded lists).
func (p *parser) parseExpandedBody(h *header, delim tokclass.Delimiter, i, d int) (*value.Value, int, error) {
	arr := value.NewArray()
	j := i + 1
	count := 0

	for j < len(p.lines) {
		ln := p.lines[j]
		if ln.Blank {
			if p.strict && count < h.n {
				return nil, j, toonerr.NewAt(toonerr.KindValidation, ln.Number, "blank line inside a list block")
			}
			j++
			continue
		}
		if ln.Depth < d+1 {
			break
		}
		if ln.Depth > d+1 {
			return nil, j, toonerr.NewAt(toonerr.KindParse, ln.Number, "unexpected indentation inside a list block")
		}
		if !strings.HasPrefix(ln.Content, "-") {
			break
		}

		item, nj, err := p.parseListItem(ln.Content, j, d+1, delim)
		if err != nil {
			return nil, j, err
		}
		arr.Append(item)
		count++
		j = nj
	}

	if p.strict && count != h.n {
		return nil, j, toonerr.NewAt(toonerr.KindValidation, p.lines[i].Number,
			"list array declares length %d but has %d items", h.n, count)
	}
	return arr, j, nil
}

// parseListItem parses the content of one "- ..." line of an expanded
// list, which may be a bare hyphen (empty object), an inline array
// header, a key-value/key-header object whose first field shares the
// hyphen line, or a bare primitive (spec §4.5, §4.9).
func (p *parser) parseListItem(content string, j, itemDepth int, delim tokclass.Delimiter) (*value.Value, int, error) {
	lineNum := p.lines[j].Number
	rest := strings.TrimLeft(content[1:], " \t")
	if rest == "" {
		return value.NewObject(), j + 1, nil
	}

	if rest[0] == '[' {
		return p.parseArrayAt(rest, j, itemDepth)
	}

	if key, afterKey, isHeader, kerr := splitKeyAndHeader(rest, lineNum); kerr == nil {
		return p.parseHyphenObject(key, afterKey, isHeader, j, itemDepth)
	}

	v, err := parsePrimitiveToken(rest, lineNum)
	if err != nil {
		return nil, j, err
	}
	return v, j + 1, nil
}

// parseHyphenObject parses an object list item whose first field (key,
// afterKey, isHeader already split from the hyphen line) shares the
// hyphen's physical line. Every field of a hyphen-object item, first or
// sibling, lives at conceptual depth itemDepth+1, so any field's nested
// body lives at itemDepth+2 — mirroring the encoder's emitHyphenObject.
func (p *parser) parseHyphenObject(key, afterKey string, isHeader bool, j, itemDepth int) (*value.Value, int, error) {
	obj := value.NewObject()
	var next int

	switch {
	case isHeader:
		val, nj, err := p.parseArrayAt(afterKey, j, itemDepth+1)
		if err != nil {
			return nil, j, err
		}
		obj.Set(key, val)
		next = nj
	case afterKey == "":
		child, nj, err := p.parseObjectAt(j+1, itemDepth+2)
		if err != nil {
			return nil, j, err
		}
		obj.Set(key, child)
		next = nj
	default:
		v, err := parsePrimitiveToken(afterKey, p.lines[j].Number)
		if err != nil {
			return nil, j, err
		}
		obj.Set(key, v)
		next = j + 1
	}

	siblings, nj, err := p.parseObjectAt(next, itemDepth+1)
	if err != nil {
		return nil, j, err
	}
	for _, k := range siblings.Keys() {
		obj.Set(k, siblings.Get(k))
	}
	return obj, nj, nil
}
