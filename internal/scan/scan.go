// Package scan splits TOON input into physical lines and resolves each
// line's indentation depth (spec §4.6). It is the leaf of the decoder's
// dependency chain: it knows nothing about headers, delimiters, or
// structure — only where lines start, how deep they are, and whether
// they are blank.
package scan

import (
	"strings"

	"github.com/toonlang/go-toon/internal/toonerr"
)

// Line is one physical line of input with its resolved depth.
type Line struct {
	// Number is the 1-based source line number, for diagnostics.
	Number int
	// Content is the line with leading indentation stripped.
	Content string
	// Depth is Indent/indentLen (strict) or floor(Indent/indentLen)
	// (non-strict).
	Depth int
	// Indent is the count of leading whitespace characters.
	Indent int
	// Blank reports whether the line is empty or whitespace-only.
	Blank bool
}

// Scan splits text on LF and resolves each line's depth against
// indentLen, the configured indentation unit's length. A single trailing
// LF at end-of-input is tolerated and does not produce an extra line.
//
// In strict mode, a tab anywhere in a line's leading whitespace, or a
// leading-space count that is not an exact multiple of indentLen, is a
// ValidationError. In non-strict mode neither is an error: depth is
// floor(spaces/indentLen) and tabs are simply counted as whitespace.
func Scan(text string, indentLen int, strict bool) ([]Line, error) {
	if indentLen <= 0 {
		return nil, toonerr.New(toonerr.KindParse, "invalid indent configuration")
	}

	raw := strings.Split(text, "\n")
	if len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	lines := make([]Line, 0, len(raw))
	for i, r := range raw {
		lineNum := i + 1

		lead := 0
		for lead < len(r) && (r[lead] == ' ' || r[lead] == '\t') {
			lead++
		}
		leadWS := r[:lead]
		blank := strings.TrimSpace(r) == ""

		if strict && strings.ContainsRune(leadWS, '\t') {
			return nil, toonerr.NewAt(toonerr.KindValidation, lineNum, "tab used in indentation").WithSource(text)
		}

		var depth int
		if strict {
			if lead%indentLen != 0 {
				return nil, toonerr.NewAt(toonerr.KindValidation, lineNum,
					"indentation (%d spaces) is not a multiple of the indent unit (%d)", lead, indentLen).WithSource(text)
			}
			depth = lead / indentLen
		} else {
			depth = lead / indentLen
		}

		lines = append(lines, Line{
			Number:  lineNum,
			Content: r[lead:],
			Depth:   depth,
			Indent:  lead,
			Blank:   blank,
		})
	}

	return lines, nil
}
