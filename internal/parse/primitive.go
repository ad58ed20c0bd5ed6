package parse

import (
	"math"
	"strconv"
	"strings"

	"github.com/toonlang/go-toon/internal/tokclass"
	"github.com/toonlang/go-toon/internal/toonerr"
	"github.com/toonlang/go-toon/internal/value"
)

// scanLeadingQuotedToken scans a quoted token starting at s[0] == '"',
// returning its unescaped-later inner content and how many bytes of s it
// consumed (including both quotes). It does not require s to end at the
// closing quote.
func scanLeadingQuotedToken(s string) (inner string, consumed int, ok bool) {
	if len(s) == 0 || s[0] != '"' {
		return "", 0, false
	}
	i := 1
	for i < len(s) {
		c := s[i]
		if c == '\\' {
			if i+1 >= len(s) {
				return "", 0, false
			}
			i += 2
			continue
		}
		if c == '"' {
			return s[1:i], i + 1, true
		}
		i++
	}
	return "", 0, false
}

// scanQuotedContent requires all of s to be a single quoted token.
func scanQuotedContent(s string) (string, bool) {
	inner, consumed, ok := scanLeadingQuotedToken(s)
	if !ok || consumed != len(s) {
		return "", false
	}
	return inner, true
}

// splitDelimited splits s on delim outside of quoted spans (spec §4.9),
// trimming surrounding ASCII spaces/tabs from each raw field. A
// backslash inside a quoted span escapes the following byte so an
// escaped quote or delimiter never ends the span early.
func splitDelimited(s string, delim byte) []string {
	var parts []string
	var cur strings.Builder
	quoted := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quoted {
			cur.WriteByte(c)
			if c == '\\' && i+1 < len(s) {
				i++
				cur.WriteByte(s[i])
				continue
			}
			if c == '"' {
				quoted = false
			}
			continue
		}
		if c == '"' {
			quoted = true
			cur.WriteByte(c)
			continue
		}
		if c == delim {
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	parts = append(parts, cur.String())
	for i, p := range parts {
		parts[i] = strings.Trim(p, " \t")
	}
	return parts
}

// isDecoderNumeric implements the Number-decoding accept pattern of spec
// §4.10: ^-?(?:0|[1-9]\d*)(?:\.\d+)?(?:[eE][+-]?\d+)?$. A leading-zero
// integer part followed by more digits (e.g. "0123") fails this pattern
// and falls through to String, matching the encoder's own refusal to
// treat such tokens as numbers.
func isDecoderNumeric(s string) bool {
	i, n := 0, len(s)
	if i < n && s[i] == '-' {
		i++
	}
	if i >= n {
		return false
	}
	if s[i] == '0' {
		i++
	} else if s[i] >= '1' && s[i] <= '9' {
		i++
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	} else {
		return false
	}
	if i < n && s[i] == '.' {
		i++
		start := i
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return false
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == n
}

// parsePrimitiveToken decodes a single already-trimmed token per spec
// §4.10: quoted string, true/false/null, number, or (the catch-all)
// unquoted string.
func parsePrimitiveToken(raw string, lineNum int) (*value.Value, error) {
	if raw == "" {
		return value.String(""), nil
	}
	if raw[0] == '"' {
		inner, ok := scanQuotedContent(raw)
		if !ok {
			return nil, toonerr.NewAt(toonerr.KindParse, lineNum, "unterminated or malformed quoted string %q", raw)
		}
		un, ok := tokclass.Unescape(inner)
		if !ok {
			return nil, toonerr.NewAt(toonerr.KindParse, lineNum, "invalid escape sequence in %q", raw)
		}
		return value.String(un), nil
	}
	switch raw {
	case "true":
		return value.Bool(true), nil
	case "false":
		return value.Bool(false), nil
	case "null":
		return value.Null(), nil
	}
	if isDecoderNumeric(raw) {
		f, err := strconv.ParseFloat(raw, 64)
		if err == nil && !math.IsInf(f, 0) {
			return value.Number(f), nil
		}
	}
	return value.String(raw), nil
}

// splitKeyAndHeader classifies content as a "key-shaped" line: either a
// plain field ("key: value" / bare "key:") or a header field
// ("key[...]...:"). It returns the decoded key, the remainder of the
// line after the key (starting at '[' for a header, already past the
// ':' and trimmed for a plain field), and whether it is a header form.
// An error return means content does not parse as a key-shaped line at
// all: root detection and list items then treat it as a primitive, while
// parseObjectAt returns the error.
func splitKeyAndHeader(content string, lineNum int) (key, rest string, isHeader bool, err error) {
	if content == "" {
		return "", "", false, toonerr.NewAt(toonerr.KindParse, lineNum, "empty line where a key was expected")
	}

	if content[0] == '"' {
		inner, consumed, ok := scanLeadingQuotedToken(content)
		if !ok {
			return "", "", false, toonerr.NewAt(toonerr.KindParse, lineNum, "malformed quoted key")
		}
		un, ok := tokclass.Unescape(inner)
		if !ok {
			return "", "", false, toonerr.NewAt(toonerr.KindParse, lineNum, "invalid escape sequence in key")
		}
		after := content[consumed:]
		switch {
		case strings.HasPrefix(after, "["):
			return un, after, true, nil
		case strings.HasPrefix(after, ":"):
			return un, strings.TrimLeft(after[1:], " \t"), false, nil
		default:
			return "", "", false, toonerr.NewAt(toonerr.KindParse, lineNum, "key is not followed by ':'")
		}
	}

	idx := strings.IndexAny(content, "[:")
	if idx < 0 {
		return "", "", false, toonerr.NewAt(toonerr.KindParse, lineNum, "key is not followed by ':'")
	}
	key = content[:idx]
	if content[idx] == '[' {
		return key, content[idx:], true, nil
	}
	return key, strings.TrimLeft(content[idx+1:], " \t"), false, nil
}
