package parse

import (
	"strconv"
	"strings"

	"github.com/toonlang/go-toon/internal/tokclass"
	"github.com/toonlang/go-toon/internal/toonerr"
)

// header is a parsed `[MND]F:` token (spec §4.4). The remainder of the
// physical line after its terminating ':' is returned separately by
// parseHeader.
type header struct {
	n            int
	lengthMarker bool
	delim        tokclass.Delimiter
	fields       []string // nil when no `{...}` field list is present
}

// parseHeader parses s, which must start with '['. It returns the header
// and whatever text follows the header's terminating ':' on the same
// line (possibly empty).
func parseHeader(s string, lineNum int) (*header, string, error) {
	if len(s) == 0 || s[0] != '[' {
		return nil, "", toonerr.NewAt(toonerr.KindParse, lineNum, "expected array header starting with '['")
	}
	i := 1

	lengthMarker := false
	if i < len(s) && s[i] == '#' {
		lengthMarker = true
		i++
	}

	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return nil, "", toonerr.NewAt(toonerr.KindParse, lineNum, "array header is missing its length")
	}
	n, convErr := strconv.Atoi(s[start:i])
	if convErr != nil {
		return nil, "", toonerr.NewAt(toonerr.KindParse, lineNum, "array header length %q is invalid", s[start:i])
	}

	delim := tokclass.Comma
	if i < len(s) {
		switch s[i] {
		case '\t':
			delim = tokclass.Tab
			i++
		case '|':
			delim = tokclass.Pipe
			i++
		}
	}

	if i >= len(s) || s[i] != ']' {
		return nil, "", toonerr.NewAt(toonerr.KindParse, lineNum, "array header is missing a closing ']'")
	}
	i++

	var fields []string
	if i < len(s) && s[i] == '{' {
		i++
		closeIdx := strings.IndexByte(s[i:], '}')
		if closeIdx < 0 {
			return nil, "", toonerr.NewAt(toonerr.KindParse, lineNum, "array header field list is missing a closing '}'")
		}
		raw := s[i : i+closeIdx]
		i += closeIdx + 1

		rawFields := splitDelimited(raw, delim.Byte())
		fields = make([]string, len(rawFields))
		for idx, rf := range rawFields {
			name, err := parseFieldName(rf, lineNum)
			if err != nil {
				return nil, "", err
			}
			fields[idx] = name
		}
	}

	if i >= len(s) || s[i] != ':' {
		return nil, "", toonerr.NewAt(toonerr.KindParse, lineNum, "array header is missing its terminating ':'")
	}
	i++

	return &header{n: n, lengthMarker: lengthMarker, delim: delim, fields: fields}, s[i:], nil
}

func parseFieldName(raw string, lineNum int) (string, error) {
	if raw == "" {
		return "", toonerr.NewAt(toonerr.KindParse, lineNum, "array header has an empty field name")
	}
	if raw[0] == '"' {
		inner, ok := scanQuotedContent(raw)
		if !ok {
			return "", toonerr.NewAt(toonerr.KindParse, lineNum, "malformed quoted field name %q", raw)
		}
		un, ok := tokclass.Unescape(inner)
		if !ok {
			return "", toonerr.NewAt(toonerr.KindParse, lineNum, "invalid escape sequence in field name %q", raw)
		}
		return un, nil
	}
	return raw, nil
}

// isArrayHeaderContent reports whether content opens with a well-formed,
// unnamed array header (spec §4.7 root-array detection: the root array
// header never carries a key).
func isArrayHeaderContent(content string) bool {
	if !strings.HasPrefix(content, "[") {
		return false
	}
	_, _, err := parseHeader(content, 0)
	return err == nil
}
