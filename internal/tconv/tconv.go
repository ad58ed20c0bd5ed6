// Package tconv bridges encoding/json and the codec's internal value
// tree, for cmd/toon's `toon encode` (which accepts JSON input) and
// `toon decode` (which emits JSON output). It is the only place in the
// module that imports encoding/json; the codec packages themselves
// never see it.
package tconv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/toonlang/go-toon/internal/value"
)

// FromJSON parses data into a value tree, preserving object key order by
// walking json.Decoder's token stream instead of unmarshaling into a
// map[string]any.
func FromJSON(data []byte) (*value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (*value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*value.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := value.NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				child, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, child)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			arr := value.NewArray()
			for dec.More() {
				child, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(child)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected JSON delimiter %v", t)
		}
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(t), nil
	case string:
		return value.String(t), nil
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON number %q: %w", t.String(), err)
		}
		return value.Number(f), nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %v (%T)", tok, tok)
	}
}

// ToJSON renders a value tree as JSON text, preserving object field
// order. indent, when non-empty, pretty-prints with that per-level
// indentation; an empty indent produces compact JSON.
func ToJSON(v *value.Value, indent string) ([]byte, error) {
	var b bytes.Buffer
	if err := writeJSON(&b, v, indent, 0); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func writeJSON(b *bytes.Buffer, v *value.Value, indent string, depth int) error {
	nl, pad, padIn := "", "", ""
	if indent != "" {
		nl = "\n"
		pad = strings.Repeat(indent, depth)
		padIn = strings.Repeat(indent, depth+1)
	}

	switch v.Kind() {
	case value.KindNull:
		b.WriteString("null")
	case value.KindBool:
		if v.Bool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.KindNumber:
		b.WriteString(strconv.FormatFloat(v.Number(), 'g', -1, 64))
	case value.KindString:
		raw, err := json.Marshal(v.Str())
		if err != nil {
			return err
		}
		b.Write(raw)
	case value.KindArray:
		elems := v.Elements()
		if len(elems) == 0 {
			b.WriteString("[]")
			return nil
		}
		b.WriteByte('[')
		b.WriteString(nl)
		for i, el := range elems {
			b.WriteString(padIn)
			if err := writeJSON(b, el, indent, depth+1); err != nil {
				return err
			}
			if i < len(elems)-1 {
				b.WriteByte(',')
			}
			b.WriteString(nl)
		}
		b.WriteString(pad)
		b.WriteByte(']')
	case value.KindObject:
		keys := v.Keys()
		if len(keys) == 0 {
			b.WriteString("{}")
			return nil
		}
		b.WriteByte('{')
		b.WriteString(nl)
		for i, k := range keys {
			b.WriteString(padIn)
			keyRaw, err := json.Marshal(k)
			if err != nil {
				return err
			}
			b.Write(keyRaw)
			b.WriteByte(':')
			if indent != "" {
				b.WriteByte(' ')
			}
			if err := writeJSON(b, v.Get(k), indent, depth+1); err != nil {
				return err
			}
			if i < len(keys)-1 {
				b.WriteByte(',')
			}
			b.WriteString(nl)
		}
		b.WriteString(pad)
		b.WriteByte('}')
	}
	return nil
}
