package format

import (
	"math"
	"strings"
	"testing"

	"github.com/toonlang/go-toon/internal/tokclass"
	"github.com/toonlang/go-toon/internal/value"
)

func obj(pairs ...any) *value.Value {
	o := value.NewObject()
	for i := 0; i < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1].(*value.Value))
	}
	return o
}

func arr(vs ...*value.Value) *value.Value {
	return value.Array(vs...)
}

func TestEncodeTabularUsers(t *testing.T) {
	users := arr(
		obj("id", value.Number(1), "name", value.String("Alice"), "role", value.String("admin")),
		obj("id", value.Number(2), "name", value.String("Bob"), "role", value.String("user")),
	)
	root := obj("users", users)

	got, err := Encode(root, Options{})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "users[2]{id,name,role}:\n  1,Alice,admin\n  2,Bob,user"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeInlineTags(t *testing.T) {
	root := obj("tags", arr(value.String("admin"), value.String("ops"), value.String("dev")))
	got, err := Encode(root, Options{})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if want := "tags[3]: admin,ops,dev"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeNestedPrimitiveArrays(t *testing.T) {
	root := obj("pairs", arr(
		arr(value.Number(1), value.Number(2)),
		arr(value.Number(3), value.Number(4)),
	))
	got, err := Encode(root, Options{})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "pairs[2]:\n  - [2]: 1,2\n  - [2]: 3,4"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeMixedExpandedList(t *testing.T) {
	root := obj("items", arr(
		value.Number(1),
		obj("a", value.Number(1)),
		value.String("text"),
	))
	got, err := Encode(root, Options{})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "items[3]:\n  - 1\n  - a: 1\n  - text"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeLengthMarker(t *testing.T) {
	root := obj("tags", arr(value.String("a"), value.String("b"), value.String("c")))
	got, err := Encode(root, Options{LengthMarker: true})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if want := "tags[#3]: a,b,c"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeTabularRowQuotesColonValue(t *testing.T) {
	root := obj("links", arr(
		obj("id", value.Number(1), "url", value.String("http://a:b")),
	))
	got, err := Encode(root, Options{})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "links[1]{id,url}:\n  1,\"http://a:b\""
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodePipeDelimiterAvoidsQuotingCommaString(t *testing.T) {
	root := obj("tags", arr(value.String("a,b"), value.String("c")))

	commaOut, err := Encode(root, Options{})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if !strings.Contains(commaOut, `"a,b"`) {
		t.Fatalf("comma delimiter should quote %q, got %q", "a,b", commaOut)
	}

	pipeOut, err := Encode(root, Options{Delimiter: tokclass.Pipe})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if strings.Contains(pipeOut, `"a,b"`) {
		t.Fatalf("pipe delimiter should not quote %q, got %q", "a,b", pipeOut)
	}
}

func TestEncodeFirstFieldOnHyphenLineNestedObject(t *testing.T) {
	// list item whose first field is itself a nested (bare-colon) object
	root := obj("items", arr(
		obj("meta", obj("k", value.String("v")), "other", value.Number(1)),
	))
	got, err := Encode(root, Options{})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "items[1]:\n  - meta:\n      k: v\n    other: 1"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeRootArrayAndPrimitive(t *testing.T) {
	got, err := Encode(arr(value.Number(1), value.Number(2)), Options{})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if want := "[2]: 1,2"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got, err = Encode(value.String("hello"), Options{})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if want := "hello"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeEmptyRootObject(t *testing.T) {
	got, err := Encode(value.NewObject(), Options{})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}

func TestEncodeEmptyArrayField(t *testing.T) {
	root := obj("tags", value.NewArray())
	got, err := Encode(root, Options{})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if want := "tags[0]:"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeNonFiniteNumberNormalizesToNull(t *testing.T) {
	if got := formatNumber(math.Inf(1)); got != "null" {
		t.Fatalf("formatNumber(+Inf) = %q, want null", got)
	}
}

func TestEncodeNegativeZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	if got := formatNumber(negZero); got != "0" {
		t.Fatalf("formatNumber(-0) = %q, want 0", got)
	}
}

func TestEncodeOutOfSafeRangeIntegerIsQuoted(t *testing.T) {
	got := formatNumber(1 << 60)
	if !strings.HasPrefix(got, `"`) {
		t.Fatalf("formatNumber(2^60) = %q, want quoted decimal", got)
	}
}

func TestEncodeRejectsTabIndent(t *testing.T) {
	_, err := Encode(value.Null(), Options{Indent: "\t"})
	if err == nil {
		t.Fatalf("expected error for tab indent")
	}
}
