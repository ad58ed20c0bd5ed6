package tconv

import (
	"testing"

	"github.com/toonlang/go-toon/internal/value"
)

func TestFromJSONPreservesKeyOrder(t *testing.T) {
	v, err := FromJSON([]byte(`{"z": 1, "a": 2, "m": 3}`))
	if err != nil {
		t.Fatalf("FromJSON error: %v", err)
	}
	got := v.Keys()
	want := []string{"z", "a", "m"}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("key order = %v, want %v", got, want)
		}
	}
}

func TestFromJSONTypes(t *testing.T) {
	v, err := FromJSON([]byte(`{"n": 1.5, "b": true, "s": "hi", "x": null, "a": [1,2]}`))
	if err != nil {
		t.Fatalf("FromJSON error: %v", err)
	}
	if v.Get("n").Number() != 1.5 {
		t.Errorf("n = %v", v.Get("n").Number())
	}
	if !v.Get("b").Bool() {
		t.Errorf("b = false, want true")
	}
	if v.Get("s").Str() != "hi" {
		t.Errorf("s = %q", v.Get("s").Str())
	}
	if v.Get("x").Kind() != value.KindNull {
		t.Errorf("x kind = %v, want null", v.Get("x").Kind())
	}
	if v.Get("a").Len() != 2 {
		t.Errorf("a len = %d, want 2", v.Get("a").Len())
	}
}

func TestToJSONRoundTrip(t *testing.T) {
	obj := value.NewObject()
	obj.Set("b", value.String("second"))
	obj.Set("a", value.Array(value.Number(1), value.Number(2)))

	raw, err := ToJSON(obj, "")
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}

	back, err := FromJSON(raw)
	if err != nil {
		t.Fatalf("FromJSON(ToJSON) error: %v", err)
	}
	if back.Keys()[0] != "b" || back.Keys()[1] != "a" {
		t.Fatalf("key order not preserved through JSON round trip: %v", back.Keys())
	}
}

func TestToJSONIndent(t *testing.T) {
	obj := value.NewObject()
	obj.Set("k", value.Number(1))
	raw, err := ToJSON(obj, "  ")
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}
	want := "{\n  \"k\": 1\n}"
	if string(raw) != want {
		t.Fatalf("got %q, want %q", raw, want)
	}
}
