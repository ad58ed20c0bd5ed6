package value

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNull, "null"},
		{KindBool, "bool"},
		{KindNumber, "number"},
		{KindString, "string"},
		{KindArray, "array"},
		{KindObject, "object"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestConstructors(t *testing.T) {
	if kind := Null().Kind(); kind != KindNull {
		t.Fatalf("Null kind = %v, want %v", kind, KindNull)
	}
	if kind := Bool(true).Kind(); kind != KindBool {
		t.Fatalf("Bool kind = %v, want %v", kind, KindBool)
	}
	if kind := Number(1.5).Kind(); kind != KindNumber {
		t.Fatalf("Number kind = %v, want %v", kind, KindNumber)
	}
	if kind := String("x").Kind(); kind != KindString {
		t.Fatalf("String kind = %v, want %v", kind, KindString)
	}
	if kind := NewArray().Kind(); kind != KindArray {
		t.Fatalf("NewArray kind = %v, want %v", kind, KindArray)
	}
	if kind := NewObject().Kind(); kind != KindObject {
		t.Fatalf("NewObject kind = %v, want %v", kind, KindObject)
	}
}

func TestObjectPreservesOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("foo", String("bar"))
	obj.Set("baz", Number(7))
	obj.Set("foo", String("updated"))

	if got := obj.Get("foo"); got == nil || got.Str() != "updated" {
		t.Fatalf("Get foo = %#v, want updated", got)
	}
	if obj.Get("missing") != nil {
		t.Fatalf("Get missing should be nil")
	}

	want := []string{"foo", "baz"}
	got := obj.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys length = %d, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("Keys[%d] = %s, want %s", i, got[i], k)
		}
	}
	if obj.Size() != 2 {
		t.Fatalf("Size = %d, want 2", obj.Size())
	}
}

func TestArrayOperations(t *testing.T) {
	arr := NewArray()
	arr.Append(Number(1))
	arr.Append(Number(2))
	arr.Append(Number(3))

	if got := arr.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	if elem := arr.At(1); elem == nil || elem.Number() != 2 {
		t.Fatalf("At(1) = %#v, want 2", elem)
	}
	if arr.At(10) != nil {
		t.Fatalf("At out of range should be nil")
	}

	elems := arr.Elements()
	if len(elems) != arr.Len() {
		t.Fatalf("Elements length = %d, want %d", len(elems), arr.Len())
	}
}

func TestNilValueIsNull(t *testing.T) {
	var v *Value
	if v.Kind() != KindNull {
		t.Fatalf("nil Value Kind = %v, want KindNull", v.Kind())
	}
	if v.Len() != 0 || v.Size() != 0 {
		t.Fatalf("nil Value should report zero length/size")
	}
}
