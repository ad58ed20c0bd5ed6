package tokclass

import "testing"

func TestIsUnquotedKey(t *testing.T) {
	cases := map[string]bool{
		"name":     true,
		"_id":      true,
		"a.b.c":    true,
		"a1_2.3":   true,
		"":         false,
		"1abc":     false,
		"has space": false,
		"a-b":      false,
	}
	for in, want := range cases {
		if got := IsUnquotedKey(in); got != want {
			t.Errorf("IsUnquotedKey(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsNumericLike(t *testing.T) {
	cases := map[string]bool{
		"123":      true,
		"-123":     true,
		"1.5":      true,
		"1e10":     true,
		"-1.5E-10": true,
		"abc":      false,
		"1.":       false,
		".5":       false,
		"1e":       false,
	}
	for in, want := range cases {
		if got := IsNumericLike(in); got != want {
			t.Errorf("IsNumericLike(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsLeadingZeroDecimal(t *testing.T) {
	cases := map[string]bool{
		"0123": true,
		"007":  true,
		"0":    false,
		"10":   false,
		"0.5":  false,
	}
	for in, want := range cases {
		if got := IsLeadingZeroDecimal(in); got != want {
			t.Errorf("IsLeadingZeroDecimal(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	cases := []struct {
		s        string
		delim    Delimiter
		wantQuot bool
	}{
		{"", Comma, true},
		{" leading", Comma, true},
		{"trailing ", Comma, true},
		{"true", Comma, true},
		{"false", Comma, true},
		{"null", Comma, true},
		{"123", Comma, true},
		{"-123", Comma, true},
		{"0123", Comma, true},
		{"has:colon", Comma, true},
		{`has"quote`, Comma, true},
		{"has[bracket", Comma, true},
		{"-", Comma, true},
		{"-leading", Comma, true},
		{"has,comma", Comma, true},
		{"has,comma", Pipe, false},
		{"plain", Comma, false},
		{"admin", Comma, false},
	}
	for _, c := range cases {
		if got := NeedsQuote(c.s, c.delim); got != c.wantQuot {
			t.Errorf("NeedsQuote(%q, %v) = %v, want %v", c.s, c.delim, got, c.wantQuot)
		}
	}
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	cases := []string{
		`plain`,
		"line1\nline2",
		"tab\there",
		`back\slash`,
		`quote"inside`,
		"cr\rhere",
	}
	for _, s := range cases {
		escaped := Escape(s)
		inner := escaped[1 : len(escaped)-1]
		got, ok := Unescape(inner)
		if !ok {
			t.Fatalf("Unescape(%q) failed", inner)
		}
		if got != s {
			t.Errorf("round trip %q -> %q -> %q", s, escaped, got)
		}
	}
}

func TestUnescapeInvalidSequence(t *testing.T) {
	if _, ok := Unescape(`bad\xescape`); ok {
		t.Fatalf("expected invalid escape to fail")
	}
	if _, ok := Unescape(`trailing\`); ok {
		t.Fatalf("expected truncated escape to fail")
	}
}
