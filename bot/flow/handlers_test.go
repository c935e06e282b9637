package flow

import "testing"

func TestParseBoundedInt(t *testing.T) {
	cases := []struct {
		input  string
		lo, hi int
		want   int
		ok     bool
	}{
		{"3", 1, 10, 3, true},
		{" 7 ", 1, 10, 7, true},
		{"0", 1, 10, 0, false},
		{"11", 1, 10, 0, false},
		{"-2", 1, 10, 0, false},
		{"abc", 1, 10, 0, false},
		{"3.5", 1, 10, 0, false},
		{"", 1, 10, 0, false},
	}
	for _, tc := range cases {
		got, ok := parseBoundedInt(tc.input, tc.lo, tc.hi)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseBoundedInt(%q) = %d/%v, want %d/%v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseRange(t *testing.T) {
	lo, hi, ok := parseRange("40 120")
	if !ok || lo != 40 || hi != 120 {
		t.Fatalf("parseRange = %v/%v/%v", lo, hi, ok)
	}

	// Reversed input is accepted; bounds are normalized.
	lo, hi, ok = parseRange("120 40")
	if !ok || lo != 40 || hi != 120 {
		t.Fatalf("reversed parseRange = %v/%v/%v", lo, hi, ok)
	}

	lo, hi, ok = parseRange("0,5 5")
	if !ok || lo != 0.5 || hi != 5 {
		t.Fatalf("comma decimal parseRange = %v/%v/%v", lo, hi, ok)
	}

	for _, bad := range []string{"", "40", "40 120 200", "a b", "-1 5"} {
		if _, _, ok := parseRange(bad); ok {
			t.Fatalf("parseRange(%q) accepted invalid input", bad)
		}
	}
}
