package polynomial

import (
	"errors"
	"strings"
	"testing"
)

func TestParseString(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("parser init failed: %v", err)
	}

	tests := []struct {
		input  string
		degree int
		mask   uint16
	}{
		{"x^3 + x + 1", 3, 0x0003},
		{"x^4+x^3+1", 4, 0x0009},
		{"x^8 + x^7 + x^3 + x^2 + x", 8, 0x008E},
		{"x^9 + x^8 + x^3", 9, 0x0108},
		{"X^5 + X^4 + X", 5, 0x0012},
		{"x^16 + x^15 + x^4 + x^2 + x", 16, 0x8016},
	}
	for _, tt := range tests {
		p, err := parser.ParseString(tt.input)
		if err != nil {
			t.Fatalf("ParseString(%q) failed: %v", tt.input, err)
		}
		if p.Degree != tt.degree {
			t.Fatalf("%q: degree = %d, want %d", tt.input, p.Degree, tt.degree)
		}
		if p.Mask != tt.mask {
			t.Fatalf("%q: mask = 0x%04X, want 0x%04X", tt.input, p.Mask, tt.mask)
		}
	}
}

func TestParseReader(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("parser init failed: %v", err)
	}
	p, err := parser.Parse(strings.NewReader("x^6 + x^5 + 1"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Degree != 6 || p.Mask != 0x0021 {
		t.Fatalf("got degree %d mask 0x%04X, want 6, 0x0021", p.Degree, p.Mask)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("parser init failed: %v", err)
	}

	tests := []struct {
		input string
		want  error // nil means any parse error is acceptable
	}{
		{"", nil},
		{"x^4 +", nil},
		{"y^4 + 1", nil},
		{"x^4 + 3", ErrBadConstant},
		{"x^3 + x^3 + 1", ErrTermOrder},
		{"x^2 + x^5 + 1", ErrTermOrder},
		{"x^3 + 1 + x", ErrTermOrder},
		{"x^17 + x + 1", ErrDegreeRange},
		{"1", ErrDegreeRange},
	}
	for _, tt := range tests {
		_, err := parser.ParseString(tt.input)
		if err == nil {
			t.Fatalf("ParseString(%q) succeeded, want error", tt.input)
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Fatalf("ParseString(%q) error = %v, want %v", tt.input, err, tt.want)
		}
	}
}
