package redis

import (
	"encoding/binary"
	"math"
	"reflect"
	"testing"
)

func TestQueryTokens(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"simple", "hello world", []string{"hello", "world"}},
		{"collapses whitespace", "  a  b\tc ", []string{"a", "b", "c"}},
		{"escapes specials", `price@launch (v2)`, []string{`price\@launch`, `\(v2\)`}},
		{"escapes dash", "due-date", []string{`due\-date`}},
		{"empty", "   ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := queryTokens(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("queryTokens(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestNormalizeScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{-1, 0},
		{1, 0.5},
		{3, 0.75},
	}
	for _, tt := range tests {
		if got := normalizeScore(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeScore(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}

	// Monotone and bounded: a higher raw score never normalizes lower.
	prev := -1.0
	for _, s := range []float64{0, 0.1, 1, 10, 1000} {
		n := normalizeScore(s)
		if n < prev || n >= 1 {
			t.Errorf("normalizeScore(%f) = %f out of order or range", s, n)
		}
		prev = n
	}
}

func TestVectorToBytes(t *testing.T) {
	v := []float32{1.5, -2.25}
	got := []byte(vectorToBytes(v))

	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	for i, f := range v {
		bits := binary.LittleEndian.Uint32(got[i*4:])
		if math.Float32frombits(bits) != f {
			t.Errorf("element %d = %f, want %f", i, math.Float32frombits(bits), f)
		}
	}
}
