package overlap

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildSpans(t *testing.T) {
	tests := []struct {
		name        string
		s           string
		projections []Projection
		want        Result
	}{
		{
			name: "empty",
			s:    "",
			want: Result{},
		},
		{
			name: "no projections",
			s:    "aaa",
			want: Result{Spans: []Span{{Text: "aaa", Start: 0, End: 3, Strength: 0}}},
		},
		{
			name:        "one block in the middle",
			s:           "abcXYZdef",
			projections: []Projection{{Start: 3, Length: 3}},
			want: Result{
				Spans: []Span{
					{Text: "abc", Start: 0, End: 3, Strength: 0},
					{Text: "XYZ", Start: 3, End: 6, Strength: 3},
					{Text: "def", Start: 6, End: 9, Strength: 0},
				},
				MinStrength: 0,
				MaxStrength: 3,
			},
		},
		{
			name:        "whole text covered",
			s:           "hello world",
			projections: []Projection{{Start: 0, Length: 11}},
			want: Result{
				Spans:       []Span{{Text: "hello world", Start: 0, End: 11, Strength: 11}},
				MinStrength: 11,
				MaxStrength: 11,
			},
		},
		{
			name: "longest covering projection wins",
			s:    "abcdefgh",
			projections: []Projection{
				{Start: 0, Length: 4},
				{Start: 2, Length: 5},
				{Start: 3, Length: 2},
			},
			want: Result{
				Spans: []Span{
					{Text: "ab", Start: 0, End: 2, Strength: 4},
					{Text: "cdefg", Start: 2, End: 7, Strength: 5},
					{Text: "h", Start: 7, End: 8, Strength: 0},
				},
				MinStrength: 0,
				MaxStrength: 5,
			},
		},
		{
			name: "adjacent projections of equal length merge",
			s:    "XYXYz",
			projections: []Projection{
				{Start: 0, Length: 2},
				{Start: 2, Length: 2},
			},
			want: Result{
				Spans: []Span{
					{Text: "XYXY", Start: 0, End: 4, Strength: 2},
					{Text: "z", Start: 4, End: 5, Strength: 0},
				},
				MinStrength: 0,
				MaxStrength: 2,
			},
		},
		{
			name: "out of range projections are clipped",
			s:    "abcd",
			projections: []Projection{
				{Start: -2, Length: 3},
				{Start: 3, Length: 9},
				{Start: 1, Length: 0},
				{Start: 2, Length: -4},
			},
			want: Result{
				Spans: []Span{
					{Text: "a", Start: 0, End: 1, Strength: 3},
					{Text: "bc", Start: 1, End: 3, Strength: 0},
					{Text: "d", Start: 3, End: 4, Strength: 9},
				},
				MinStrength: 0,
				MaxStrength: 9,
			},
		},
		{
			name:        "multibyte characters stay whole",
			s:           "über straße",
			projections: []Projection{{Start: 5, Length: 6}},
			want: Result{
				Spans: []Span{
					{Text: "über ", Start: 0, End: 5, Strength: 0},
					{Text: "straße", Start: 5, End: 11, Strength: 6},
				},
				MinStrength: 0,
				MaxStrength: 6,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSpans([]rune(tt.s), tt.projections)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildSpans() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildSpans_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	for iter := 0; iter < 1000; iter++ {
		s := randomRunes(rng, rng.Intn(40), "ab€ 😀")
		var projections []Projection
		for n := rng.Intn(6); n > 0; n-- {
			projections = append(projections, Projection{
				Start:  rng.Intn(len(s) + 1),
				Length: 1 + rng.Intn(8),
			})
		}

		got := BuildSpans(s, projections)

		// Concatenated spans reproduce the input.
		if text := got.Text(); text != string(s) {
			t.Fatalf("spans join to %q, want %q", text, string(s))
		}

		var b strings.Builder
		pos := 0
		for i, sp := range got.Spans {
			b.WriteString(sp.Text)
			if sp.Start != pos || sp.End <= sp.Start || string(s[sp.Start:sp.End]) != sp.Text {
				t.Fatalf("span %d = %+v does not line up at %d in %q", i, sp, pos, string(s))
			}
			if i > 0 && got.Spans[i-1].Strength == sp.Strength {
				t.Fatalf("spans %d and %d share strength %d", i-1, i, sp.Strength)
			}
			pos = sp.End
		}
		if b.String() != string(s) || pos != len(s) {
			t.Fatalf("spans cover %d of %d characters", pos, len(s))
		}

		// Each character gets the longest projection covering it.
		want := make([]int, len(s))
		for i := range s {
			for _, p := range projections {
				if i >= p.Start && i < p.Start+p.Length && p.Length > want[i] {
					want[i] = p.Length
				}
			}
		}
		lo, hi := 0, 0
		for i, w := range want {
			if i == 0 || w < lo {
				lo = w
			}
			if i == 0 || w > hi {
				hi = w
			}
		}
		for _, sp := range got.Spans {
			for i := sp.Start; i < sp.End; i++ {
				if want[i] != sp.Strength {
					t.Fatalf("strength at %d = %d, want %d (projections %v)", i, sp.Strength, want[i], projections)
				}
			}
		}
		if got.MinStrength != lo || got.MaxStrength != hi {
			t.Fatalf("bounds = [%d, %d], want [%d, %d]", got.MinStrength, got.MaxStrength, lo, hi)
		}
	}
}

func TestResult_HighlightRange(t *testing.T) {
	tests := []struct {
		name    string
		r       Result
		ceiling int
		lo, hi  int
	}{
		{"empty", Result{}, DefaultHighlightCeiling, 0, 1},
		{"partly covered", Result{MinStrength: 0, MaxStrength: 7}, DefaultHighlightCeiling, 0, 8},
		{"capped", Result{MinStrength: 0, MaxStrength: 120}, DefaultHighlightCeiling, 0, 50},
		{"uncapped", Result{MinStrength: 0, MaxStrength: 120}, 0, 0, 121},
		{"fully covered above ceiling", Result{MinStrength: 80, MaxStrength: 90}, 50, 80, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.r.HighlightRange(tt.ceiling)
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("HighlightRange(%d) = (%d, %d), want (%d, %d)", tt.ceiling, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}
