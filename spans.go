package overlap

// DefaultHighlightCeiling is the practical upper bound for a highlight
// intensity control.
const DefaultHighlightCeiling = 50

// Span is a maximal run of characters of one side sharing a strength.
type Span struct {
	Text     string
	Start    int // start index in the side, in code points (inclusive)
	End      int // end index in the side, in code points (exclusive)
	Strength int // length of the longest match covering the run; 0 if none
}

// Result is the partition of one side of a comparison into spans.
type Result struct {
	Spans       []Span
	MinStrength int
	MaxStrength int
}

// Text returns the concatenated text of all spans, which is the original
// side.
func (r Result) Text() string {
	n := 0
	for _, sp := range r.Spans {
		n += len(sp.Text)
	}
	buf := make([]byte, 0, n)
	for _, sp := range r.Spans {
		buf = append(buf, sp.Text...)
	}
	return string(buf)
}

// HighlightRange returns bounds for a highlight intensity control:
// [MinStrength, MaxStrength+1], with the upper bound capped at ceiling.
// A ceiling of 0 or less leaves the upper bound uncapped.
func (r Result) HighlightRange(ceiling int) (lo, hi int) {
	lo, hi = r.MinStrength, r.MaxStrength+1
	if ceiling > 0 && hi > ceiling {
		hi = ceiling
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// BuildSpans partitions s into spans.
//
// The strength of each character is the length of the longest projection
// covering it, not a sum or count of them. Projections are clipped to the
// bounds of s; those with a non-positive length are ignored.
func BuildSpans(s []rune, projections []Projection) Result {
	if len(s) == 0 {
		return Result{}
	}

	strength := make([]int, len(s))
	for _, p := range projections {
		if p.Length <= 0 {
			continue
		}
		lo, hi := max(p.Start, 0), min(p.Start+p.Length, len(s))
		for i := lo; i < hi; i++ {
			if p.Length > strength[i] {
				strength[i] = p.Length
			}
		}
	}

	res := Result{MinStrength: strength[0], MaxStrength: strength[0]}
	start := 0
	for i := 1; i <= len(s); i++ {
		if i < len(s) {
			res.MinStrength = min(res.MinStrength, strength[i])
			res.MaxStrength = max(res.MaxStrength, strength[i])
			if strength[i] == strength[start] {
				continue
			}
		}
		res.Spans = append(res.Spans, Span{
			Text:     string(s[start:i]),
			Start:    start,
			End:      i,
			Strength: strength[start],
		})
		start = i
	}

	return res
}
