package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/dacharyc/overlap"
)

// alignment is everything spanalign reports for one comparison.
type alignment struct {
	MinLen    int           `json:"min_len"`
	A         sideOutput    `json:"a"`
	B         sideOutput    `json:"b"`
	Matches   []matchOutput `json:"matches"`
	Truncated bool          `json:"truncated"`
}

type sideOutput struct {
	Spans       []spanOutput `json:"spans"`
	MinStrength int          `json:"min_strength"`
	MaxStrength int          `json:"max_strength"`
	Highlight   [2]int       `json:"highlight_range"`
}

type matchOutput struct {
	AStart int `json:"start_a"`
	BStart int `json:"start_b"`
	Length int `json:"length"`
}

func newMatchOutputs(ms []overlap.Match) []matchOutput {
	out := make([]matchOutput, len(ms))
	for i, m := range ms {
		out[i] = matchOutput{AStart: m.AStart, BStart: m.BStart, Length: m.Length}
	}
	return out
}

type spanOutput struct {
	Text     string `json:"text"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Strength int    `json:"strength"`
}

func newSideOutput(r overlap.Result, ceiling int) sideOutput {
	out := sideOutput{
		Spans:       make([]spanOutput, len(r.Spans)),
		MinStrength: r.MinStrength,
		MaxStrength: r.MaxStrength,
	}
	for i, sp := range r.Spans {
		out.Spans[i] = spanOutput{Text: sp.Text, Start: sp.Start, End: sp.End, Strength: sp.Strength}
	}
	out.Highlight[0], out.Highlight[1] = r.HighlightRange(ceiling)
	return out
}

func writeJSON(w io.Writer, al alignment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(al)
}

// writeText prints each side as a table of spans. Span text is quoted and
// cut to width terminal columns so wide characters keep the offsets aligned.
func writeText(w io.Writer, al alignment, width int) error {
	for _, side := range []struct {
		name string
		out  sideOutput
	}{{"A", al.A}, {"B", al.B}} {
		if _, err := fmt.Fprintf(w, "%s  strength %d..%d  highlight [%d, %d]\n",
			side.name, side.out.MinStrength, side.out.MaxStrength,
			side.out.Highlight[0], side.out.Highlight[1]); err != nil {
			return err
		}
		for _, sp := range side.out.Spans {
			text := runewidth.Truncate(strconv.Quote(sp.Text), width, "…")
			text = runewidth.FillRight(text, width)
			if _, err := fmt.Fprintf(w, "%6d  %s  [%d,%d)\n", sp.Strength, text, sp.Start, sp.End); err != nil {
				return err
			}
		}
	}
	if al.Truncated {
		if _, err := fmt.Fprintln(w, "(partial result: search budget exceeded)"); err != nil {
			return err
		}
	}
	return nil
}
