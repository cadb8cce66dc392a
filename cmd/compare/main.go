// Comparison tool for checking overlap highlighting against the equalities
// found by a character-level diff
package main

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	godiff "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dacharyc/overlap"
)

func main() {
	testCases := []struct {
		name   string
		a, b   string
		minLen int
	}{
		{
			name:   "Paraphrased sentence",
			a:      "The quick brown fox jumps over the lazy dog in the park.",
			b:      "In the park, the lazy dog was jumped over by a quick brown fox.",
			minLen: overlap.SentenceMinLen,
		},
		{
			name:   "Reordered clauses",
			a:      "Prices rose sharply last year, and wages stayed flat.",
			b:      "Wages stayed flat, and prices rose sharply last year.",
			minLen: overlap.SentenceMinLen,
		},
		{
			name:   "Repeated character runs",
			a:      strings.Repeat("a", 40) + " end",
			b:      "start " + strings.Repeat("a", 25) + "-" + strings.Repeat("a", 25),
			minLen: overlap.SentenceMinLen,
		},
	}

	// Add a document-sized case
	docA := generateDocument(60, 0)
	docB := generateDocument(60, 7)
	testCases = append(testCases, struct {
		name   string
		a, b   string
		minLen int
	}{
		name:   "Document context (60 sentences, shuffled)",
		a:      docA,
		b:      docB,
		minLen: overlap.DocumentMinLen,
	})

	for _, tc := range testCases {
		fmt.Printf("\n=== %s ===\n", tc.name)
		fmt.Printf("A: %d chars, B: %d chars, min length %d\n",
			utf8.RuneCountInString(tc.a), utf8.RuneCountInString(tc.b), tc.minLen)

		// Test overlap
		start := time.Now()
		ra, rb, err := overlap.Align(tc.a, tc.b, tc.minLen)
		overlapTime := time.Since(start)
		if err != nil {
			fmt.Printf("overlap: %v\n", err)
		}

		// Test go-diff
		dmp := godiff.New()
		start = time.Now()
		goDiffs := dmp.DiffMain(tc.a, tc.b, false)
		goDiffTime := time.Since(start)

		fmt.Printf("\noverlap: %v\n", overlapTime)
		fmt.Printf("  Highlighted in A: %d chars, in B: %d chars\n", covered(ra), covered(rb))
		fmt.Printf("  Strength range A: %d..%d, B: %d..%d\n",
			ra.MinStrength, ra.MaxStrength, rb.MinStrength, rb.MaxStrength)

		eq := equalities(goDiffs, tc.minLen)
		fmt.Printf("\ngo-diff: %v\n", goDiffTime)
		fmt.Printf("  Equalities of at least %d chars: %d covering %d chars\n", tc.minLen, eq.count, eq.chars)

		// Show detailed output for small cases
		if len(ra.Spans) <= 12 {
			fmt.Println("\noverlap spans (A):")
			for _, sp := range ra.Spans {
				fmt.Printf("  %3d %q\n", sp.Strength, sp.Text)
			}
		}
	}
}

// covered counts characters with a non-zero strength.
func covered(r overlap.Result) int {
	n := 0
	for _, sp := range r.Spans {
		if sp.Strength > 0 {
			n += sp.End - sp.Start
		}
	}
	return n
}

type equalityStats struct {
	count, chars int
}

// equalities summarizes the diff's Equal runs that are at least minLen long.
// Unlike the overlap search, a diff keeps matches in order, so reordered
// text shows up as far fewer equalities.
func equalities(diffs []godiff.Diff, minLen int) equalityStats {
	var s equalityStats
	for _, d := range diffs {
		if d.Type != godiff.DiffEqual {
			continue
		}
		if n := utf8.RuneCountInString(d.Text); n >= minLen {
			s.count++
			s.chars += n
		}
	}
	return s
}

func generateDocument(sentences int, seed int) string {
	subjects := []string{"The committee", "Our reviewers", "The annotators", "Each team", "The model"}
	verbs := []string{"approved", "rejected", "revised", "summarized", "compared"}
	objects := []string{"the annual budget", "every paraphrase", "both documents", "the final draft", "the batch"}

	result := make([]string, sentences)
	for i := 0; i < sentences; i++ {
		result[i] = fmt.Sprintf("%s %s %s.",
			subjects[(i*3)%len(subjects)],
			verbs[(i*7)%len(verbs)],
			objects[(i*11)%len(objects)])
	}

	// Rotate and rewrite some sentences based on seed
	if seed > 0 {
		k := seed % sentences
		result = append(result[k:], result[:k]...)
		for i := seed % 5; i < sentences; i += 5 + seed%3 {
			result[i] = fmt.Sprintf("Sentence %d was rewritten entirely.", i)
		}
	}

	return strings.Join(result, " ")
}
