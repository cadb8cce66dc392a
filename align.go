package overlap

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Align finds the common substrings of a and b that are at least minLen code
// points long and partitions each text into spans.
//
// If the search budget runs out, Align still returns spans built from the
// matches found so far, together with an error wrapping ErrResourceExceeded.
// Any other error means no work was done.
func Align(a, b string, minLen int, opts ...Option) (Result, Result, error) {
	return AlignContext(context.Background(), a, b, minLen, opts...)
}

// AlignContext is like Align but stops the search early when ctx is done.
func AlignContext(ctx context.Context, a, b string, minLen int, opts ...Option) (Result, Result, error) {
	if !utf8.ValidString(a) {
		return Result{}, Result{}, fmt.Errorf("%w: text A is not valid UTF-8", ErrInvalidArgument)
	}
	if !utf8.ValidString(b) {
		return Result{}, Result{}, fmt.Errorf("%w: text B is not valid UTF-8", ErrInvalidArgument)
	}
	return alignRunes(ctx, []rune(a), []rune(b), minLen, opts)
}

// AlignRunes is like Align for texts that are already decoded.
func AlignRunes(a, b []rune, minLen int, opts ...Option) (Result, Result, error) {
	return alignRunes(context.Background(), a, b, minLen, opts)
}

func alignRunes(ctx context.Context, a, b []rune, minLen int, opts []Option) (Result, Result, error) {
	matches, err := FindMatchesContext(ctx, a, b, minLen, opts...)
	if errors.Is(err, ErrInvalidArgument) {
		return Result{}, Result{}, err
	}
	return BuildSpans(a, ProjectA(matches)), BuildSpans(b, ProjectB(matches)), err
}

// ProjectA projects matches onto sequence A.
func ProjectA(matches []Match) []Projection {
	out := make([]Projection, len(matches))
	for i, m := range matches {
		out[i] = m.ProjectA()
	}
	return out
}

// ProjectB projects matches onto sequence B.
func ProjectB(matches []Match) []Projection {
	out := make([]Projection, len(matches))
	for i, m := range matches {
		out[i] = m.ProjectB()
	}
	return out
}
