package overlap

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// pending is a rectangle waiting on the work stack.
type pending struct {
	rect  Rectangle
	depth int
}

// search holds state for one FindMatches call.
type search struct {
	a, b    []rune
	minLen  int
	opts    *options
	row     []int // scratch row shared by every longestMatch call
	stack   []pending
	matches []Match

	rectangles int // rectangles examined
	cells      int // character pairs compared
}

func newSearch(a, b []rune, minLen int, o *options) *search {
	return &search{
		a:      a,
		b:      b,
		minLen: minLen,
		opts:   o,
		row:    make([]int, len(b)+1),
	}
}

// FindMatches returns every exact common substring of a and b of at least
// minLen code points discovered by the divide-and-conquer search.
//
// The search takes the longest match of a rectangle, records it, and then
// searches each of the four pairings of the ranges before and after it in a
// with those before and after it in b. Because a range of a is searched
// against two disjoint ranges of b, matches may overlap on one side.
//
// Matches are sorted by length, then by start in a, then by start in b.
// If a budget runs out, the matches found so far are returned together with
// an error wrapping ErrResourceExceeded. A cell budget smaller than
// len(a)*len(b) stops the search before the first rectangle, leaving no
// matches.
func FindMatches(a, b []rune, minLen int, opts ...Option) ([]Match, error) {
	return FindMatchesContext(context.Background(), a, b, minLen, opts...)
}

// FindMatchesContext is like FindMatches but stops early, returning the
// matches found so far, when ctx is done.
func FindMatchesContext(ctx context.Context, a, b []rune, minLen int, opts ...Option) ([]Match, error) {
	if minLen < 1 {
		return nil, fmt.Errorf("%w: minimum match length %d is less than 1", ErrInvalidArgument, minLen)
	}
	if len(a) < minLen || len(b) < minLen {
		return nil, nil
	}

	s := newSearch(a, b, minLen, newOptions(opts))
	err := s.run(ctx)
	s.summarize(err)
	return s.sorted(), err
}

// run drains the work stack, starting from the rectangle covering both
// sequences.
func (s *search) run(ctx context.Context) error {
	s.stack = append(s.stack, pending{rect: Rectangle{ALo: 0, AHi: len(s.a), BLo: 0, BHi: len(s.b)}})

	for len(s.stack) > 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("overlap: search interrupted: %w", err)
		}
		if err := s.checkBudget(s.stack[len(s.stack)-1].rect); err != nil {
			return err
		}

		p := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.rectangles++
		s.cells += p.rect.Cells()

		m := longestMatch(s.a, s.b, p.rect, s.row)
		accepted := m.Length >= s.minLen
		s.notify(Event{Rect: p.rect, Match: m, Accepted: accepted, Depth: p.depth})

		// No sub-rectangle can hold a longer match than its parent, so a
		// short match here rules out the whole rectangle.
		if !accepted {
			continue
		}
		s.matches = append(s.matches, m)

		if err := s.split(p, m); err != nil {
			return err
		}
	}

	return nil
}

// split pushes the pairings of the ranges before and after m.
func (s *search) split(p pending, m Match) error {
	r := p.rect
	before := [2][2]int{{r.ALo, m.AStart}, {r.BLo, m.BStart}}
	after := [2][2]int{{m.AEnd(), r.AHi}, {m.BEnd(), r.BHi}}

	for _, ar := range [][2]int{before[0], after[0]} {
		if ar[1]-ar[0] < s.minLen {
			continue
		}
		for _, br := range [][2]int{before[1], after[1]} {
			if br[1]-br[0] < s.minLen {
				continue
			}
			if s.opts.maxPending > 0 && len(s.stack) >= s.opts.maxPending {
				return fmt.Errorf("%w: more than %d pending rectangles", ErrResourceExceeded, s.opts.maxPending)
			}
			s.stack = append(s.stack, pending{
				rect:  Rectangle{ALo: ar[0], AHi: ar[1], BLo: br[0], BHi: br[1]},
				depth: p.depth + 1,
			})
		}
	}

	return nil
}

// checkBudget reports whether examining r would exceed a configured limit.
func (s *search) checkBudget(r Rectangle) error {
	o := s.opts
	if o.maxRectangles > 0 && s.rectangles >= o.maxRectangles {
		return fmt.Errorf("%w: examined %d rectangles", ErrResourceExceeded, s.rectangles)
	}
	if o.maxCells > 0 && s.cells+r.Cells() > o.maxCells {
		return fmt.Errorf("%w: comparing %d more cells would pass the limit of %d (%d used)",
			ErrResourceExceeded, r.Cells(), o.maxCells, s.cells)
	}
	return nil
}

// sorted returns the discovered matches in presentation order.
func (s *search) sorted() []Match {
	out := s.matches
	sort.Slice(out, func(i, j int) bool {
		if out[i].Length != out[j].Length {
			return out[i].Length < out[j].Length
		}
		if out[i].AStart != out[j].AStart {
			return out[i].AStart < out[j].AStart
		}
		return out[i].BStart < out[j].BStart
	})
	return out
}

func (s *search) summarize(err error) {
	s.opts.logger.Info("match search finished",
		zap.Int("len_a", len(s.a)),
		zap.Int("len_b", len(s.b)),
		zap.Int("min_len", s.minLen),
		zap.Int("matches", len(s.matches)),
		zap.Int("rectangles", s.rectangles),
		zap.Int("cells", s.cells),
		zap.Bool("truncated", err != nil),
		zap.Error(err))
}
