package overlap

import "go.uber.org/zap"

// Event describes one examined rectangle.
type Event struct {
	Rect     Rectangle
	Match    Match // longest match in Rect; Length 0 if none
	Accepted bool  // Match is at least the minimum length and was recorded
	Depth    int   // 0 for the rectangle covering both sequences
}

// notify reports e to the configured observer and logger.
func (s *search) notify(e Event) {
	if s.opts.observer != nil {
		s.opts.observer(e)
	}
	if ce := s.opts.logger.Check(zap.DebugLevel, "rectangle examined"); ce != nil {
		ce.Write(
			zap.Int("depth", e.Depth),
			zap.Int("a_lo", e.Rect.ALo),
			zap.Int("a_hi", e.Rect.AHi),
			zap.Int("b_lo", e.Rect.BLo),
			zap.Int("b_hi", e.Rect.BHi),
			zap.Int("match_a", e.Match.AStart),
			zap.Int("match_b", e.Match.BStart),
			zap.Int("match_len", e.Match.Length),
			zap.Bool("accepted", e.Accepted),
		)
	}
}
