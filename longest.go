package overlap

// longestMatch returns the longest common substring of a[r.ALo:r.AHi] and
// b[r.BLo:r.BHi].
//
// Of all maximal blocks it returns the one that starts earliest in a, and of
// those the one that starts earliest in b. Every character takes part in
// matching; there is no junk or popularity filtering.
//
// If nothing matches, the returned match has Length 0 and starts at
// (r.ALo, r.BLo).
//
// row is scratch space of at least r.BHi-r.BLo+1 ints; it is overwritten.
func longestMatch(a, b []rune, r Rectangle, row []int) Match {
	best := Match{AStart: r.ALo, BStart: r.BLo}
	width := r.BHi - r.BLo
	if r.AHi <= r.ALo || width <= 0 {
		return best
	}

	// row[k+1] holds the length of the common suffix of a[..i] and
	// b[..r.BLo+k]. Walking k downward lets one row serve as both the
	// previous and the current DP row.
	row = row[:width+1]
	for k := range row {
		row[k] = 0
	}

	for i := r.ALo; i < r.AHi; i++ {
		ai := a[i]
		for k := width - 1; k >= 0; k-- {
			if ai != b[r.BLo+k] {
				row[k+1] = 0
				continue
			}
			n := row[k] + 1
			row[k+1] = n
			if n > best.Length {
				best = Match{AStart: i - n + 1, BStart: r.BLo + k - n + 1, Length: n}
			} else if n == best.Length && i-n+1 == best.AStart && r.BLo+k-n+1 < best.BStart {
				best.BStart = r.BLo + k - n + 1
			}
		}
	}

	return best
}
