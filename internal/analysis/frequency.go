// Package analysis implements the statistical engine: frequency tabulation,
// exact-binomial significance testing, and the optimized-combination
// strategies. The engine is a pure synchronous computation over an in-memory
// history; it performs no I/O.
package analysis

import "jackpotiq/domain/game"

// Tables holds the three observed-count families for one game. Every table is
// zero-filled over its full valid range, so a number that never appeared still
// has an entry.
type Tables struct {
	// General counts each regular number across all five slots.
	General map[int]int
	// ByPosition counts each regular number at a specific ascending slot.
	// Slot p is keyed over [p+1, maxRegular-4+p] only.
	ByPosition [game.DrawSize]map[int]int
	// Special counts the special ball.
	Special map[int]int
}

// Frequencies tabulates observed counts for a history. Counting is
// commutative, so draw order never affects the result; an empty history
// yields fully zero-filled tables.
func Frequencies(cfg game.Config, h *game.History) Tables {
	t := Tables{
		General: make(map[int]int, cfg.MaxRegular),
		Special: make(map[int]int, cfg.MaxSpecial),
	}
	for n := 1; n <= cfg.MaxRegular; n++ {
		t.General[n] = 0
	}
	for n := 1; n <= cfg.MaxSpecial; n++ {
		t.Special[n] = 0
	}
	for p := 0; p < game.DrawSize; p++ {
		lo, hi := cfg.PositionRange(p)
		t.ByPosition[p] = make(map[int]int, hi-lo+1)
		for n := lo; n <= hi; n++ {
			t.ByPosition[p][n] = 0
		}
	}

	for _, d := range h.Draws() {
		for p, n := range d.Numbers {
			t.General[n]++
			t.ByPosition[p][n]++
		}
		t.Special[d.SpecialBall]++
	}
	return t
}
