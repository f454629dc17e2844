package analysis

import (
	"sort"

	"jackpotiq/domain/game"
)

// Picks is one recommended combination: five ascending regular numbers
// followed by the special ball.
type Picks [game.DrawSize + 1]int

// defaultPicks is the low-information output for an empty history.
var defaultPicks = Picks{1, 2, 3, 4, 5, 1}

// rankNumbers orders a frequency table by observed count descending, ties
// broken by numeric value ascending. The ordering is total, so every strategy
// built on it is reproducible byte for byte.
func rankNumbers(table map[int]int) []int {
	ranked := make([]int, 0, len(table))
	for n := range table {
		ranked = append(ranked, n)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if table[ranked[i]] != table[ranked[j]] {
			return table[ranked[i]] > table[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}

// topSpecial returns the best-ranked special ball.
func topSpecial(t Tables) int {
	return rankNumbers(t.Special)[0]
}

// OptimizeGeneralRepeat takes the five highest general-frequency numbers and
// the highest-frequency special ball. Prior-draw repeats are allowed.
func OptimizeGeneralRepeat(t Tables, h *game.History) Picks {
	if h.Len() == 0 {
		return defaultPicks
	}
	ranked := rankNumbers(t.General)
	var out Picks
	copy(out[:game.DrawSize], ranked[:game.DrawSize])
	sort.Ints(out[:game.DrawSize])
	out[game.DrawSize] = topSpecial(t)
	return out
}

// OptimizeGeneralNoRepeat is the same ranking with collision avoidance: if
// the ascending five-set matches a historical draw's regular numbers, the
// lowest-ranked member of the current set is swapped for the next unused
// ranked candidate and the check repeats. Iteration is capped at the pool
// size; on exhaustion the best-ranked combination is returned even though it
// repeats a prior draw.
func OptimizeGeneralNoRepeat(t Tables, h *game.History) Picks {
	if h.Len() == 0 {
		return defaultPicks
	}
	ranked := rankNumbers(t.General)
	special := topSpecial(t)

	// current holds candidate indexes into ranked, best rank first
	current := []int{0, 1, 2, 3, 4}
	next := game.DrawSize

	for iter := 0; iter <= len(ranked); iter++ {
		set := combinationOf(ranked, current)
		if !h.Seen(set) {
			var out Picks
			copy(out[:game.DrawSize], set[:])
			out[game.DrawSize] = special
			return out
		}
		if next >= len(ranked) {
			break
		}
		// swap out the worst-ranked member
		worst := 0
		for i := 1; i < len(current); i++ {
			if current[i] > current[worst] {
				worst = i
			}
		}
		current[worst] = next
		next++
	}
	return OptimizeGeneralRepeat(t, h)
}

// combinationOf resolves candidate indexes to an ascending number set.
func combinationOf(ranked []int, idxs []int) [game.DrawSize]int {
	var set [game.DrawSize]int
	for i, idx := range idxs {
		set[i] = ranked[idx]
	}
	sort.Ints(set[:])
	return set
}

// OptimizePositionRepeat picks the most frequent number at each ascending
// slot independently. Slot order is preserved rather than re-sorted: the
// slots' valid ranges are shifted copies of each other, so the picks come
// out ascending.
func OptimizePositionRepeat(t Tables, h *game.History) Picks {
	if h.Len() == 0 {
		return defaultPicks
	}
	var out Picks
	for p := 0; p < game.DrawSize; p++ {
		out[p] = rankNumbers(t.ByPosition[p])[0]
	}
	out[game.DrawSize] = topSpecial(t)
	return out
}

// OptimizePositionNoRepeat applies collision avoidance to the per-slot picks.
// On a collision the slot with the weakest margin over its runner-up advances
// to its next ranked candidate; candidates that would break strict ascending
// order or duplicate another slot's pick are skipped. Capped at the pool
// size, falling back to the repeat picks on exhaustion.
func OptimizePositionNoRepeat(t Tables, h *game.History) Picks {
	if h.Len() == 0 {
		return defaultPicks
	}

	var rankings [game.DrawSize][]int
	for p := 0; p < game.DrawSize; p++ {
		rankings[p] = rankNumbers(t.ByPosition[p])
	}
	special := topSpecial(t)

	// cursor[p] is the index of slot p's current candidate in its ranking
	var cursor [game.DrawSize]int

	cfg := h.Config()
	for iter := 0; iter <= cfg.MaxRegular; iter++ {
		var tuple [game.DrawSize]int
		for p := 0; p < game.DrawSize; p++ {
			tuple[p] = rankings[p][cursor[p]]
		}

		if tupleAscending(tuple) && !h.Seen(tuple) {
			var out Picks
			copy(out[:game.DrawSize], tuple[:])
			out[game.DrawSize] = special
			return out
		}

		// advance the weakest slot: smallest count margin between its
		// current candidate and the next one in its ranking
		slot := -1
		margin := 0
		for p := 0; p < game.DrawSize; p++ {
			if cursor[p]+1 >= len(rankings[p]) {
				continue
			}
			cur := t.ByPosition[p][rankings[p][cursor[p]]]
			next := t.ByPosition[p][rankings[p][cursor[p]+1]]
			if slot == -1 || cur-next < margin {
				slot = p
				margin = cur - next
			}
		}
		if slot == -1 {
			break
		}
		cursor[slot]++
	}
	return OptimizePositionRepeat(t, h)
}

// tupleAscending reports whether the five slot picks form a strictly
// ascending (and therefore duplicate-free) combination.
func tupleAscending(tuple [game.DrawSize]int) bool {
	for i := 1; i < len(tuple); i++ {
		if tuple[i] <= tuple[i-1] {
			return false
		}
	}
	return true
}
