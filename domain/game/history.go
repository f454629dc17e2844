package game

import "sort"

// History is the ordered, deduplicated collection of validated draws for one
// game. It is the immutable input to the analysis engine: built once per run,
// read-only afterwards.
type History struct {
	cfg    Config
	draws  []Draw
	keys   map[string]struct{}
	combos map[[DrawSize]int]struct{}

	// Dropped counts draws rejected at the ingestion boundary
	// (malformed or duplicate).
	Dropped int
}

// NewHistory builds a history from raw draws. Malformed draws and duplicates
// (same date, numbers, and special ball) are quarantined rather than raising
// an error; the survivors are sorted newest first.
func NewHistory(cfg Config, draws []Draw) *History {
	h := &History{
		cfg:    cfg,
		draws:  make([]Draw, 0, len(draws)),
		keys:   make(map[string]struct{}, len(draws)),
		combos: make(map[[DrawSize]int]struct{}, len(draws)),
	}
	for _, d := range draws {
		if err := d.Validate(cfg); err != nil {
			h.Dropped++
			continue
		}
		key := d.Key()
		if _, dup := h.keys[key]; dup {
			h.Dropped++
			continue
		}
		h.keys[key] = struct{}{}
		h.combos[d.NumberSet()] = struct{}{}
		h.draws = append(h.draws, d)
	}
	// ISO dates sort lexicographically
	sort.SliceStable(h.draws, func(i, j int) bool {
		return h.draws[i].Date > h.draws[j].Date
	})
	return h
}

// Config returns the game matrix this history was built against.
func (h *History) Config() Config { return h.cfg }

// Len returns the number of valid draws.
func (h *History) Len() int { return len(h.draws) }

// Draws returns the draws newest first. Callers must not mutate the result.
func (h *History) Draws() []Draw { return h.draws }

// Seen reports whether the given ascending set of regular numbers exactly
// matches a historical draw. The special ball is ignored.
func (h *History) Seen(numbers [DrawSize]int) bool {
	_, ok := h.combos[numbers]
	return ok
}

// LatestDate returns the date of the most recent draw, or "" when empty.
func (h *History) LatestDate() string {
	if len(h.draws) == 0 {
		return ""
	}
	return h.draws[0].Date
}

// MergeDraws appends fetched draws whose dates are not already present,
// keeping the newest-first order of the stored files. It reports the merged
// slice and how many draws were new. Date-level deduplication mirrors the
// persisted file semantics; identity-level deduplication happens again in
// NewHistory.
func MergeDraws(existing, fetched []Draw) ([]Draw, int) {
	seen := make(map[string]struct{}, len(existing))
	for _, d := range existing {
		seen[d.Date] = struct{}{}
	}
	merged := make([]Draw, len(existing), len(existing)+len(fetched))
	copy(merged, existing)
	added := 0
	for _, d := range fetched {
		if _, ok := seen[d.Date]; ok {
			continue
		}
		seen[d.Date] = struct{}{}
		merged = append(merged, d)
		added++
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date > merged[j].Date
	})
	return merged, added
}
