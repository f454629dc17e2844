package analysis

import (
	"bytes"
	"encoding/json"
	"testing"

	"jackpotiq/domain/game"
	"jackpotiq/domain/report"
	"jackpotiq/internal/testkit"
)

func TestBuildReportShape(t *testing.T) {
	cfg := game.MegaMillionsConfig()
	h := generatedHistory(t, cfg, testkit.DefaultDrawConfig())

	r := Build(cfg, h)

	if r.Type != game.MegaMillions {
		t.Fatalf("type = %s", r.Type)
	}
	if r.TotalDraws != h.Len() {
		t.Fatalf("totalDraws = %d, want %d", r.TotalDraws, h.Len())
	}
	if len(r.RegularNumbers) != cfg.MaxRegular {
		t.Fatalf("regularNumbers has %d entries, want %d", len(r.RegularNumbers), cfg.MaxRegular)
	}
	if len(r.SpecialBallNumbers) != cfg.MaxSpecial {
		t.Fatalf("specialBallNumbers has %d entries, want %d", len(r.SpecialBallNumbers), cfg.MaxSpecial)
	}
	if len(r.ByPosition) != game.DrawSize {
		t.Fatalf("byPosition has %d entries, want %d", len(r.ByPosition), game.DrawSize)
	}
	for p := 0; p < game.DrawSize; p++ {
		key := report.PositionKey(p)
		lo, hi := cfg.PositionRange(p)
		if len(r.ByPosition[key]) != hi-lo+1 {
			t.Fatalf("%s has %d entries, want %d", key, len(r.ByPosition[key]), hi-lo+1)
		}
	}

	for name, combo := range map[string][]int{
		"optimizedByGeneralFrequencyRepeat":    r.OptimizedByGeneralFrequencyRepeat,
		"optimizedByGeneralFrequencyNoRepeat":  r.OptimizedByGeneralFrequencyNoRepeat,
		"optimizedByPositionFrequencyRepeat":   r.OptimizedByPositionFrequencyRepeat,
		"optimizedByPositionFrequencyNoRepeat": r.OptimizedByPositionFrequencyNoRepeat,
	} {
		if len(combo) != game.DrawSize+1 {
			t.Fatalf("%s has %d entries, want %d", name, len(combo), game.DrawSize+1)
		}
		if s := combo[game.DrawSize]; s < 1 || s > cfg.MaxSpecial {
			t.Fatalf("%s special ball %d out of range", name, s)
		}
	}
	// general combinations are re-sorted and must be strictly ascending
	for _, combo := range [][]int{
		r.OptimizedByGeneralFrequencyRepeat,
		r.OptimizedByGeneralFrequencyNoRepeat,
	} {
		for i := 1; i < game.DrawSize; i++ {
			if combo[i] <= combo[i-1] {
				t.Fatalf("general combination not strictly ascending: %v", combo)
			}
		}
	}
	// position combinations keep slot order; each pick must sit in its
	// slot's valid range
	for p := 0; p < game.DrawSize; p++ {
		lo, hi := cfg.PositionRange(p)
		if n := r.OptimizedByPositionFrequencyRepeat[p]; n < lo || n > hi {
			t.Fatalf("slot %d pick %d outside [%d,%d]", p, n, lo, hi)
		}
	}

	if err := Verify(r); err != nil {
		t.Fatalf("verification failed: %v", err)
	}
}

func TestBuildDeterministic(t *testing.T) {
	cfg := game.PowerballConfig()
	h := generatedHistory(t, cfg, testkit.DefaultDrawConfig())

	first, err := json.Marshal(Build(cfg, h))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(Build(cfg, h))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("two builds over the same history produced different reports")
	}
}

func TestBuildEmptyHistory(t *testing.T) {
	cfg := game.MegaMillionsConfig()
	r := Build(cfg, game.NewHistory(cfg, nil))

	if r.TotalDraws != 0 {
		t.Fatalf("totalDraws = %d", r.TotalDraws)
	}
	defaults := []int{1, 2, 3, 4, 5, 1}
	for _, combo := range [][]int{
		r.OptimizedByGeneralFrequencyRepeat,
		r.OptimizedByGeneralFrequencyNoRepeat,
		r.OptimizedByPositionFrequencyRepeat,
		r.OptimizedByPositionFrequencyNoRepeat,
	} {
		for i := range defaults {
			if combo[i] != defaults[i] {
				t.Fatalf("empty-history combination = %v, want %v", combo, defaults)
			}
		}
	}
	for key, entry := range r.RegularNumbers {
		if entry.Residual != 0 || entry.Significant {
			t.Fatalf("number %s annotated despite zero draws: %+v", key, entry)
		}
	}
	if err := Verify(r); err != nil {
		t.Fatalf("verification failed: %v", err)
	}
}

func TestBuildNoRepeatAvoidsGeneratedHistory(t *testing.T) {
	cfg := game.PowerballConfig()
	gen := testkit.DefaultDrawConfig()
	gen.HotNumbers = []int{5, 12, 23, 34, 45}
	gen.HotSpecial = 7
	h := generatedHistory(t, cfg, gen)

	r := Build(cfg, h)
	var set [game.DrawSize]int
	copy(set[:], r.OptimizedByGeneralFrequencyNoRepeat[:game.DrawSize])
	if h.Seen(set) {
		t.Fatalf("no-repeat combination %v matches a historical draw", set)
	}
}

func TestBuildReportWireFormat(t *testing.T) {
	cfg := game.MegaMillionsConfig()
	h := generatedHistory(t, cfg, testkit.DefaultDrawConfig())

	data, err := json.Marshal(Build(cfg, h))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{
		"type", "totalDraws",
		"optimizedByGeneralFrequencyRepeat", "optimizedByGeneralFrequencyNoRepeat",
		"optimizedByPositionFrequencyRepeat", "optimizedByPositionFrequencyNoRepeat",
		"regularNumbers", "specialBallNumbers", "byPosition",
	} {
		if _, ok := decoded[field]; !ok {
			t.Fatalf("report JSON missing field %q", field)
		}
	}
	var byPosition map[string]json.RawMessage
	if err := json.Unmarshal(decoded["byPosition"], &byPosition); err != nil {
		t.Fatalf("byPosition: %v", err)
	}
	for p := 0; p < game.DrawSize; p++ {
		if _, ok := byPosition[report.PositionKey(p)]; !ok {
			t.Fatalf("byPosition missing %s", report.PositionKey(p))
		}
	}
}
