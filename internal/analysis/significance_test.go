package analysis

import (
	"math"
	"testing"

	"jackpotiq/domain/game"
	"jackpotiq/domain/report"
	"jackpotiq/internal/testkit"
)

func approx(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %v, want %v (tol %v)", what, got, want, tol)
	}
}

func TestAnnotateGeneralBinomialModel(t *testing.T) {
	cfg := game.MegaMillionsConfig()
	n := 1000
	table := map[int]int{7: 87}

	entries := annotate(table, n, generalModel(cfg, n))
	entry := entries[report.NumberKey(7)]

	approx(t, entry.Expected, 71.4286, 1e-3, "expected")
	approx(t, entry.Residual, 1.9120, 1e-3, "residual")
	if entry.Significant {
		t.Fatal("residual below 2.0 flagged significant")
	}
	// general percent is taken against 5n slots
	approx(t, entry.Percent, float64(87)/float64(5*n)*100, 1e-9, "percent")
}

func TestAnnotateSpecialSignificanceBoundary(t *testing.T) {
	cfg := game.MegaMillionsConfig() // special pool 25
	n := 1000

	entries := annotate(map[int]int{9: 52}, n, specialModel(cfg, n))
	entry := entries[report.NumberKey(9)]
	approx(t, entry.Expected, 40.0, 1e-9, "expected")
	approx(t, entry.Residual, 1.9365, 1e-3, "residual")
	if entry.Significant {
		t.Fatal("observed=52 should not be significant")
	}

	entries = annotate(map[int]int{9: 53}, n, specialModel(cfg, n))
	entry = entries[report.NumberKey(9)]
	approx(t, entry.Residual, 2.0979, 1e-3, "residual")
	if !entry.Significant {
		t.Fatal("observed=53 should be significant")
	}
}

func TestAnnotatePositionalModel(t *testing.T) {
	cfg := game.PowerballConfig() // 69 regulars, 65 per slot
	n := 650
	entries := annotate(map[int]int{12: 10}, n, positionalModel(cfg, n))
	entry := entries[report.NumberKey(12)]

	approx(t, entry.Expected, 10.0, 1e-9, "expected")
	approx(t, entry.Residual, 0.0, 1e-9, "residual")
	approx(t, entry.Percent, float64(10)/float64(n)*100, 1e-9, "percent")
}

func TestAnnotateZeroDraws(t *testing.T) {
	cfg := game.MegaMillionsConfig()
	entries := annotate(map[int]int{1: 0, 2: 0}, 0, generalModel(cfg, 0))

	for key, entry := range entries {
		if entry.Residual != 0 {
			t.Fatalf("number %s: residual = %v, want 0", key, entry.Residual)
		}
		if entry.Significant {
			t.Fatalf("number %s flagged significant with zero draws", key)
		}
		if entry.Expected != 0 || entry.Percent != 0 {
			t.Fatalf("number %s: nonzero expected/percent with zero draws", key)
		}
	}
}

func TestAnnotatePercentExact(t *testing.T) {
	cfg := game.PowerballConfig()
	gen := testkit.DefaultDrawConfig()
	h := generatedHistory(t, cfg, gen)
	tables := Frequencies(cfg, h)
	n := h.Len()

	entries := annotate(tables.General, n, generalModel(cfg, n))
	for key, entry := range entries {
		want := float64(entry.Observed) / float64(n*game.DrawSize) * 100
		if math.Abs(entry.Percent-want) > 1e-9 {
			t.Fatalf("number %s: percent = %v, want %v", key, entry.Percent, want)
		}
	}
}
