package analysis

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"jackpotiq/domain/game"
	"jackpotiq/domain/report"
)

// Build runs the full pipeline for one game: tabulate frequencies, annotate
// every table under the binomial null model, derive the four optimized
// combinations, and assemble the report. It is a pure function of the
// history; calling it twice yields identical reports.
func Build(cfg game.Config, h *game.History) *report.Stats {
	tables := Frequencies(cfg, h)
	n := h.Len()

	byPosition := make(map[string]map[string]report.SignificanceEntry, game.DrawSize)
	for p := 0; p < game.DrawSize; p++ {
		byPosition[report.PositionKey(p)] = annotate(tables.ByPosition[p], n, positionalModel(cfg, n))
	}

	return &report.Stats{
		Type:       cfg.Game,
		TotalDraws: n,

		OptimizedByGeneralFrequencyRepeat:    OptimizeGeneralRepeat(tables, h).slice(),
		OptimizedByGeneralFrequencyNoRepeat:  OptimizeGeneralNoRepeat(tables, h).slice(),
		OptimizedByPositionFrequencyRepeat:   OptimizePositionRepeat(tables, h).slice(),
		OptimizedByPositionFrequencyNoRepeat: OptimizePositionNoRepeat(tables, h).slice(),

		RegularNumbers:     annotate(tables.General, n, generalModel(cfg, n)),
		SpecialBallNumbers: annotate(tables.Special, n, specialModel(cfg, n)),
		ByPosition:         byPosition,

		Summary: report.Summary{
			RegularNumbers:     summarize(tables.General),
			SpecialBallNumbers: summarize(tables.Special),
		},
	}
}

func (p Picks) slice() []int {
	out := make([]int, len(p))
	copy(out, p[:])
	return out
}

// summarize condenses a table's observed counts.
func summarize(table map[int]int) report.TableSummary {
	counts := make([]float64, 0, len(table))
	for _, c := range table {
		counts = append(counts, float64(c))
	}
	min, _ := stats.Min(counts)
	max, _ := stats.Max(counts)
	mean, _ := stats.Mean(counts)
	median, _ := stats.Median(counts)
	stdDev, _ := stats.StandardDeviation(counts)
	return report.TableSummary{Min: min, Max: max, Mean: mean, Median: median, StdDev: stdDev}
}

// Verify cross-checks a report's frequency sums: the general table must sum
// to 5x totalDraws, and each positional table and the special table to
// totalDraws. A report for an empty history trivially passes.
func Verify(r *report.Stats) error {
	if r.TotalDraws == 0 {
		return nil
	}
	if got := sumObserved(r.RegularNumbers); got != r.TotalDraws*game.DrawSize {
		return fmt.Errorf("general frequency sum %d, want %d", got, r.TotalDraws*game.DrawSize)
	}
	for p := 0; p < game.DrawSize; p++ {
		key := report.PositionKey(p)
		if got := sumObserved(r.ByPosition[key]); got != r.TotalDraws {
			return fmt.Errorf("%s frequency sum %d, want %d", key, got, r.TotalDraws)
		}
	}
	if got := sumObserved(r.SpecialBallNumbers); got != r.TotalDraws {
		return fmt.Errorf("special ball frequency sum %d, want %d", got, r.TotalDraws)
	}
	return nil
}

func sumObserved(entries map[string]report.SignificanceEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Observed
	}
	return total
}
