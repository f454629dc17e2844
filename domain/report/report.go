// Package report defines the statistics report produced for each game.
// The JSON shape is a wire contract shared with downstream consumers;
// field names and key formats must stay stable.
package report

import (
	"fmt"

	"jackpotiq/domain/game"
)

// SignificanceThreshold is the fixed two-sided z cutoff (~95% confidence).
const SignificanceThreshold = 2.0

// SignificanceEntry annotates one number in one frequency table.
type SignificanceEntry struct {
	Observed    int     `json:"observed"`
	Expected    float64 `json:"expected"`
	Residual    float64 `json:"residual"`
	Significant bool    `json:"significant"`
	Percent     float64 `json:"percent"`
}

// TableSummary condenses one annotated table's observed counts.
type TableSummary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
}

// Summary groups the per-family observed-count summaries.
type Summary struct {
	RegularNumbers     TableSummary `json:"regularNumbers"`
	SpecialBallNumbers TableSummary `json:"specialBallNumbers"`
}

// Stats is the full report for one game. It is a pure function of the draw
// history: created fresh on every run and never mutated after construction.
type Stats struct {
	Type       game.Type `json:"type"`
	TotalDraws int       `json:"totalDraws"`

	OptimizedByGeneralFrequencyRepeat    []int `json:"optimizedByGeneralFrequencyRepeat"`
	OptimizedByGeneralFrequencyNoRepeat  []int `json:"optimizedByGeneralFrequencyNoRepeat"`
	OptimizedByPositionFrequencyRepeat   []int `json:"optimizedByPositionFrequencyRepeat"`
	OptimizedByPositionFrequencyNoRepeat []int `json:"optimizedByPositionFrequencyNoRepeat"`

	RegularNumbers     map[string]SignificanceEntry            `json:"regularNumbers"`
	SpecialBallNumbers map[string]SignificanceEntry            `json:"specialBallNumbers"`
	ByPosition         map[string]map[string]SignificanceEntry `json:"byPosition"`

	Summary Summary `json:"summary"`
}

// NumberKey formats a number the way table maps are keyed on the wire.
func NumberKey(n int) string {
	return fmt.Sprintf("%d", n)
}

// PositionKey formats a slot index for the byPosition map.
func PositionKey(p int) string {
	return fmt.Sprintf("position%d", p)
}
