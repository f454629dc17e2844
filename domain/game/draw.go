package game

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for draw dates.
const DateLayout = "2006-01-02"

// Draw is one historical drawing: five ascending regular numbers plus one
// special ball. The date is used only for ordering and recency filtering,
// never for statistics.
type Draw struct {
	Date        string `json:"date"`
	Numbers     []int  `json:"numbers"`
	SpecialBall int    `json:"specialBall"`
	Type        Type   `json:"type"`
}

// Validate checks a draw against the game matrix: a parseable ISO date,
// exactly five strictly ascending in-range regular numbers, and an in-range
// special ball.
func (d Draw) Validate(cfg Config) error {
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return fmt.Errorf("invalid draw date %q: %w", d.Date, err)
	}
	if len(d.Numbers) != DrawSize {
		return fmt.Errorf("draw %s: expected %d numbers, got %d", d.Date, DrawSize, len(d.Numbers))
	}
	prev := 0
	for i, n := range d.Numbers {
		if n < 1 || n > cfg.MaxRegular {
			return fmt.Errorf("draw %s: number %d out of range 1..%d", d.Date, n, cfg.MaxRegular)
		}
		if n <= prev {
			return fmt.Errorf("draw %s: numbers not strictly ascending at slot %d", d.Date, i)
		}
		prev = n
	}
	if d.SpecialBall < 1 || d.SpecialBall > cfg.MaxSpecial {
		return fmt.Errorf("draw %s: special ball %d out of range 1..%d", d.Date, d.SpecialBall, cfg.MaxSpecial)
	}
	return nil
}

// Key returns the identity of a draw for deduplication: date, the five
// regular numbers, and the special ball.
func (d Draw) Key() string {
	return fmt.Sprintf("%s|%v|%d", d.Date, d.Numbers, d.SpecialBall)
}

// NumberSet returns the regular numbers as a fixed-size array. Draws are
// validated before this is called, so the slice always has five entries.
func (d Draw) NumberSet() [DrawSize]int {
	var set [DrawSize]int
	copy(set[:], d.Numbers)
	return set
}
