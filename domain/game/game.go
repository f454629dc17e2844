package game

import "fmt"

// Type identifies one of the two supported lottery games.
type Type string

const (
	MegaMillions Type = "mega-millions"
	Powerball    Type = "powerball"
)

// Types lists every supported game in a stable order.
func Types() []Type {
	return []Type{MegaMillions, Powerball}
}

// DrawSize is the number of regular numbers in every draw.
const DrawSize = 5

// Config carries the per-game pool sizes. It is passed explicitly into every
// analyzer call; there is no ambient game state.
type Config struct {
	Game       Type
	MaxRegular int
	MaxSpecial int
}

// MegaMillionsConfig returns the Mega Millions matrix: 5 of 1..70 plus a
// Mega Ball of 1..25.
func MegaMillionsConfig() Config {
	return Config{Game: MegaMillions, MaxRegular: 70, MaxSpecial: 25}
}

// PowerballConfig returns the Powerball matrix: 5 of 1..69 plus a
// Powerball of 1..26.
func PowerballConfig() Config {
	return Config{Game: Powerball, MaxRegular: 69, MaxSpecial: 26}
}

// ConfigFor resolves the matrix for a game type.
func ConfigFor(t Type) (Config, error) {
	switch t {
	case MegaMillions:
		return MegaMillionsConfig(), nil
	case Powerball:
		return PowerballConfig(), nil
	default:
		return Config{}, fmt.Errorf("unknown game type %q", t)
	}
}

// PositionRange returns the closed range of values slot p (0-indexed) can
// hold. Because draws are stored in ascending order, slot p never holds a
// value below p+1 or above MaxRegular-4+p.
func (c Config) PositionRange(p int) (lo, hi int) {
	return p + 1, c.MaxRegular - (DrawSize - 1) + p
}
