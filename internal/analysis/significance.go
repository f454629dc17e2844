package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"jackpotiq/domain/game"
	"jackpotiq/domain/report"
)

// probabilityModel describes the uniform-draw null hypothesis for one table
// kind: the per-draw probability that a specific number appears, and the slot
// total the percent field is taken against.
type probabilityModel struct {
	p          float64
	totalSlots int
}

// generalModel: each draw exposes five of maxRegular numbers.
func generalModel(cfg game.Config, n int) probabilityModel {
	return probabilityModel{
		p:          float64(game.DrawSize) / float64(cfg.MaxRegular),
		totalSlots: n * game.DrawSize,
	}
}

// positionalModel uses the uniform 1/(maxRegular-4) approximation for every
// slot. The exact slot-dependent combinatorial probability
// C(k-1,p)*C(maxN-k,4-p)/C(maxN,5) is deliberately not used; the
// approximation keeps every slot comparable and is what the published
// reports are calibrated against.
func positionalModel(cfg game.Config, n int) probabilityModel {
	return probabilityModel{
		p:          1.0 / float64(cfg.MaxRegular-(game.DrawSize-1)),
		totalSlots: n,
	}
}

// specialModel: one of maxSpecial numbers per draw.
func specialModel(cfg game.Config, n int) probabilityModel {
	return probabilityModel{
		p:          1.0 / float64(cfg.MaxSpecial),
		totalSlots: n,
	}
}

// annotate converts observed counts into significance entries under the
// binomial null model. With n draws each number's count is Binomial(n, p):
// expected n*p, stddev sqrt(n*p*(1-p)). Zero draws or a degenerate stddev
// produce residual 0 and significant false rather than an error.
func annotate(table map[int]int, n int, model probabilityModel) map[string]report.SignificanceEntry {
	entries := make(map[string]report.SignificanceEntry, len(table))

	var expected, stddev float64
	if n > 0 {
		dist := distuv.Binomial{N: float64(n), P: model.p}
		expected = dist.Mean()
		stddev = dist.StdDev()
	}

	for number, observed := range table {
		entry := report.SignificanceEntry{
			Observed: observed,
			Expected: expected,
		}
		if stddev > 0 {
			entry.Residual = (float64(observed) - expected) / stddev
			entry.Significant = math.Abs(entry.Residual) > report.SignificanceThreshold
		}
		if model.totalSlots > 0 {
			entry.Percent = float64(observed) / float64(model.totalSlots) * 100
		}
		entries[report.NumberKey(number)] = entry
	}
	return entries
}
