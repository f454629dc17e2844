package app

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"jackpotiq/domain/game"
	"jackpotiq/domain/report"
	"jackpotiq/internal"
	"jackpotiq/internal/analysis"
	"jackpotiq/internal/errors"
)

// AnalysisService runs the statistical engine over draw histories. The two
// games carry independent data and outputs, so their analyses run
// concurrently.
type AnalysisService struct {
	log *internal.Logger
}

// NewAnalysisService creates an analysis service.
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{log: internal.DefaultLogger}
}

// BuildReport produces the report for one game and verifies its frequency
// sums before returning it.
func (s *AnalysisService) BuildReport(cfg game.Config, h *game.History) (*report.Stats, error) {
	r := analysis.Build(cfg, h)
	if err := analysis.Verify(r); err != nil {
		return nil, errors.Wrapf(err, "%s report failed verification", cfg.Game)
	}
	s.log.Info("%s: analyzed %d draws (%d quarantined)", cfg.Game, h.Len(), h.Dropped)
	return r, nil
}

// BuildReports analyzes every supplied history concurrently and returns one
// report per game.
func (s *AnalysisService) BuildReports(ctx context.Context, histories map[game.Type]*game.History) (map[game.Type]*report.Stats, error) {
	reports := make(map[game.Type]*report.Stats, len(histories))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	for t, h := range histories {
		t, h := t, h
		g.Go(func() error {
			cfg, err := game.ConfigFor(t)
			if err != nil {
				return err
			}
			r, err := s.BuildReport(cfg, h)
			if err != nil {
				return err
			}
			mu.Lock()
			reports[t] = r
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
