package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jackpotiq/adapters/jsonfile"
	"jackpotiq/domain/game"
	"jackpotiq/internal"
	"jackpotiq/ports"
)

// RefreshService runs the full workflow: pull data files from the object
// store, fetch draws published since the last known date, merge and persist
// them, rebuild both games' statistics, and push everything back. Bucket
// failures downgrade to warnings; a run always works against local files.
type RefreshService struct {
	source   ports.DrawSource
	store    ports.DrawStore
	objects  ports.ObjectStore
	analysis *AnalysisService
	log      *internal.Logger
}

// RefreshResult summarizes one run.
type RefreshResult struct {
	RunID      string            `json:"runId"`
	NewDraws   map[game.Type]int `json:"newDraws"`
	DurationMs int64             `json:"durationMs"`
}

// NewRefreshService wires the workflow. objects may be nil when bucket sync
// is disabled.
func NewRefreshService(source ports.DrawSource, store ports.DrawStore, objects ports.ObjectStore, analysis *AnalysisService) *RefreshService {
	return &RefreshService{
		source:   source,
		store:    store,
		objects:  objects,
		analysis: analysis,
		log:      internal.DefaultLogger,
	}
}

// Run executes one refresh.
func (s *RefreshService) Run(ctx context.Context) (*RefreshResult, error) {
	started := time.Now()
	result := &RefreshResult{
		RunID:    uuid.NewString(),
		NewDraws: make(map[game.Type]int, len(game.Types())),
	}
	s.log.Info("refresh %s starting", result.RunID)

	s.pullDrawFiles(ctx)

	histories := make(map[game.Type]*game.History, len(game.Types()))
	for _, t := range game.Types() {
		h, added, err := s.refreshDraws(ctx, t)
		if err != nil {
			return nil, err
		}
		histories[t] = h
		result.NewDraws[t] = added
	}

	reports, err := s.analysis.BuildReports(ctx, histories)
	if err != nil {
		return nil, err
	}
	for _, r := range reports {
		if err := s.store.SaveReport(r); err != nil {
			return nil, err
		}
	}

	s.pushDataFiles(ctx)

	elapsed := time.Since(started)
	result.DurationMs = elapsed.Milliseconds()
	s.log.Info("refresh %s done in %s", result.RunID, elapsed)
	return result, nil
}

// refreshDraws fetches and persists new draws for one game, returning the
// rebuilt history and how many draws were new.
func (s *RefreshService) refreshDraws(ctx context.Context, t game.Type) (*game.History, int, error) {
	cfg, err := game.ConfigFor(t)
	if err != nil {
		return nil, 0, err
	}
	existing, err := s.store.LoadDraws(t)
	if err != nil {
		return nil, 0, err
	}

	since := game.NewHistory(cfg, existing).LatestDate()
	fetched, err := s.source.FetchSince(ctx, t, since)
	if err != nil {
		return nil, 0, err
	}

	merged, added := game.MergeDraws(existing, fetched)
	if added > 0 {
		if err := s.store.SaveDraws(t, merged); err != nil {
			return nil, 0, err
		}
		s.log.Info("%s: added %d new draws", t, added)
	} else {
		s.log.Info("%s: no new draws", t)
	}

	return game.NewHistory(cfg, merged), added, nil
}

// pullDrawFiles downloads the draw files ahead of the run. Failures are
// logged and the run continues with local files.
func (s *RefreshService) pullDrawFiles(ctx context.Context) {
	if s.objects == nil {
		return
	}
	for _, t := range game.Types() {
		if err := s.objects.Download(ctx, jsonfile.DrawFile(t)); err != nil {
			s.log.Warn("bucket download failed, continuing with local files: %v", err)
		}
	}
}

// pushDataFiles uploads every data file after the run. Failures are logged;
// the files are already saved locally.
func (s *RefreshService) pushDataFiles(ctx context.Context) {
	if s.objects == nil {
		return
	}
	for _, name := range jsonfile.DataFiles() {
		if err := s.objects.Upload(ctx, name); err != nil {
			s.log.Warn("bucket upload failed, files remain local: %v", err)
		}
	}
}
