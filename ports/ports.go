// Package ports defines the interfaces between the analysis engine's
// orchestration layer and its external collaborators: the results scraper,
// the local JSON persistence, and the cloud object store. The engine itself
// consumes and produces only in-memory values; everything crossing a process
// or network boundary goes through one of these.
package ports

import (
	"context"

	"jackpotiq/domain/game"
	"jackpotiq/domain/report"
)

// DrawSource fetches published draw results for one game.
type DrawSource interface {
	// FetchSince returns draws strictly after the given ISO date, newest
	// first. An empty sinceDate means "from the game's first drawing".
	FetchSince(ctx context.Context, t game.Type, sinceDate string) ([]game.Draw, error)
}

// DrawStore persists draw histories and stats reports as local JSON files.
type DrawStore interface {
	// LoadDraws reads the stored draws for a game. A missing file is an
	// empty history, not an error.
	LoadDraws(t game.Type) ([]game.Draw, error)
	SaveDraws(t game.Type, draws []game.Draw) error
	SaveReport(r *report.Stats) error
}

// ObjectStore syncs the data files with a cloud bucket.
type ObjectStore interface {
	// Download pulls the named object into the local data directory.
	// Objects missing remotely are skipped without error.
	Download(ctx context.Context, name string) error
	// Upload pushes the named local file to the bucket. Files missing
	// locally are skipped without error.
	Upload(ctx context.Context, name string) error
}
