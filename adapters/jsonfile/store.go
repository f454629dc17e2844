// Package jsonfile persists draw histories and stats reports as flat JSON
// files in a local data directory. The file layout is a wire contract:
// mm.json / pb.json hold the draw arrays, mm-stats.json / pb-stats.json the
// per-game reports.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"jackpotiq/domain/game"
	"jackpotiq/domain/report"
	"jackpotiq/internal/errors"
)

// Store reads and writes the per-game JSON files under a base directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily on
// first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DrawFile returns the draws filename for a game.
func DrawFile(t game.Type) string {
	if t == game.MegaMillions {
		return "mm.json"
	}
	return "pb.json"
}

// ReportFile returns the stats filename for a game.
func ReportFile(t game.Type) string {
	if t == game.MegaMillions {
		return "mm-stats.json"
	}
	return "pb-stats.json"
}

// DataFiles lists every file the store manages, draws first.
func DataFiles() []string {
	return []string{
		DrawFile(game.MegaMillions),
		DrawFile(game.Powerball),
		ReportFile(game.MegaMillions),
		ReportFile(game.Powerball),
	}
}

// LoadDraws reads the stored draws for a game, newest first. A missing file
// is an empty history rather than an error.
func (s *Store) LoadDraws(t game.Type) ([]game.Draw, error) {
	path := filepath.Join(s.dir, DrawFile(t))
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []game.Draw{}, nil
	}
	if err != nil {
		return nil, errors.StoreFailed(DrawFile(t), err)
	}
	var draws []game.Draw
	if err := json.Unmarshal(data, &draws); err != nil {
		return nil, errors.StoreFailed(DrawFile(t), fmt.Errorf("malformed draw file: %w", err))
	}
	return draws, nil
}

// SaveDraws writes the full draw array for a game with two-space indentation.
func (s *Store) SaveDraws(t game.Type, draws []game.Draw) error {
	return s.writeJSON(DrawFile(t), draws)
}

// SaveReport writes a game's stats report.
func (s *Store) SaveReport(r *report.Stats) error {
	return s.writeJSON(ReportFile(r.Type), r)
}

func (s *Store) writeJSON(name string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.StoreFailed(name, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.StoreFailed(name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return errors.StoreFailed(name, err)
	}
	return nil
}
