// Package fetch scrapes published draw results from the lottery.net yearly
// archive pages. It is the ingestion collaborator: scraped draws are parsed,
// range-checked downstream, and handed to the engine as an already-built
// history.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"jackpotiq/domain/game"
	"jackpotiq/internal"
	"jackpotiq/internal/config"
	"jackpotiq/internal/errors"
)

// epochs are the first drawing dates per game, used when no local history
// exists yet.
var epochs = map[game.Type]string{
	game.Powerball:    "1992-04-22",
	game.MegaMillions: "1996-08-31",
}

// gameSlug maps a game to its URL path segment and result-list CSS class.
var gameSlug = map[game.Type]string{
	game.Powerball:    "powerball",
	game.MegaMillions: "mega-millions",
}

// Client fetches and parses the yearly results pages.
type Client struct {
	cfg  config.ScraperConfig
	http *http.Client
	log  *internal.Logger

	// now is swappable for tests that pin the current year.
	now func() time.Time
}

// NewClient creates a results client from scraper configuration.
func NewClient(cfg config.ScraperConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  internal.DefaultLogger,
		now:  time.Now,
	}
}

// FetchSince walks the yearly archive pages from the year of sinceDate (or
// the game's first drawing when empty) through the current year and returns
// the draws dated strictly after sinceDate, newest first.
func (c *Client) FetchSince(ctx context.Context, t game.Type, sinceDate string) ([]game.Draw, error) {
	if sinceDate == "" {
		sinceDate = epochs[t]
	}
	since, err := time.Parse(game.DateLayout, sinceDate)
	if err != nil {
		return nil, errors.ConfigInvalid(fmt.Sprintf("invalid since date %q", sinceDate))
	}

	var all []game.Draw
	currentYear := c.now().Year()
	for year := since.Year(); year <= currentYear; year++ {
		c.log.Debug("scraping %s results for %d", t, year)
		draws, err := c.fetchYear(ctx, t, year)
		if err != nil {
			return nil, err
		}
		all = append(all, draws...)
	}

	filtered := all[:0]
	for _, d := range all {
		if d.Date > sinceDate {
			filtered = append(filtered, d)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})
	c.log.Info("fetched %d new %s draws since %s", len(filtered), t, sinceDate)
	return filtered, nil
}

// fetchYear downloads and parses one yearly archive page.
func (c *Client) fetchYear(ctx context.Context, t game.Type, year int) ([]game.Draw, error) {
	url := fmt.Sprintf("%s/%s/numbers/%d", c.cfg.BaseURL, gameSlug[t], year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.ScrapeFailed(url, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.ScrapeFailed(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ScrapeFailed(url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	draws, err := ParseResults(resp.Body, t)
	if err != nil {
		return nil, errors.ScrapeFailed(url, err)
	}
	return draws, nil
}
